package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(r chi.Router, ctrl *controllers.DashboardController) {
	r.Get("/", ctrl.Overview)
	r.Post("/refresh", ctrl.Refresh)
}

package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(r chi.Router, ctrl *controllers.BillingController) {
	r.Get("/", ctrl.List)
	r.Get("/stats", ctrl.Stats)
}

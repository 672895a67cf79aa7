package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(r chi.Router, ctrl *controllers.UserController) {
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/stats", ctrl.Stats)
	r.Get("/{userID}", ctrl.GetByID)
	r.Put("/{userID}", ctrl.Update)
	r.Delete("/{userID}", ctrl.Delete)
}

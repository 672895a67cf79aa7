package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(r chi.Router, ctrl *controllers.DoctorController) {
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/stats", ctrl.Stats)
	r.Get("/{doctorID}", ctrl.GetByID)
	r.Put("/{doctorID}", ctrl.Update)
	r.Delete("/{doctorID}", ctrl.Delete)
}

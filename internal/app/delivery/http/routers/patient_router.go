package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(r chi.Router, ctrl *controllers.PatientController) {
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/stats", ctrl.Stats)
	r.Get("/{patientID}", ctrl.GetByID)
	r.Put("/{patientID}", ctrl.Update)
	r.Delete("/{patientID}", ctrl.Delete)
}

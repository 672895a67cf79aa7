package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(r chi.Router, ctrl *controllers.AppointmentController) {
	r.Get("/", ctrl.List)
	r.Get("/stats", ctrl.Stats)
	r.Get("/{appointmentID}", ctrl.GetByID)
	r.Patch("/{appointmentID}/cancel", ctrl.Cancel)
}

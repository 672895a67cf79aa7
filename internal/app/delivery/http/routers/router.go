package routers

import (
	"healthapp-admin/internal/app/config"
	"healthapp-admin/internal/app/delivery/http/controllers"
	"healthapp-admin/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Dashboard    *controllers.DashboardController
	User         *controllers.UserController
	Doctor       *controllers.DoctorController
	Patient      *controllers.PatientController
	Appointment  *controllers.AppointmentController
	Billing      *controllers.BillingController
	Prescription *controllers.PrescriptionController
	TestResult   *controllers.TestResultController
	Message      *controllers.MessageController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(mw.Recoverer)
	router.Use(mw.RequestLogger)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, ctrl.Auth)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireSession)

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, ctrl.Dashboard)
			})
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, ctrl.User)
			})
			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, ctrl.Doctor)
			})
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, ctrl.Patient)
			})
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, ctrl.Appointment)
			})
			r.Route("/billing", func(r chi.Router) {
				attachBillingRoutes(r, ctrl.Billing)
			})
			r.Route("/prescriptions", func(r chi.Router) {
				r.Get("/", ctrl.Prescription.List)
			})
			r.Route("/test-results", func(r chi.Router) {
				r.Get("/", ctrl.TestResult.List)
			})
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", ctrl.Message.List)
			})
		})
	})
}

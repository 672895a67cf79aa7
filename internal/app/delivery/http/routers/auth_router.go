package routers

import (
	"healthapp-admin/internal/app/delivery/http/controllers"
	"healthapp-admin/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.AuthController) {
	r.Post("/login", ctrl.Login)
	r.Post("/register", ctrl.Register)
	r.Get("/session", ctrl.Session)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireSession)
		r.Post("/logout", ctrl.Logout)
		r.Post("/change-password", ctrl.ChangePassword)
	})
}

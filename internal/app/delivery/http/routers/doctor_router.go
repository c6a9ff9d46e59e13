package routers

import (
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Post("/", doctorController.Register)
	router.Get("/{doctor_slug}", doctorController.FindBySlug)
}

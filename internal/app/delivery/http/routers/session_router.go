package routers

import (
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSessionStartRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController) {
	router.Post("/", sessionController.Start)
}

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *controllers.SessionController) {
	router.With(middlewares.SessionAuth).Post("/answers", sessionController.Advance)
}

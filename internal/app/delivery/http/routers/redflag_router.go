package routers

import (
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRedFlagRoutes(router chi.Router, middlewares *middlewares.Middlewares, redFlagController *controllers.RedFlagController) {
	router.Get("/{red_flag_id}", redFlagController.Glance)
}

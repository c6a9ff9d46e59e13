package routers

import (
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLanguageRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListLanguages)
}

func attachFormRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListForms)
}

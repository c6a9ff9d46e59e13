package routers

import (
	"fmt"
	"time"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *controllers.DoctorController,
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
	redFlagController *controllers.RedFlagController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/languages", func(r chi.Router) {
				attachLanguageRoutes(r, middlewares, catalogController)
			})

			r.Route("/forms", func(r chi.Router) {
				attachFormRoutes(r, middlewares, catalogController)
			})

			r.Route("/d/{doctor_slug}/sessions", func(r chi.Router) {
				attachSessionStartRoutes(r, middlewares, sessionController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/red-flags", func(r chi.Router) {
				attachRedFlagRoutes(r, middlewares, redFlagController)
			})
		})
	})
}

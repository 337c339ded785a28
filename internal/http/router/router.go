package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "userservice/internal/http/apidocs" // registers the swagger document
	"userservice/internal/http/handlers/health"
	userhandler "userservice/internal/http/handlers/user"
	"userservice/internal/http/responses"
	"userservice/internal/logging"
)

type Options struct {
	MaxBodyBytes int64
}

func NewRouter(
	logger logging.Logger,
	opts Options,
	healthHandler *health.Handler,
	userHandler *userhandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger, opts.MaxBodyBytes)

	r.Get("/health", healthHandler.Check)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id:[0-9]+}", userHandler.GetByID)
		r.Put("/{id:[0-9]+}", userHandler.Update)
		r.Delete("/{id:[0-9]+}", userHandler.Delete)
	})

	// Unmatched paths and methods share the generic not-found envelope.
	r.NotFound(responses.WriteNotFound)
	r.MethodNotAllowed(responses.WriteNotFound)

	return r
}

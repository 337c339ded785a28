package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"userservice/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger, maxBodyBytes int64) {
	// Request ID / Real IP / Recover
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))

	if maxBodyBytes > 0 {
		r.Use(middleware.RequestSize(maxBodyBytes))
	}
}

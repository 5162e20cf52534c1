package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-calculators/internal/calculator"
	"go-calculators/internal/handlers"
	"go-calculators/internal/observability"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Calculators *calculator.Handler
	// Limiter is optional; nil disables rate limiting.
	Limiter *observability.RateLimiter
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	if deps.Limiter != nil {
		r.Use(deps.Limiter.Middleware)
	}

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	deps.Calculators.RegisterRoutes(r)

	return r
}

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	Readiness      func(ctx context.Context) bool
	// OpenAPI serves the API description; nil leaves the route unregistered.
	OpenAPI http.HandlerFunc
}

func New(payments *handlers.PaymentHandler, opts Options, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout, logger))
	}

	r.Get("/health", rest.Health(opts.Readiness))
	if opts.OpenAPI != nil {
		r.Get("/openapi.json", opts.OpenAPI)
	}

	payments.RegisterRoutes(r)

	return r
}

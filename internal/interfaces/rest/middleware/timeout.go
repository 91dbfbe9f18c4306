package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Timeout bounds each request with a context deadline. Handlers observe the
// deadline through the context; if one gives up without writing a response,
// the client gets the same 408 TIMEOUT envelope the services return.
func Timeout(timeout time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				rest.WriteError(ww, application.NewTimeoutError(ctx.Err()), logger)
			}
		})
	}
}

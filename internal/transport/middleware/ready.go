package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

// ReadyFunc prepares state a handler depends on. It must be cheap once the
// state is in place.
type ReadyFunc func(ctx context.Context) error

// EnsureReady returns middleware that runs each step in order before the
// wrapped handler. The first failure ends the request with a JSON 500.
func EnsureReady(logger *slog.Logger, steps ...ReadyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, step := range steps {
				if err := step(r.Context()); err != nil {
					logger.ErrorContext(r.Context(), "init failed",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()),
					)
					msg := err.Error()
					if msg == "" {
						msg = "Server init failed"
					}
					writeError(w, http.StatusInternalServerError, msg)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

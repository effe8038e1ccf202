package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lenasun/kebab-api/internal/config"
	"github.com/lenasun/kebab-api/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter // nil disables limiting
	Songs       *SongHandler
	Kebabs      *KebabHandler
	Health      *HealthHandler
	// SongsReady runs before every song route, in order.
	SongsReady []middleware.ReadyFunc
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
		middleware.Metrics(),
		middleware.Logger(d.Logger),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit())
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.EnsureReady(d.Logger, d.SongsReady...))
			r.Get("/get-random-song-by-genre", d.Songs.RandomByGenre)
			r.Get("/get-genres", d.Songs.Genres)
			r.Post("/refresh-genres", d.Songs.RefreshGenres)
		})

		r.Get("/get-kebabs", d.Kebabs.List)
		r.Post("/add-kebab", d.Kebabs.Add)
	})

	return r
}

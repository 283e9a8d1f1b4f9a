package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds and returns the Chi router with all routes configured.
// The search endpoint is open to any caller; per-request isolation comes
// from Recoverer and the request id attached by RequestID.
func NewRouter(handlers *Handlers, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/api/v1/health", HealthHandlerFunc(redisClient, log))
	r.Get("/api/v1/hotels/search", handlers.SearchHotels)

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)

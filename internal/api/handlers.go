package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/neexbeast/hotel-search/internal/hotels"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	directory *hotels.Directory
	cache     ResultCache
	searcher  HotelSearcher
	sanitizer *hotels.Sanitizer
	log       *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(directory *hotels.Directory, cache ResultCache, searcher HotelSearcher, sanitizer *hotels.Sanitizer, log *slog.Logger) *Handlers {
	return &Handlers{
		directory: directory,
		cache:     cache,
		searcher:  searcher,
		sanitizer: sanitizer,
		log:       log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// setResultHeaders attaches the cache and security headers carried only by
// success responses; errors must not be cached as if they were results.
func setResultHeaders(h http.Header) {
	h.Set("Content-Security-Policy", "default-src 'self'")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "public, max-age=3600")
}

// SearchHotels handles GET /api/v1/hotels/search.
// Validate → resolve city → fetch (cache-aside) → sanitize → respond. The
// first failure at any stage short-circuits to writeError; nothing is
// retried and no partial result is ever surfaced.
func (h *Handlers) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := h.parseSearchQuery(r)
	if err != nil {
		h.writeError(w, r, r.URL.Query().Get("city"), err)
		return
	}

	locationID, err := h.directory.Resolve(query.City)
	if err != nil {
		h.writeError(w, r, query.City, err)
		return
	}

	result, err := h.cache.Get(ctx, locationID)
	if err != nil {
		h.log.Warn("cache get failed", "location_id", locationID, "err", err)
	}
	if result == nil {
		result, err = h.searcher.Search(ctx, locationID)
		if err != nil {
			h.writeError(w, r, query.City, err)
			return
		}
		if err := h.cache.Set(ctx, locationID, result); err != nil {
			h.log.Warn("cache set failed", "location_id", locationID, "err", err)
		}
	}

	result.Data = h.sanitizer.Records(result.Data)

	h.log.Info("hotel search succeeded", "city", query.City, "results", len(result.Data))
	setResultHeaders(w.Header())
	writeJSON(w, http.StatusOK, result)
}

// writeError maps a pipeline failure to the uniform error body and records
// it. The caller-facing message never carries credentials, traces, or
// upstream bodies; the log line carries the request id as trace context and
// the upstream status when one is known.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, city string, err error) {
	reqID := middleware.GetReqID(r.Context())

	var verr *hotels.ValidationError
	var uerr *hotels.UpstreamError
	switch {
	case errors.As(err, &verr):
		h.log.Error("search request rejected", "err", err, "city", city, "request_id", reqID)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Message})
	case errors.As(err, &uerr):
		status := uerr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		h.log.Error("upstream search failed", "err", err, "city", city, "upstream_status", uerr.Status, "request_id", reqID)
		writeJSON(w, status, map[string]string{"error": "failed to fetch hotels"})
	default:
		h.log.Error("hotel search failed", "err", err, "city", city, "request_id", reqID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch hotels"})
	}
}

// redisPinger is the slice of the Redis client the health check needs.
type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc reporting cache
// connectivity. The upstream API is not probed to avoid burning quota on
// health checks, and a dead cache only degrades the service.
func HealthHandlerFunc(redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		state := "ok"
		cacheState := "ok"

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			cacheState = "error"
			state = "degraded"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, map[string]string{
			"status": state,
			"cache":  cacheState,
		})
	}
}

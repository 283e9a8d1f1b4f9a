package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/hotel-search/internal/hotels"
)

var validate = validator.New()

// parseSearchQuery extracts and validates the search parameters. Every raw
// value goes through the markup-stripping sanitizer before anything else, so
// injected HTML never reaches resolution, logging, or the upstream call.
// Any failure maps to the single missing-or-invalid category.
func (h *Handlers) parseSearchQuery(r *http.Request) (*hotels.SearchQuery, error) {
	params := r.URL.Query()
	clean := func(name string) string {
		return strings.TrimSpace(h.sanitizer.Clean(params.Get(name)))
	}

	adultsRaw := clean("adults")
	if adultsRaw == "" {
		adultsRaw = "1"
	}
	childrenRaw := clean("children")
	if childrenRaw == "" {
		childrenRaw = "0"
	}

	adults, err := strconv.Atoi(adultsRaw)
	if err != nil {
		return nil, hotels.ErrMissingParams
	}
	children, err := strconv.Atoi(childrenRaw)
	if err != nil {
		return nil, hotels.ErrMissingParams
	}

	query := &hotels.SearchQuery{
		City:     clean("city"),
		Checkin:  clean("checkin"),
		Checkout: clean("checkout"),
		Adults:   adults,
		Children: children,
	}
	if err := validate.Struct(query); err != nil {
		return nil, hotels.ErrMissingParams
	}

	return query, nil
}

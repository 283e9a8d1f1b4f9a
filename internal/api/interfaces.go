package api

import (
	"context"

	"github.com/neexbeast/hotel-search/internal/hotels"
)

// HotelSearcher defines the upstream search operation needed by handlers.
type HotelSearcher interface {
	Search(ctx context.Context, locationID int) (*hotels.SearchResult, error)
}

// ResultCache defines the response-cache operations needed by handlers.
type ResultCache interface {
	Get(ctx context.Context, locationID int) (*hotels.SearchResult, error)
	Set(ctx context.Context, locationID int, result *hotels.SearchResult) error
}

package hotels

import "encoding/json"

// SearchQuery is a validated hotel-search request. Checkin and checkout are
// passed through uninterpreted beyond non-emptiness; no date-format
// validation is applied.
type SearchQuery struct {
	City     string `json:"city" validate:"required"`
	Checkin  string `json:"checkin" validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
	Adults   int    `json:"adults" validate:"gte=1"`
	Children int    `json:"children" validate:"gte=0"`
}

// Credentials authenticate outbound calls to the upstream search service.
// They are loaded once at startup and must never be logged or echoed.
type Credentials struct {
	Username string
	Password string
}

// HotelRecord is a single hotel entry from the upstream service. Title,
// Content and Image are the only fields treated as attacker-influenced text;
// everything else the upstream sends is preserved verbatim in Extra and
// forwarded unchanged.
type HotelRecord struct {
	Title   string
	Content string
	Image   string
	Extra   map[string]json.RawMessage
}

// namedFields are the keys lifted out of the raw record for sanitization.
var namedFields = [...]string{"title", "content", "image"}

// UnmarshalJSON splits the record into the three sanitized text fields and
// an opaque remainder. A non-string value under a named key violates the
// upstream contract and fails the whole decode.
func (h *HotelRecord) UnmarshalJSON(b []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	dst := map[string]*string{
		"title":   &h.Title,
		"content": &h.Content,
		"image":   &h.Image,
	}
	for _, name := range namedFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst[name]); err != nil {
			return err
		}
		delete(fields, name)
	}

	h.Extra = fields
	return nil
}

// MarshalJSON reassembles the record, named fields alongside the untouched
// remainder.
func (h HotelRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(h.Extra)+len(namedFields))
	for k, v := range h.Extra {
		out[k] = v
	}

	src := map[string]string{
		"title":   h.Title,
		"content": h.Content,
		"image":   h.Image,
	}
	for _, name := range namedFields {
		raw, err := json.Marshal(src[name])
		if err != nil {
			return nil, err
		}
		out[name] = raw
	}

	return json.Marshal(out)
}

// SearchResult is the normalized upstream response for one location.
type SearchResult struct {
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
	Data       []HotelRecord `json:"data"`
}

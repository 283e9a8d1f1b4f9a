package hotels

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips all HTML and script content from text values. The same
// policy is applied to inbound query parameters and to the text fields of
// upstream records, so sanitizing already-clean text is a no-op.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer constructs a Sanitizer with bluemonday's strict policy,
// which allows no markup at all.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean returns v with all markup and script content removed.
func (s *Sanitizer) Clean(v string) string {
	return s.policy.Sanitize(v)
}

// Records returns a copy of records with Title, Content and Image cleaned.
// All other fields pass through unchanged and record order is preserved, as
// it mirrors upstream ranking.
func (s *Sanitizer) Records(records []HotelRecord) []HotelRecord {
	out := make([]HotelRecord, len(records))
	for i, rec := range records {
		rec.Title = s.Clean(rec.Title)
		rec.Content = s.Clean(rec.Content)
		rec.Image = s.Clean(rec.Image)
		out[i] = rec
	}
	return out
}

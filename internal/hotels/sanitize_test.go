package hotels_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/hotel-search/internal/hotels"
)

func TestSanitizerClean_StripsScript(t *testing.T) {
	s := hotels.NewSanitizer()

	got := s.Clean(`<script>alert("xss")</script>Grand Hotel`)
	assert.Equal(t, "Grand Hotel", got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "alert")
}

func TestSanitizerClean_StripsMarkupKeepsText(t *testing.T) {
	s := hotels.NewSanitizer()

	assert.Equal(t, "Sea view rooms", s.Clean(`<b>Sea view</b> <i>rooms</i>`))
	assert.Equal(t, "Paris", s.Clean(`<img src=x onerror=alert(1)>Paris`))
}

func TestSanitizerClean_Idempotent(t *testing.T) {
	s := hotels.NewSanitizer()

	inputs := []string{
		`<script>alert(1)</script>Hotel`,
		`Tom &amp; Jerry Suites`,
		`plain text`,
		`<a href="https://evil.example">click</a>`,
	}
	for _, in := range inputs {
		once := s.Clean(in)
		twice := s.Clean(once)
		assert.Equal(t, once, twice, "sanitizing sanitized text must be a no-op for %q", in)
	}
}

func TestSanitizerRecords(t *testing.T) {
	s := hotels.NewSanitizer()

	records := []hotels.HotelRecord{
		{
			Title:   `Grand <b>Hotel</b>`,
			Content: `<script>steal()</script>City centre`,
			Image:   `https://cdn.example.com/grand.jpg`,
			Extra:   map[string]json.RawMessage{"price": json.RawMessage("120")},
		},
		{
			Title:   "Budget Inn",
			Content: "Near the airport",
			Image:   `<img src=x>https://cdn.example.com/budget.jpg`,
		},
	}

	got := s.Records(records)
	require.Len(t, got, 2)

	// Order mirrors upstream ranking.
	assert.Equal(t, "Grand Hotel", got[0].Title)
	assert.Equal(t, "City centre", got[0].Content)
	assert.Equal(t, "Budget Inn", got[1].Title)
	assert.Equal(t, "https://cdn.example.com/budget.jpg", got[1].Image)

	// Opaque fields pass through untouched.
	assert.JSONEq(t, "120", string(got[0].Extra["price"]))

	// The input slice is not mutated.
	assert.Equal(t, `Grand <b>Hotel</b>`, records[0].Title)
}

func TestSanitizerRecords_Empty(t *testing.T) {
	s := hotels.NewSanitizer()
	assert.Empty(t, s.Records(nil))
}

package hotels

// Directory maps city names to the location identifiers the upstream
// service searches by. The table is fixed at construction and safe for
// concurrent reads; it is a deployment-time constant, not derived from the
// upstream service.
type Directory struct {
	locations map[string]int
}

// defaultLocations lists the cities the endpoint currently serves.
var defaultLocations = map[string]int{
	"Paris":       1,
	"New York":    2,
	"California":  3,
	"Los Angeles": 5,
}

// NewDirectory constructs a Directory with the built-in city table.
func NewDirectory() *Directory {
	return NewDirectoryWithLocations(defaultLocations)
}

// NewDirectoryWithLocations constructs a Directory over a custom table
// (used in tests).
func NewDirectoryWithLocations(locations map[string]int) *Directory {
	table := make(map[string]int, len(locations))
	for city, id := range locations {
		table[city] = id
	}
	return &Directory{locations: table}
}

// Resolve looks up the location identifier for a city. The match is exact
// and case-sensitive; an unknown city yields ErrUnknownCity.
func (d *Directory) Resolve(city string) (int, error) {
	id, ok := d.locations[city]
	if !ok {
		return 0, ErrUnknownCity
	}
	return id, nil
}

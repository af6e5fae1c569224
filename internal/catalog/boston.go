package catalog

import "github.com/alexanderramin/explore/internal/domain"

// bostonLocations is the built-in tour.
var bostonLocations = []domain.Location{
	{ID: 1, Name: "Museum of Fine Arts", Category: "Museums", Description: "World-class collection spanning cultures and eras."},
	{ID: 2, Name: "MIT Museum", Category: "Museums", Description: "Inventive exhibits on science and technology."},
	{ID: 3, Name: "Boston Common", Category: "Parks", Description: "America’s oldest public park."},
	{ID: 4, Name: "Public Garden", Category: "Parks", Description: "Iconic swan boats and Victorian landscaping."},
	{ID: 5, Name: "Neptune Oyster", Category: "Restaurants", Description: "Beloved for its lobster roll and raw bar."},
	{ID: 6, Name: "Oleana", Category: "Restaurants", Description: "Creative Eastern Mediterranean plates."},
}

// DefaultLocations returns a copy of the built-in Boston dataset.
func DefaultLocations() []domain.Location {
	out := make([]domain.Location, len(bostonLocations))
	copy(out, bostonLocations)
	return out
}

// Default returns a Store over the built-in Boston dataset.
func Default() *Store {
	return MustNew(bostonLocations)
}

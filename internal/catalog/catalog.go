// Package catalog holds the read-only set of tour locations and the
// category and id lookups the navigation layer relies on.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/explore/internal/domain"
)

var (
	// ErrDuplicateID indicates two locations share an id.
	ErrDuplicateID = errors.New("duplicate location id")

	// ErrInvalidLocation indicates a location with a blank name or category.
	ErrInvalidLocation = errors.New("invalid location")
)

// Store is an immutable, ordered catalog of locations.
type Store struct {
	locations  []domain.Location
	categories []string
}

// New validates locs and builds a Store. The slice is copied; callers may
// reuse it afterwards.
func New(locs []domain.Location) (*Store, error) {
	seen := make(map[int]bool, len(locs))
	s := &Store{locations: make([]domain.Location, 0, len(locs))}
	known := make(map[string]bool)
	for _, l := range locs {
		if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Category) == "" {
			return nil, fmt.Errorf("%w: id %d needs a name and a category", ErrInvalidLocation, l.ID)
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = true
		s.locations = append(s.locations, l)
		if !known[l.Category] {
			known[l.Category] = true
			s.categories = append(s.categories, l.Category)
		}
	}
	return s, nil
}

// MustNew is New for datasets known to be valid at compile time.
func MustNew(locs []domain.Location) *Store {
	s, err := New(locs)
	if err != nil {
		panic(err)
	}
	return s
}

// Categories returns the distinct categories in first-occurrence order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// HasCategory reports whether category names at least one location.
func (s *Store) HasCategory(category string) bool {
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}

// LocationsFor returns the locations in category, in dataset order.
// An unknown category yields an empty (nil) slice.
func (s *Store) LocationsFor(category string) []domain.Location {
	var out []domain.Location
	for _, l := range s.locations {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// GetLocation returns the location matching both category and id.
func (s *Store) GetLocation(category string, id int) (domain.Location, bool) {
	for _, l := range s.locations {
		if l.Category == category && l.ID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

// All returns every location in dataset order.
func (s *Store) All() []domain.Location {
	out := make([]domain.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Len returns the number of locations.
func (s *Store) Len() int { return len(s.locations) }

package domain

import "fmt"

// Location is a single point of interest in the tour catalog.
type Location struct {
	ID          int    `toml:"id"`
	Name        string `toml:"name"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
}

// DisplayID returns the "Category/ID" pair used in CLI output.
func (l Location) DisplayID() string {
	return fmt.Sprintf("%s/%d", l.Category, l.ID)
}

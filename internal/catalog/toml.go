package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/explore/internal/domain"
)

// tomlFile mirrors a dataset file:
//
//	[[location]]
//	id = 1
//	name = "Museum of Fine Arts"
//	category = "Museums"
//	description = "..."
type tomlFile struct {
	Location []domain.Location `toml:"location"`
}

// LoadTOML reads a dataset file and returns its locations in file order.
func LoadTOML(path string) ([]domain.Location, error) {
	var f tomlFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("catalog %s: unknown key %q", path, undecoded[0].String())
	}
	return f.Location, nil
}

// ParseTOML is LoadTOML over an in-memory document.
func ParseTOML(data string) ([]domain.Location, error) {
	var f tomlFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("catalog: unknown key %q", undecoded[0].String())
	}
	return f.Location, nil
}

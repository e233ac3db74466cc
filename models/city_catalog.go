package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCity is returned when a city is not part of the catalog.
var ErrUnknownCity = errors.New("unknown city")

// CityCatalog maps a city key to its bounding box.
type CityCatalog map[string]BoundingBox

// DefaultCityCatalog returns a fresh copy of the built-in cities.
func DefaultCityCatalog() CityCatalog {
	return CityCatalog{
		"sydney":   {South: -33.940, West: 151.170, North: -33.840, East: 151.270},
		"hongkong": {South: 22.270, West: 114.120, North: 22.32, East: 114.210},
	}
}

// Names returns the city keys in sorted order.
func (c CityCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the box for name. Keys are matched exactly.
func (c CityCatalog) Lookup(name string) (BoundingBox, error) {
	bbox, ok := c[name]
	if !ok {
		return BoundingBox{}, fmt.Errorf("%w %q (choose from %s)", ErrUnknownCity, name, strings.Join(c.Names(), ", "))
	}
	return bbox, nil
}

// Merge validates every entry of other and adds it to c, replacing
// existing keys. Nothing is added if any entry is invalid.
func (c CityCatalog) Merge(other CityCatalog) error {
	for _, name := range other.Names() {
		if strings.TrimSpace(name) == "" {
			return errors.New("city name must not be empty")
		}
		if err := other[name].Validate(); err != nil {
			return fmt.Errorf("city %q: %w", name, err)
		}
	}
	for name, bbox := range other {
		c[name] = bbox
	}
	return nil
}

package util

import (
	"os"
	"path/filepath"
	"testing"

	"building-query/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCityCatalogFromYAML(t *testing.T) {
	path := writeFile(t, `
cities:
  camperdown:
    south: -33.920
    west: 151.155
    north: -33.850
    east: 151.235
  london: {south: 51.49, west: -0.15, north: 51.52, east: -0.07}
`)

	catalog, err := ReadCityCatalogFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"camperdown", "london"}, catalog.Names())
	assert.Equal(t, models.BoundingBox{South: -33.92, West: 151.155, North: -33.85, East: 151.235}, catalog["camperdown"])
}

func TestReadCityCatalogFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no cities", "cities: {}\n"},
		{"unknown field", "cities:\n  x: {south: 1, west: 1, north: 2, east: 2, up: 3}\n"},
		{"not a number", "cities:\n  x: {south: north}\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadCityCatalogFromYAML(writeFile(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestReadCityCatalogFromYAML_MissingFile(t *testing.T) {
	_, err := ReadCityCatalogFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

package util

import (
	"errors"
	"fmt"
	"io"
	"os"

	"building-query/models"

	"gopkg.in/yaml.v3"
)

// cityCatalogFile is the on-disk layout:
//
//	cities:
//	  camperdown: {south: -33.920, west: 151.155, north: -33.850, east: 151.235}
type cityCatalogFile struct {
	Cities map[string]models.BoundingBox `yaml:"cities"`
}

// ReadCityCatalogFromYAML loads extra cities from a YAML file on disk.
// Entries are not validated here; CityCatalog.Merge does that.
func ReadCityCatalogFromYAML(filePath string) (models.CityCatalog, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file cityCatalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("city catalog %q is empty", filePath)
		}
		return nil, fmt.Errorf("failed to unmarshal city catalog %q: %w", filePath, err)
	}
	if len(file.Cities) == 0 {
		return nil, fmt.Errorf("city catalog %q defines no cities", filePath)
	}
	return models.CityCatalog(file.Cities), nil
}

package overpass

import (
	"context"

	"building-query/models"
)

// OverpassAPI defines the interface for interacting with the Overpass API
type OverpassAPI interface {
	// Interpret runs an Overpass QL query and returns the raw response.
	Interpret(ctx context.Context, query string) (*models.OverpassResponse, error)
}

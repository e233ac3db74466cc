package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"building-query/api"
	"building-query/api/overpass"
	"building-query/models"
)

const remoteFailureBanner = "Overpass API error. Full response below:\n\n"

// ResponseCache stores successful responses by rendered query.
type ResponseCache interface {
	GetResponse(ctx context.Context, query string) (*models.OverpassResponse, bool, error)
	PutResponse(ctx context.Context, query string, res *models.OverpassResponse) error
}

// OutputOpener opens the sink for a successful body. It is only called
// once the response is known to be good.
type OutputOpener func() (io.WriteCloser, error)

// BuildingQueryService downloads building footprints for catalog cities.
type BuildingQueryService struct {
	catalog     models.CityCatalog
	overpassAPI overpass.OverpassAPI
	cache       ResponseCache
	logger      *slog.Logger
}

// NewBuildingQueryService wires the service. cache may be nil.
func NewBuildingQueryService(catalog models.CityCatalog, overpassAPI overpass.OverpassAPI, cache ResponseCache, logger *slog.Logger) *BuildingQueryService {
	return &BuildingQueryService{
		catalog:     catalog,
		overpassAPI: overpassAPI,
		cache:       cache,
		logger:      logger,
	}
}

// Catalog returns the cities this service can query.
func (s *BuildingQueryService) Catalog() models.CityCatalog {
	return s.catalog
}

// RenderQuery builds the Overpass QL text for city.
func (s *BuildingQueryService) RenderQuery(city string) (string, error) {
	bbox, err := s.catalog.Lookup(city)
	if err != nil {
		return "", err
	}
	return models.RenderBuildingQuery(bbox), nil
}

// FetchBuildings returns the raw response for city. An unknown city fails
// before any network call; a non-success status comes back as
// *api.RemoteRequestFailedError.
func (s *BuildingQueryService) FetchBuildings(ctx context.Context, city string) (*models.OverpassResponse, error) {
	query, err := s.RenderQuery(city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		res, found, err := s.cache.GetResponse(ctx, query)
		if err != nil {
			s.logger.Warn("cache.get.failed", "city", city, "error", err)
		} else if found {
			s.logger.Debug("cache.hit", "city", city, "bytes", len(res.Body))
			return res, nil
		}
	}

	res, err := s.overpassAPI.Interpret(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.PutResponse(ctx, query, res); err != nil {
			s.logger.Warn("cache.put.failed", "city", city, "error", err)
		}
	}
	return res, nil
}

// Run downloads city and writes the body to the sink from open. Remote
// failures are reported on diag with the full response body and returned;
// nothing is opened or written in that case.
func (s *BuildingQueryService) Run(ctx context.Context, city string, open OutputOpener, diag io.Writer) error {
	res, err := s.FetchBuildings(ctx, city)
	if remoteErr, ok := api.AsRemoteRequestFailed(err); ok {
		fmt.Fprint(diag, remoteFailureBanner)
		fmt.Fprintln(diag, remoteErr.BodyText())
		return err
	}
	if err != nil {
		return err
	}

	if res.FromCache {
		fmt.Fprintf(diag, "Loaded cached Overpass response, %d kB\n", res.SizeKB())
	} else {
		fmt.Fprintf(diag, "Downloaded Overpass response, %d kB\n", res.SizeKB())
	}

	out, err := open()
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	if _, err := out.Write(res.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

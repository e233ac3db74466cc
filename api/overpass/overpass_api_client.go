package overpass

import (
	"context"
	"log/slog"
	"net/url"

	"building-query/api"
	"building-query/config"
	"building-query/models"
)

// OverpassApiClient embeds the common HTTPClient. BaseURL is the full
// interpreter URL.
type OverpassApiClient struct {
	*api.HTTPClient
	logger *slog.Logger
}

// NewOverpassApiClient creates a new instance of OverpassApiClient
func NewOverpassApiClient(httpClient *api.HTTPClient, logger *slog.Logger) *OverpassApiClient {
	return &OverpassApiClient{
		HTTPClient: httpClient,
		logger:     logger,
	}
}

// Interpret sends the query as the "data" parameter of a single GET. A
// non-success status comes back as *api.RemoteRequestFailedError.
func (c *OverpassApiClient) Interpret(ctx context.Context, query string) (*models.OverpassResponse, error) {
	c.logger.Debug("overpass.request", "endpoint", c.BaseURL, "query_bytes", len(query))

	res, err := c.Get(ctx, "", url.Values{config.OVERPASS_QUERY_PARAM: {query}})
	if err != nil {
		c.logger.Debug("overpass.request.failed", "error", err)
		return nil, err
	}

	c.logger.Debug("overpass.response", "status", res.StatusCode, "bytes", len(res.Body))
	return &models.OverpassResponse{
		Body:        res.Body,
		ContentType: res.Header.Get("Content-Type"),
	}, nil
}

package overpass

import (
	"context"
	"sync"

	"building-query/models"
)

// OverpassApiClientMock answers every query with a canned body or error and
// records the queries it received.
type OverpassApiClientMock struct {
	Body        []byte
	ContentType string
	Err         error

	mu      sync.Mutex
	queries []string
}

// NewOverpassApiClientMock creates a mock that returns body as JSON.
func NewOverpassApiClientMock(body []byte) *OverpassApiClientMock {
	return &OverpassApiClientMock{Body: body, ContentType: "application/json"}
}

// NewFailingOverpassApiClientMock creates a mock that always returns err.
func NewFailingOverpassApiClientMock(err error) *OverpassApiClientMock {
	return &OverpassApiClientMock{Err: err}
}

func (c *OverpassApiClientMock) Interpret(ctx context.Context, query string) (*models.OverpassResponse, error) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	c.mu.Unlock()

	if c.Err != nil {
		return nil, c.Err
	}
	body := make([]byte, len(c.Body))
	copy(body, c.Body)
	return &models.OverpassResponse{Body: body, ContentType: c.ContentType}, nil
}

// Queries returns the queries received so far.
func (c *OverpassApiClientMock) Queries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

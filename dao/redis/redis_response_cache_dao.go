package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"building-query/config"
	"building-query/db"
	"building-query/models"
)

// cachedResponse is the JSON document stored per query. Body is base64
// encoded by encoding/json.
type cachedResponse struct {
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	StoredAt    time.Time `json:"stored_at"`
}

// RedisResponseCacheDAO caches successful Overpass responses by query text.
type RedisResponseCacheDAO struct {
	client db.RedisClient
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisResponseCacheDAO initializes a RedisResponseCacheDAO with the Redis client.
func NewRedisResponseCacheDAO(client db.RedisClient, ttl time.Duration) *RedisResponseCacheDAO {
	return &RedisResponseCacheDAO{client: client, ttl: ttl, now: time.Now}
}

// ResponseCacheKey derives the cache key for a rendered query.
func ResponseCacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf(config.RESPONSE_CACHE_KEY_FORMAT, hex.EncodeToString(sum[:]))
}

// GetResponse returns the cached response for query. The bool is false on a
// cache miss.
func (dao *RedisResponseCacheDAO) GetResponse(ctx context.Context, query string) (*models.OverpassResponse, bool, error) {
	data, err := dao.client.Get(ctx, ResponseCacheKey(query))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[RedisResponseCacheDAO] failed to get response: %w", err)
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}
	return &models.OverpassResponse{
		Body:        cached.Body,
		ContentType: cached.ContentType,
		FromCache:   true,
	}, true, nil
}

// PutResponse stores res under query for the configured ttl.
func (dao *RedisResponseCacheDAO) PutResponse(ctx context.Context, query string, res *models.OverpassResponse) error {
	data, err := json.Marshal(cachedResponse{
		ContentType: res.ContentType,
		Body:        res.Body,
		StoredAt:    dao.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if err := dao.client.Set(ctx, ResponseCacheKey(query), data, dao.ttl); err != nil {
		return fmt.Errorf("[RedisResponseCacheDAO] failed to set response: %w", err)
	}
	return nil
}

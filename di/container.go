package di

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"building-query/api"
	"building-query/api/overpass"
	"building-query/config"
	"building-query/dao/redis"
	"building-query/db"
	"building-query/logger"
	"building-query/models"
	"building-query/server"
	"building-query/server/handlers"
	services "building-query/service"
	"building-query/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Options carries the command-line settings that shape the container.
type Options struct {
	Endpoint       string
	Timeout        time.Duration
	CacheRedisAddr string // empty disables the response cache
	CacheTTL       time.Duration
	Debug          bool
	LogOutput      io.Writer
}

// Container holds all application dependencies.
type Container struct {
	Logger                  *slog.Logger
	Catalog                 models.CityCatalog
	HTTPClient              *api.HTTPClient
	OverpassAPI             overpass.OverpassAPI
	RedisClient             db.RedisClient
	ResponseCacheDAO        *redis.RedisResponseCacheDAO
	BuildingQueryService    *services.BuildingQueryService
	BuildingHandler         *handlers.BuildingHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	BuildingQueryHttpServer *server.BuildingQueryHttpServer
}

// LoadCityCatalog returns the built-in cities, extended by citiesFile when set.
func LoadCityCatalog(citiesFile string) (models.CityCatalog, error) {
	catalog := models.DefaultCityCatalog()
	if citiesFile == "" {
		return catalog, nil
	}
	extra, err := util.ReadCityCatalogFromYAML(citiesFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.Merge(extra); err != nil {
		return nil, fmt.Errorf("invalid city catalog %q: %w", citiesFile, err)
	}
	return catalog, nil
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, catalog models.CityCatalog, opts Options) (*Container, error) {
	log := logger.New(logger.Config{Debug: opts.Debug, Output: opts.LogOutput})

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = config.OverpassEndpoint()
	}
	log.Debug("container.init", "endpoint", endpoint, "cities", len(catalog), "cache", opts.CacheRedisAddr != "")

	httpClient := api.NewHTTPClient(endpoint, opts.Timeout)
	overpassAPI := overpass.NewOverpassApiClient(httpClient, log)

	c := &Container{
		Logger:      log,
		Catalog:     catalog,
		HTTPClient:  httpClient,
		OverpassAPI: overpassAPI,
	}

	var cache services.ResponseCache
	if opts.CacheRedisAddr != "" {
		redisClient := db.NewGoRedisClient(goredis.NewClient(&goredis.Options{
			Addr:     opts.CacheRedisAddr,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		}))
		if err := redisClient.Ping(ctx); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.CacheRedisAddr, err)
		}

		ttl := opts.CacheTTL
		if ttl <= 0 {
			ttl = config.RESPONSE_CACHE_DEFAULT_TTL
		}
		c.RedisClient = redisClient
		c.ResponseCacheDAO = redis.NewRedisResponseCacheDAO(redisClient, ttl)
		cache = c.ResponseCacheDAO
	}

	c.BuildingQueryService = services.NewBuildingQueryService(catalog, overpassAPI, cache, log)
	c.BuildingHandler = handlers.NewBuildingHandler(c.BuildingQueryService, log)
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(c.BuildingHandler, c.MuxRouter)
	c.BuildingQueryHttpServer = server.NewBuildingQueryHttpServer(c.Router, c.MuxRouter, log, config.SERVER_SHUTDOWN_TIMEOUT)

	return c, nil
}

// Close releases the Redis connection, if any.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

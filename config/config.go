package config

import (
	"os"
	"time"
)

// Overpass API
const OVERPASS_ENDPOINT = "https://overpass-api.de/api/interpreter"
const OVERPASS_ENDPOINT_ENV = "OVERPASS_ENDPOINT"
const OVERPASS_QUERY_PARAM = "data"

// Zero means no client-side timeout: the transport and the [timeout:60]
// setting inside the query bound the call.
const OVERPASS_HTTP_TIMEOUT_SECONDS = 0

// Response cache config
const RESPONSE_CACHE_KEY_FORMAT = "overpass_response_v1:%s"
const RESPONSE_CACHE_DEFAULT_TTL = 24 * time.Hour
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP front config
const SERVER_ADDRESS = ":8080"
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Output file mode for --output
const OUTPUT_FILE_MODE = 0o644

// OverpassEndpoint returns the interpreter URL, honouring the env override.
func OverpassEndpoint() string {
	if endpoint := os.Getenv(OVERPASS_ENDPOINT_ENV); endpoint != "" {
		return endpoint
	}
	return OVERPASS_ENDPOINT
}

func OverpassTimeout() time.Duration {
	return OVERPASS_HTTP_TIMEOUT_SECONDS * time.Second
}

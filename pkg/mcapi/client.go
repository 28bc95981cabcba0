package mcapi

import (
	"context"
	"time"
)

// Client is the root of the API. Resource handles are immutable and safe to
// share between goroutines.
type Client interface {
	Lists() ListsClient
	Campaigns() CampaignsClient

	// Ping checks API health and credentials.
	Ping(ctx context.Context) (*Ping, error)
	// Root returns the account behind the API key.
	Root(ctx context.Context) (*AccountInfo, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a mcapi.Client.
//
// # Endpoint
//
// APIKey is required. Keys end in "-<dc>" where dc names the account data
// center; when APIEndpoint is empty, mcclient.New derives it from that suffix
// ("key-us6" selects https://us6.api.mailchimp.com/3.0).
//
// # Retries
//
// The facade never retries. RetryMax > 0 lets the transport retry 5xx, 429
// and connection errors with RetryWaitMin/RetryWaitMax backoff.
type Config struct {
	// APIKey authenticates every request.
	APIKey string
	// APIEndpoint overrides the data center derived base URL.
	APIEndpoint string
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	HTTPTimeout  time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug  bool
	Logger Logger

	// PageSize and MaxPages tune ListAll. Zero selects the defaults.
	PageSize int
	MaxPages int

	// Cache enables the GET response cache.
	Cache *CacheConfig
	// Interceptors run around every request.
	Interceptors *InterceptorChain
}

// PaginationOptions returns the fetch-all options of the config.
func (c *Config) PaginationOptions() *PaginationOptions {
	if c == nil {
		return DefaultPaginationOptions()
	}

	options := (&PaginationOptions{PageSize: c.PageSize, MaxPages: c.MaxPages}).normalized()

	return &options
}

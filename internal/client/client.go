package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/mcapi/internal/auth"
	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/internal/http"
	"github.com/fivetwenty-io/mcapi/internal/validation"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Client implements the mcapi.Client interface.
type Client struct {
	httpClient *http.Client
	backend    *backend
	baseURL    string
	logger     mcapi.Logger

	lists     *ListsClient
	campaigns *CampaignsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *mcapi.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		cache, err := mcapi.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating response cache: %w", err)
		}

		httpOpts = append(httpOpts, http.WithCache(cache, config.Cache.CacheOptionsOrDefault()))
	}

	return httpOpts, nil
}

// New creates a client for config.APIEndpoint authenticated with config.APIKey.
func New(_ context.Context, config *mcapi.Config) (*Client, error) {
	if config == nil {
		return nil, mcapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	authenticator, err := auth.NewAPIKeyAuthenticator(config.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating authenticator: %w", err)
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	return newClient(http.NewClient(config.APIEndpoint, authenticator, httpOpts...), config), nil
}

func newClient(httpClient *http.Client, config *mcapi.Config) *Client {
	b := &backend{
		httpClient: httpClient,
		validator:  validation.New(schemaFiles),
		pagination: config.PaginationOptions(),
	}

	return &Client{
		httpClient: httpClient,
		backend:    b,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
		lists:      NewListsClient(b),
		campaigns:  NewCampaignsClient(b),
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CacheStats returns response cache statistics, or nil when caching is off.
func (c *Client) CacheStats() *mcapi.CacheStats {
	return c.httpClient.CacheStats()
}

// Ping implements mcapi.Client.Ping.
func (c *Client) Ping(ctx context.Context) (*mcapi.Ping, error) {
	resp, err := c.httpClient.Get(ctx, "/ping", nil)
	if err != nil {
		return nil, fmt.Errorf("pinging API: %w", err)
	}

	var ping mcapi.Ping

	err = json.Unmarshal(resp.Body, &ping)
	if err != nil {
		return nil, fmt.Errorf("parsing ping response: %w", err)
	}

	return &ping, nil
}

// Root implements mcapi.Client.Root.
func (c *Client) Root(ctx context.Context) (*mcapi.AccountInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account info: %w", err)
	}

	var info mcapi.AccountInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing account info response: %w", err)
	}

	return &info, nil
}

// Lists implements mcapi.Client.Lists.
func (c *Client) Lists() mcapi.ListsClient {
	return c.lists
}

// Campaigns implements mcapi.Client.Campaigns.
func (c *Client) Campaigns() mcapi.CampaignsClient {
	return c.campaigns
}

var _ mcapi.Client = (*Client)(nil)

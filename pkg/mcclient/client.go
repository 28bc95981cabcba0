package mcclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/mcapi/internal/auth"
	"github.com/fivetwenty-io/mcapi/internal/client"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

const apiVersionPath = "/3.0"

// New creates a new Mailchimp Marketing API client. When config.APIEndpoint
// is empty the endpoint is derived from the data center suffix of the API
// key. The caller's config is not modified.
func New(ctx context.Context, config *mcapi.Config) (mcapi.Client, error) {
	if config == nil {
		return nil, mcapi.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, mcapi.ErrAPIKeyRequired
	}

	normalized := *config

	endpoint, err := resolveEndpoint(config.APIEndpoint, config.APIKey)
	if err != nil {
		return nil, err
	}

	normalized.APIEndpoint = endpoint

	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// resolveEndpoint returns the API root: the configured endpoint with a scheme
// and the version path, or the data center URL of the key.
func resolveEndpoint(endpoint, apiKey string) (string, error) {
	if endpoint == "" {
		baseURL, err := auth.BaseURL(apiKey)
		if err != nil {
			return "", fmt.Errorf("deriving API endpoint from key: %w", err)
		}

		return baseURL, nil
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if !strings.HasSuffix(endpoint, apiVersionPath) {
		endpoint += apiVersionPath
	}

	return endpoint, nil
}

// NewWithAPIKey creates a new client for the data center of apiKey.
func NewWithAPIKey(ctx context.Context, apiKey string) (mcapi.Client, error) {
	return New(ctx, &mcapi.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a new client for an explicit endpoint, e.g. a proxy
// or a mock server.
func NewWithEndpoint(ctx context.Context, endpoint, apiKey string) (mcapi.Client, error) {
	return New(ctx, &mcapi.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}

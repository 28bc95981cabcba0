package mcclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, mcapi.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &mcapi.Config{APIEndpoint: "https://us6.api.mailchimp.com/3.0"})
		require.ErrorIs(t, err, mcapi.ErrAPIKeyRequired)
	})

	t.Run("key without data center", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &mcapi.Config{APIKey: "nodatacenter"})
		require.Error(t, err)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &mcapi.Config{APIKey: "abc-us6"}

		client, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Empty(t, config.APIEndpoint)
	})
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		apiKey   string
		want     string
	}{
		{"derived from key", "", "abc-us6", "https://us6.api.mailchimp.com/3.0"},
		{"full endpoint", "https://us6.api.mailchimp.com/3.0", "abc-us6", "https://us6.api.mailchimp.com/3.0"},
		{"trailing slash", "https://us6.api.mailchimp.com/3.0/", "abc-us6", "https://us6.api.mailchimp.com/3.0"},
		{"no scheme", "us6.api.mailchimp.com", "abc-us6", "https://us6.api.mailchimp.com/3.0"},
		{"mock server", "http://127.0.0.1:8080", "abc-us6", "http://127.0.0.1:8080/3.0"},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveEndpoint(test.endpoint, test.apiKey)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3.0/ping", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"health_status": "Everything's Chimpy!"})
	}))
	defer server.Close()

	client, err := NewWithEndpoint(context.Background(), server.URL, "abc-us6")
	require.NoError(t, err)

	ping, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Everything's Chimpy!", ping.HealthStatus)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := NewWithAPIKey(context.Background(), "abc-us19")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

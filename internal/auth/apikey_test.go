package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuthenticator(t *testing.T) {
	t.Parallel()

	t.Run("sets basic auth", func(t *testing.T) {
		t.Parallel()

		authenticator, err := NewAPIKeyAuthenticator(" abc123-us6 ")
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://us6.api.mailchimp.com/3.0/ping", nil)
		require.NoError(t, err)
		require.NoError(t, authenticator.Authorize(context.Background(), req))

		username, password, ok := req.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "mcapi", username)
		assert.Equal(t, "abc123-us6", password)

		dataCenter, err := authenticator.DataCenter()
		require.NoError(t, err)
		assert.Equal(t, "us6", dataCenter)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := NewAPIKeyAuthenticator("  ")
		require.ErrorIs(t, err, ErrEmptyAPIKey)
	})
}

func TestDataCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		apiKey   string
		expected string
		wantErr  error
	}{
		{name: "standard key", apiKey: "0123456789abcdef0123456789abcdef-us6", expected: "us6"},
		{name: "dashes in key", apiKey: "a-b-c-us21", expected: "us21"},
		{name: "no suffix", apiKey: "0123456789abcdef", wantErr: ErrMissingDataCenter},
		{name: "trailing dash", apiKey: "abc-", wantErr: ErrMissingDataCenter},
		{name: "host in suffix", apiKey: "0123456789abcdef-evil.example.net/x?", wantErr: ErrMissingDataCenter},
		{name: "uppercase suffix", apiKey: "0123456789abcdef-US6", wantErr: ErrMissingDataCenter},
		{name: "no digits", apiKey: "0123456789abcdef-us", wantErr: ErrMissingDataCenter},
		{name: "userinfo in suffix", apiKey: "0123456789abcdef-us6@evil", wantErr: ErrMissingDataCenter},
		{name: "empty", apiKey: "", wantErr: ErrEmptyAPIKey},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataCenter, err := DataCenter(tt.apiKey)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, dataCenter)
		})
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	baseURL, err := BaseURL("key-us6")
	require.NoError(t, err)
	assert.Equal(t, "https://us6.api.mailchimp.com/3.0", baseURL)

	_, err = BaseURL("key")
	require.ErrorIs(t, err, ErrMissingDataCenter)

	baseURL, err = BaseURL("0123456789abcdef-evil.example.net/x?")
	require.ErrorIs(t, err, ErrMissingDataCenter)
	assert.Empty(t, baseURL)
}

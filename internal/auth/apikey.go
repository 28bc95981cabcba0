package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/fivetwenty-io/mcapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrEmptyAPIKey       = errors.New("API key is empty")
	ErrMissingDataCenter = errors.New("API key has no data center suffix")
)

// dataCenterPattern matches data center names such as "us6".
var dataCenterPattern = regexp.MustCompile(`^[a-z]+[0-9]+$`)

// Authenticator adds credentials to an outgoing request.
type Authenticator interface {
	Authorize(ctx context.Context, req *http.Request) error
}

// APIKeyAuthenticator sends the API key as the basic auth password. The API
// ignores the username.
type APIKeyAuthenticator struct {
	apiKey   string
	username string
}

// NewAPIKeyAuthenticator creates an authenticator for an API key.
func NewAPIKeyAuthenticator(apiKey string) (*APIKeyAuthenticator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	return &APIKeyAuthenticator{apiKey: apiKey, username: constants.BasicAuthUsername}, nil
}

// Authorize implements Authenticator.
func (a *APIKeyAuthenticator) Authorize(_ context.Context, req *http.Request) error {
	req.SetBasicAuth(a.username, a.apiKey)

	return nil
}

// DataCenter returns the data center an API key belongs to.
func (a *APIKeyAuthenticator) DataCenter() (string, error) {
	return DataCenter(a.apiKey)
}

// DataCenter extracts the data center from the "-dc" suffix of an API key,
// e.g. "0123456789abcdef-us6" yields "us6".
func DataCenter(apiKey string) (string, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	index := strings.LastIndex(apiKey, "-")
	if index < 0 {
		return "", ErrMissingDataCenter
	}

	dataCenter := apiKey[index+1:]
	if !dataCenterPattern.MatchString(dataCenter) {
		return "", fmt.Errorf("%w: %q", ErrMissingDataCenter, dataCenter)
	}

	return dataCenter, nil
}

// BaseURL returns the API base URL for the data center of an API key.
func BaseURL(apiKey string) (string, error) {
	dataCenter, err := DataCenter(apiKey)
	if err != nil {
		return "", fmt.Errorf("deriving API endpoint: %w", err)
	}

	return fmt.Sprintf(constants.APIHostTemplate, dataCenter), nil
}

package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'mcapi login' to set one")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
	ErrConfigPathUnknown  = errors.New("cannot determine config file location")
	ErrInvalidOutput      = errors.New("invalid output format")
)

// Command errors.
var (
	ErrListIDRequired      = errors.New("--list flag is required")
	ErrPayloadFileRequired = errors.New("--from-file flag is required")
	ErrUnsupportedFormat   = errors.New("unsupported payload file format")
)

package mcapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidPath        = errors.New("invalid resource path")
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrNoMoreItems        = errors.New("no more items")
	ErrPageFuncRequired   = errors.New("page function is required")
	ErrCacheKeyNotFound   = errors.New("key not found")
	ErrCacheEntryExpired  = errors.New("entry expired")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
)

// Validation error codes.
const (
	CodeRequired  = "required"
	CodeEnum      = "enum"
	CodeType      = "type"
	CodeFormat    = "format"
	CodeMaxLength = "max_length"
	CodeMaxItems  = "max_items"
)

// FieldError reports one field that failed a local payload check.
type FieldError struct {
	// Field is the dotted path of the offending field, e.g. "contact.company"
	// or "members[3].status".
	Field string `json:"field" yaml:"field"`
	// Code is a machine-readable error code.
	Code string `json:"code" yaml:"code"`
	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
	// AllowedValues is set for enum violations.
	AllowedValues []string `json:"allowed_values,omitempty" yaml:"allowed_values,omitempty"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.AllowedValues) > 0 {
		return fmt.Sprintf("%s: %s (allowed: %s)", e.Field, e.Message, strings.Join(e.AllowedValues, ", "))
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatError reports a malformed email address or URL.
type FormatError struct {
	Field  string `json:"field"  yaml:"field"`
	Format string `json:"format" yaml:"format"`
	Value  string `json:"value"  yaml:"value"`
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", e.Field, e.Value, e.Format)
}

// LimitExceededError reports a batch that is larger than the API accepts.
type LimitExceededError struct {
	Field  string `json:"field"  yaml:"field"`
	Limit  int    `json:"limit"  yaml:"limit"`
	Actual int    `json:"actual" yaml:"actual"`
}

// Error implements the error interface.
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d items exceeds the limit of %d", e.Field, e.Actual, e.Limit)
}

// ValidationError aggregates every violation found in one payload. It is
// returned before any request is sent. The individual violations are
// *FieldError, *FormatError or *LimitExceededError values and can be matched
// with errors.As through the error itself.
type ValidationError struct {
	Resource string
	Errors   []error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("invalid %s payload: %s", e.Resource, strings.Join(messages, "; "))
}

// Unwrap exposes the individual violations.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// Fields returns the field paths of all violations in the order found.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))

	for _, err := range e.Errors {
		switch typed := err.(type) {
		case *FieldError:
			fields = append(fields, typed.Field)
		case *FormatError:
			fields = append(fields, typed.Field)
		case *LimitExceededError:
			fields = append(fields, typed.Field)
		}
	}

	return fields
}

// HasField reports whether a violation names the given field path.
func (e *ValidationError) HasField(field string) bool {
	for _, name := range e.Fields() {
		if name == field {
			return true
		}
	}

	return false
}

// ProblemFieldError is a per-field error inside an API problem document.
type ProblemFieldError struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// TransportError is returned for every non-2xx response. The API answers with
// an RFC 7807 problem document which is decoded when possible; the raw body
// is always kept.
type TransportError struct {
	StatusCode int                 `json:"status"             yaml:"status"`
	Type       string              `json:"type"               yaml:"type"`
	Title      string              `json:"title"              yaml:"title"`
	Detail     string              `json:"detail"             yaml:"detail"`
	Instance   string              `json:"instance"           yaml:"instance"`
	Errors     []ProblemFieldError `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Body       []byte              `json:"-"                  yaml:"-"`
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.StatusCode)
}

// ParseTransportError builds a TransportError from a response status and body.
func ParseTransportError(statusCode int, body []byte) *TransportError {
	transportErr := &TransportError{}

	err := json.Unmarshal(body, transportErr)
	if err != nil {
		transportErr = &TransportError{}
	}

	transportErr.StatusCode = statusCode
	transportErr.Body = body

	return transportErr
}

// PaginationError is returned when a fetch-all sees more consecutive full
// pages than allowed, which means the server never sent a short page.
type PaginationError struct {
	MaxPages int
	PageSize int
	Offset   int
}

// Error implements the error interface.
func (e *PaginationError) Error() string {
	return fmt.Sprintf("pagination aborted after %d full pages of %d items (next offset %d)", e.MaxPages, e.PageSize, e.Offset)
}

func isStatus(err error, status int) bool {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode == status
	}

	return false
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return isStatus(err, http.StatusForbidden)
}

// IsValidation checks if the error was raised by local payload validation.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

package mcapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

func TestParseTransportError(t *testing.T) {
	t.Parallel()

	t.Run("problem document", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"type":"https://mailchimp.com/developer/marketing/docs/errors/","title":"Resource Not Found",` +
			`"status":404,"detail":"The requested resource could not be found.","instance":"995c5cb0"}`)

		err := mcapi.ParseTransportError(404, body)
		assert.Equal(t, 404, err.StatusCode)
		assert.Equal(t, "Resource Not Found", err.Title)
		assert.Equal(t, "995c5cb0", err.Instance)
		assert.Equal(t, body, err.Body)
		assert.Equal(t, "Resource Not Found: The requested resource could not be found. (status: 404)", err.Error())
	})

	t.Run("field errors", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"title":"Invalid Resource","status":400,"detail":"bad","errors":[{"field":"email_address","message":"invalid"}]}`)

		err := mcapi.ParseTransportError(400, body)
		require.Len(t, err.Errors, 1)
		assert.Equal(t, "email_address", err.Errors[0].Field)
	})

	t.Run("non json body", func(t *testing.T) {
		t.Parallel()

		err := mcapi.ParseTransportError(502, []byte("Bad Gateway"))
		assert.Equal(t, 502, err.StatusCode)
		assert.Empty(t, err.Title)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "Bad Gateway")
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting list: %w", mcapi.ParseTransportError(404, nil))

	assert.True(t, mcapi.IsNotFound(wrapped))
	assert.False(t, mcapi.IsUnauthorized(wrapped))
	assert.True(t, mcapi.IsUnauthorized(mcapi.ParseTransportError(401, nil)))
	assert.True(t, mcapi.IsForbidden(mcapi.ParseTransportError(403, nil)))
	assert.False(t, mcapi.IsNotFound(errTestRejected))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	validationErr := &mcapi.ValidationError{
		Resource: "list",
		Errors: []error{
			&mcapi.FieldError{Field: "name", Code: mcapi.CodeRequired, Message: "is required"},
			&mcapi.FormatError{Field: "campaign_defaults.from_email", Format: "email", Value: "nope"},
			&mcapi.LimitExceededError{Field: "members", Limit: 500, Actual: 501},
		},
	}

	wrapped := fmt.Errorf("creating list: %w", validationErr)

	assert.True(t, mcapi.IsValidation(wrapped))
	assert.Equal(t, []string{"name", "campaign_defaults.from_email", "members"}, validationErr.Fields())
	assert.True(t, validationErr.HasField("members"))
	assert.False(t, validationErr.HasField("contact.city"))

	var limitErr *mcapi.LimitExceededError
	require.ErrorAs(t, wrapped, &limitErr)
	assert.Equal(t, 501, limitErr.Actual)

	var formatErr *mcapi.FormatError
	require.ErrorAs(t, wrapped, &formatErr)
	assert.Equal(t, "email", formatErr.Format)

	assert.Contains(t, validationErr.Error(), "invalid list payload")
	assert.Contains(t, validationErr.Error(), "name: is required")
	assert.False(t, mcapi.IsValidation(errors.New("plain")))
}

func TestFieldError_AllowedValues(t *testing.T) {
	t.Parallel()

	err := &mcapi.FieldError{Field: "status", Code: mcapi.CodeEnum, Message: "is not allowed", AllowedValues: []string{"a", "b"}}
	assert.Equal(t, "status: is not allowed (allowed: a, b)", err.Error())
}

package mcapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type stringerID string

func (s stringerID) String() string { return string(s) }

type pageNumber uint32

func TestBuildPath(t *testing.T) {
	t.Parallel()

	var nilString *string

	listID := "abc123"

	tests := []struct {
		name     string
		endpoint string
		segments []any
		expected string
	}{
		{name: "endpoint only", endpoint: "lists", expected: "/lists"},
		{name: "single id", endpoint: "lists", segments: []any{"abc123"}, expected: "/lists/abc123"},
		{
			name:     "nested resource",
			endpoint: "lists",
			segments: []any{"abc123", "members", "5f4dcc3b5aa765d61d8327deb882cf99"},
			expected: "/lists/abc123/members/5f4dcc3b5aa765d61d8327deb882cf99",
		},
		{name: "nil segments skipped", endpoint: "lists", segments: []any{nil, "abc123", nil}, expected: "/lists/abc123"},
		{name: "nil string pointer skipped", endpoint: "lists", segments: []any{nilString}, expected: "/lists"},
		{name: "string pointer", endpoint: "lists", segments: []any{&listID}, expected: "/lists/abc123"},
		{name: "integer segment", endpoint: "lists", segments: []any{"abc123", "merge-fields", 7}, expected: "/lists/abc123/merge-fields/7"},
		{name: "int8 segment", endpoint: "lists", segments: []any{int8(-3)}, expected: "/lists/-3"},
		{name: "int16 segment", endpoint: "lists", segments: []any{int16(300)}, expected: "/lists/300"},
		{name: "uint8 segment", endpoint: "lists", segments: []any{uint8(255)}, expected: "/lists/255"},
		{name: "uint16 segment", endpoint: "lists", segments: []any{uint16(65535)}, expected: "/lists/65535"},
		{name: "int64 segment", endpoint: "lists", segments: []any{int64(1) << 40}, expected: "/lists/1099511627776"},
		{name: "named integer segment", endpoint: "lists", segments: []any{pageNumber(2)}, expected: "/lists/2"},
		{name: "stringer segment", endpoint: "campaigns", segments: []any{stringerID("c1")}, expected: "/campaigns/c1"},
		{name: "slash escaped", endpoint: "lists", segments: []any{"a/b"}, expected: "/lists/a%2Fb"},
		{name: "leading slash trimmed", endpoint: "/ping/", expected: "/ping"},
		{name: "multi part endpoint", endpoint: "lists/abc123", segments: []any{"webhooks"}, expected: "/lists/abc123/webhooks"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := mcapi.BuildPath(tt.endpoint, tt.segments...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestBuildPath_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		segments []any
	}{
		{name: "empty endpoint", endpoint: ""},
		{name: "empty segment", endpoint: "lists", segments: []any{""}},
		{name: "unsupported type", endpoint: "lists", segments: []any{3.14}},
		{name: "bool segment", endpoint: "lists", segments: []any{true}},
		{name: "empty endpoint part", endpoint: "lists//x"},
		{name: "only slashes", endpoint: "///"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mcapi.BuildPath(tt.endpoint, tt.segments...)
			require.ErrorIs(t, err, mcapi.ErrInvalidPath)
		})
	}
}

func TestMustBuildPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/ping", mcapi.MustBuildPath("ping"))
	assert.Panics(t, func() { mcapi.MustBuildPath("") })
}

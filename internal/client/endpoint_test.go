package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/mcapi/internal/http"
	"github.com/fivetwenty-io/mcapi/internal/validation"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type testItem struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

var testSchema = &mcapi.ResourceSchema{
	Name:          "thing",
	Endpoint:      "lists",
	SubPath:       "things",
	CollectionKey: "things",
	Create:        &mcapi.Rules{Required: []string{"name"}},
}

func newTestEndpoint(baseURL string, opts *mcapi.PaginationOptions, scope ...string) *Endpoint[testItem, testItem, testItem] {
	b := &backend{
		httpClient: internalhttp.NewClient(baseURL, nil),
		validator:  validation.New(nil),
		pagination: opts,
	}

	return NewEndpoint[testItem, testItem, testItem](b, testSchema, scope...)
}

func TestEndpoint_Paths(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, map[string]interface{}{"id": "x"})
	endpoint := newTestEndpoint(server.URL, nil, "list 1")
	ctx := context.Background()

	_, err := endpoint.Get(ctx, "item/2", nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list%201/things/item%2F2", server.Last(t).Path)

	_, err = endpoint.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list%201/things", server.Last(t).Path)

	require.NoError(t, endpoint.Delete(ctx, "abc"))
	assert.Equal(t, http.MethodDelete, server.Last(t).Method)
	assert.Equal(t, "/lists/list%201/things/abc", server.Last(t).Path)
}

func TestEndpoint_InvalidScope(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, map[string]interface{}{})
	endpoint := newTestEndpoint(server.URL, nil, "")

	_, err := endpoint.List(context.Background(), nil)
	require.ErrorIs(t, err, mcapi.ErrInvalidPath)

	_, err = newTestEndpoint(server.URL, nil, "list").Get(context.Background(), "", nil)
	require.ErrorIs(t, err, mcapi.ErrInvalidPath)

	assert.Empty(t, server.Requests())
}

func TestEndpoint_ValidationBlocksRequest(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, map[string]interface{}{"id": "x"})
	endpoint := newTestEndpoint(server.URL, nil, "list")

	_, err := endpoint.Create(context.Background(), &testItem{})
	require.Error(t, err)
	assert.True(t, mcapi.IsValidation(err))

	var validationErr *mcapi.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name"}, validationErr.Fields())
	assert.Empty(t, server.Requests())

	created, err := endpoint.Create(context.Background(), &testItem{Name: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "x", created.ID)
	assert.Equal(t, "ok", server.Last(t).Body["name"])
}

func TestEndpoint_List(t *testing.T) {
	t.Parallel()

	t.Run("collection key", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK, map[string]interface{}{
			"things":      []map[string]interface{}{{"id": "a"}, {"id": "b"}},
			"total_items": 7,
		})

		page, err := newTestEndpoint(server.URL, nil, "list").List(context.Background(),
			mcapi.NewQueryParams().WithCount(2).WithOffset(4).WithFields("things.id"))
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 7, page.TotalItems)

		query := server.Last(t).Query
		assert.Equal(t, []string{"2"}, query["count"])
		assert.Equal(t, []string{"4"}, query["offset"])
		assert.Equal(t, []string{"things.id"}, query["fields"])
	})

	t.Run("items fallback", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusOK, map[string]interface{}{
			"items":       []map[string]interface{}{{"id": "a"}},
			"total_items": 1,
		})

		page, err := newTestEndpoint(server.URL, nil, "list").List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "a", page.Items[0].ID)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusNotFound, map[string]interface{}{
			"title":  "Resource Not Found",
			"status": 404,
			"detail": "The requested resource could not be found.",
		})

		page, err := newTestEndpoint(server.URL, nil, "list").List(context.Background(), nil)
		require.Error(t, err)
		assert.Nil(t, page)
		assert.True(t, mcapi.IsNotFound(err))
	})
}

func TestEndpoint_ListAll(t *testing.T) {
	t.Parallel()

	t.Run("walks every page", func(t *testing.T) {
		t.Parallel()

		server := newRecordingServer(t, pagedHandler(t, "things", 1137))

		items, err := newTestEndpoint(server.URL, nil, "list").ListAll(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, items, 1137)
		assert.Equal(t, "item-0", items[0].ID)
		assert.Equal(t, "item-1136", items[1136].ID)

		requests := server.Requests()
		require.Len(t, requests, 3)

		offsets := make([]string, 0, len(requests))
		for _, request := range requests {
			offsets = append(offsets, request.Query["offset"][0])
			assert.Equal(t, []string{"500"}, request.Query["count"])
		}

		assert.Equal(t, []string{"0", "500", "1000"}, offsets)
	})

	t.Run("caller paging is replaced and fields keep total_items", func(t *testing.T) {
		t.Parallel()

		server := newRecordingServer(t, pagedHandler(t, "things", 3))
		params := mcapi.NewQueryParams().WithCount(1).WithOffset(2).WithFields("things.id")

		items, err := newTestEndpoint(server.URL, &mcapi.PaginationOptions{PageSize: 10}, "list").
			ListAll(context.Background(), params)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		query := server.Last(t).Query
		assert.Equal(t, []string{"0"}, query["offset"])
		assert.Equal(t, []string{"10"}, query["count"])
		assert.Equal(t, []string{"things.id,total_items"}, query["fields"])

		// the caller's params are untouched
		assert.Equal(t, 1, params.Count)
		assert.Equal(t, []string{"things.id"}, params.Fields)
	})

	t.Run("error aborts", func(t *testing.T) {
		t.Parallel()

		server := jsonServer(t, http.StatusInternalServerError, map[string]interface{}{"title": "Internal"})

		items, err := newTestEndpoint(server.URL, nil, "list").ListAll(context.Background(), nil)
		require.Error(t, err)
		assert.Nil(t, items)

		var transportErr *mcapi.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
		assert.Len(t, server.Requests(), 1)
	})
}

func TestEndpoint_HandlesAreIndependent(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, map[string]interface{}{"things": []interface{}{}})
	client := NewTestClient(server.URL)

	first := client.Lists().Segments("list-a")
	second := client.Lists().Segments("list-b")

	_, err := first.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list-a/segments", server.Last(t).Path)

	_, err = second.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list-b/segments", server.Last(t).Path)

	_, err = first.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list-a/segments", server.Last(t).Path)
}

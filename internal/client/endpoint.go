package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/mcapi/internal/http"
	"github.com/fivetwenty-io/mcapi/internal/validation"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// backend is what every endpoint handle shares.
type backend struct {
	httpClient *http.Client
	validator  *validation.Validator
	pagination *mcapi.PaginationOptions
}

// Endpoint is the generic client of one collection resource. T is the
// resource, C the create payload and U the update payload.
//
// An Endpoint is immutable: scope holds the parent ids it was created for,
// e.g. the list id of a members handle.
type Endpoint[T, C, U any] struct {
	backend *backend
	schema  *mcapi.ResourceSchema
	scope   []string
	idFunc  func(string) string
}

// NewEndpoint creates a handle for schema below the given parent ids.
func NewEndpoint[T, C, U any](b *backend, schema *mcapi.ResourceSchema, scope ...string) *Endpoint[T, C, U] {
	return &Endpoint[T, C, U]{
		backend: b,
		schema:  schema,
		scope:   append([]string(nil), scope...),
	}
}

// withIDFunc returns a copy that maps item ids through fn before they are
// put in a path.
func (e *Endpoint[T, C, U]) withIDFunc(fn func(string) string) *Endpoint[T, C, U] {
	clone := *e
	clone.idFunc = fn

	return &clone
}

func (e *Endpoint[T, C, U]) segments(extra ...any) []any {
	segments := make([]any, 0, len(e.scope)+1+len(extra))
	for _, id := range e.scope {
		segments = append(segments, id)
	}

	if e.schema.Nested() {
		segments = append(segments, e.schema.SubPath)
	}

	return append(segments, extra...)
}

func (e *Endpoint[T, C, U]) collectionPath() (string, error) {
	return mcapi.BuildPath(e.schema.Endpoint, e.segments()...)
}

// itemPath builds the path of one item, with optional trailing segments such
// as "actions", "send".
func (e *Endpoint[T, C, U]) itemPath(id string, extra ...any) (string, error) {
	if e.idFunc != nil && id != "" {
		id = e.idFunc(id)
	}

	return mcapi.BuildPath(e.schema.Endpoint, e.segments(append([]any{id}, extra...)...)...)
}

func (e *Endpoint[T, C, U]) validate(rules *mcapi.Rules, payload interface{}) (interface{}, error) {
	return e.backend.validator.Validate(e.schema.Name, rules, payload)
}

// Create implements mcapi.ResourceClient.Create.
func (e *Endpoint[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	body, err := e.validate(e.schema.Create, request)
	if err != nil {
		return nil, err
	}

	path, err := e.collectionPath()
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", e.schema.Name, err)
	}

	return decode[T](resp, e.schema.Name)
}

// Get implements mcapi.ResourceReader.Get.
func (e *Endpoint[T, C, U]) Get(ctx context.Context, id string, params *mcapi.QueryParams) (*T, error) {
	path, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", e.schema.Name, err)
	}

	return decode[T](resp, e.schema.Name)
}

// List implements mcapi.ResourceReader.List.
func (e *Endpoint[T, C, U]) List(ctx context.Context, params *mcapi.QueryParams) (*mcapi.Page[T], error) {
	path, err := e.collectionPath()
	if err != nil {
		return nil, err
	}

	return fetchPage[T](ctx, e.backend.httpClient, path, e.schema, params)
}

// ListAll implements mcapi.ResourceReader.ListAll.
func (e *Endpoint[T, C, U]) ListAll(ctx context.Context, params *mcapi.QueryParams) ([]T, error) {
	base := params.ForFetchAll()

	fetch := func(ctx context.Context, offset, count int) (*mcapi.Page[T], error) {
		return e.List(ctx, base.Clone().WithOffset(offset).WithCount(count))
	}

	items, err := mcapi.FetchAll(ctx, fetch, e.backend.pagination)
	if err != nil {
		return nil, fmt.Errorf("listing all %s: %w", e.schema.Name, err)
	}

	return items, nil
}

// Update implements mcapi.ResourceClient.Update.
func (e *Endpoint[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	body, err := e.validate(e.schema.Update, request)
	if err != nil {
		return nil, err
	}

	path, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", e.schema.Name, err)
	}

	return decode[T](resp, e.schema.Name)
}

// Upsert sends a PUT that creates the item or replaces it.
func (e *Endpoint[T, C, U]) Upsert(ctx context.Context, id string, rules *mcapi.Rules, request *C) (*T, error) {
	body, err := e.validate(rules, request)
	if err != nil {
		return nil, err
	}

	path, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("upserting %s: %w", e.schema.Name, err)
	}

	return decode[T](resp, e.schema.Name)
}

// Delete implements mcapi.ResourceClient.Delete.
func (e *Endpoint[T, C, U]) Delete(ctx context.Context, id string) error {
	path, err := e.itemPath(id)
	if err != nil {
		return err
	}

	_, err = e.backend.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", e.schema.Name, err)
	}

	return nil
}

// action posts to /<item>/actions/<name>. The payload, when given, is checked
// against rules first. The raw response is returned for actions that answer
// with a resource.
func (e *Endpoint[T, C, U]) action(
	ctx context.Context, id, name string, rules *mcapi.Rules, payload interface{},
) (*http.Response, error) {
	var body interface{}

	if payload != nil {
		validated, err := e.validate(rules, payload)
		if err != nil {
			return nil, err
		}

		body = validated
	}

	path, err := e.itemPath(id, "actions", name)
	if err != nil {
		return nil, err
	}

	resp, err := e.backend.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("running %s action on %s: %w", name, e.schema.Name, err)
	}

	return resp, nil
}

func queryValues(params *mcapi.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}

func decode[T any](resp *http.Response, name string) (*T, error) {
	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", name, err)
	}

	return &result, nil
}

// fetchPage reads one page. Items are taken from the schema's collection key
// and from "items" when the response has no such key.
func fetchPage[T any](
	ctx context.Context, httpClient *http.Client, path string, schema *mcapi.ResourceSchema, params *mcapi.QueryParams,
) (*mcapi.Page[T], error) {
	resp, err := httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", schema.Name, err)
	}

	var raw map[string]json.RawMessage

	err = json.Unmarshal(resp.Body, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", schema.Name, err)
	}

	itemsRaw, ok := raw[schema.CollectionKey]
	if !ok {
		itemsRaw = raw["items"]
	}

	page := &mcapi.Page[T]{}

	if len(itemsRaw) > 0 {
		err = json.Unmarshal(itemsRaw, &page.Items)
		if err != nil {
			return nil, fmt.Errorf("parsing %s list items: %w", schema.Name, err)
		}
	}

	if total, ok := raw[mcapi.TotalItemsField]; ok {
		err = json.Unmarshal(total, &page.TotalItems)
		if err != nil {
			return nil, fmt.Errorf("parsing %s total items: %w", schema.Name, err)
		}
	}

	return page, nil
}

package mcapi

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// TotalItemsField is the response field the API reports collection size in.
const TotalItemsField = "total_items"

// QueryParams holds the common query parameters accepted by collection and
// instance endpoints.
type QueryParams struct {
	// Count is the page size. Zero leaves it to the server.
	Count int
	// Offset is the number of records to skip. It is only sent when HasOffset
	// is set so that an explicit zero offset still reaches the server.
	Offset    int
	HasOffset bool
	// Fields limits the response to the listed (dotted) fields.
	Fields []string
	// ExcludeFields drops the listed fields from the response.
	ExcludeFields []string
	// Filters holds endpoint specific filters such as status or since_last_changed.
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithCount sets the page size.
func (q *QueryParams) WithCount(count int) *QueryParams {
	q.Count = count

	return q
}

// WithOffset sets the number of records to skip.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset
	q.HasOffset = true

	return q
}

// WithFields appends to the response field selection.
func (q *QueryParams) WithFields(fields ...string) *QueryParams {
	q.Fields = append(q.Fields, fields...)

	return q
}

// WithExcludeFields appends to the excluded response fields.
func (q *QueryParams) WithExcludeFields(fields ...string) *QueryParams {
	q.ExcludeFields = append(q.ExcludeFields, fields...)

	return q
}

// WithFilter adds values to a filter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// Clone returns a deep copy so callers' params are never modified.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := &QueryParams{
		Count:         q.Count,
		Offset:        q.Offset,
		HasOffset:     q.HasOffset,
		Fields:        append([]string(nil), q.Fields...),
		ExcludeFields: append([]string(nil), q.ExcludeFields...),
		Filters:       make(map[string][]string, len(q.Filters)),
	}

	for key, values := range q.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return clone
}

// ForFetchAll prepares params for a full collection fetch: paging keys are
// dropped, since the fetcher owns them, and total_items is kept in the field
// selection so a restricted selection still reports the collection size.
func (q *QueryParams) ForFetchAll() *QueryParams {
	clone := q.Clone()
	clone.Count = 0
	clone.Offset = 0
	clone.HasOffset = false

	if len(clone.Fields) > 0 && !containsString(clone.Fields, TotalItemsField) {
		clone.Fields = append(clone.Fields, TotalItemsField)
	}

	return clone
}

// ToValues converts QueryParams to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Count > 0 {
		values.Set("count", strconv.Itoa(q.Count))
	}

	if q.HasOffset {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	if len(q.ExcludeFields) > 0 {
		values.Set("exclude_fields", strings.Join(q.ExcludeFields, ","))
	}

	keys := make([]string, 0, len(q.Filters))
	for key := range q.Filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if len(q.Filters[key]) > 0 {
			values.Set(key, strings.Join(q.Filters[key], ","))
		}
	}

	return values
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}

	return false
}

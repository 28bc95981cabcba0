package mcapi

import (
	"context"
	"fmt"
)

// Pagination defaults.
const (
	DefaultPageSize = 500
	DefaultMaxPages = 10000
)

// PageFunc fetches one page starting at offset with at most count items.
type PageFunc[T any] func(ctx context.Context, offset, count int) (*Page[T], error)

// PaginationOptions configures pagination behavior.
type PaginationOptions struct {
	// PageSize is the number of items requested per call.
	PageSize int
	// MaxPages caps the number of consecutive full pages. A server that never
	// returns a short page makes the fetch fail instead of looping forever.
	MaxPages int
}

// DefaultPaginationOptions returns default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: DefaultPageSize,
		MaxPages: DefaultMaxPages,
	}
}

func (o *PaginationOptions) normalized() PaginationOptions {
	result := *DefaultPaginationOptions()
	if o == nil {
		return result
	}

	if o.PageSize > 0 {
		result.PageSize = o.PageSize
	}

	if o.MaxPages > 0 {
		result.MaxPages = o.MaxPages
	}

	return result
}

// FetchAll walks a collection with offset paging until a page comes back with
// fewer items than requested. Items keep server order. Any error aborts the
// whole fetch and no partial result is returned.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) ([]T, error) {
	iterator := NewPageIterator(ctx, fetch, opts)

	items, err := iterator.All()
	if err != nil {
		return nil, err
	}

	return items, nil
}

// PageIterator provides iteration over paginated results.
type PageIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // iterator is bound to one fetch
	fetch   PageFunc[T]
	options PaginationOptions

	offset    int
	fullPages int
	current   []T
	index     int
	done      bool
	err       error
}

// NewPageIterator creates a new page iterator.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) *PageIterator[T] {
	iterator := &PageIterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		options: opts.normalized(),
	}

	if fetch == nil {
		iterator.err = ErrPageFuncRequired
		iterator.done = true
	}

	return iterator
}

// HasNext returns true if there are more items. It fetches the next page
// when the current one is exhausted.
func (p *PageIterator[T]) HasNext() bool {
	for p.index >= len(p.current) {
		if p.done || p.err != nil {
			return false
		}

		p.fetchNext()
	}

	return true
}

// Next returns the next item.
func (p *PageIterator[T]) Next() (T, error) {
	var zero T

	if !p.HasNext() {
		if p.err != nil {
			return zero, p.err
		}

		return zero, ErrNoMoreItems
	}

	item := p.current[p.index]
	p.index++

	return item, nil
}

// Err returns the error that stopped iteration, if any.
func (p *PageIterator[T]) Err() error {
	return p.err
}

// All drains the iterator.
func (p *PageIterator[T]) All() ([]T, error) {
	var all []T

	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	if p.err != nil {
		return nil, p.err
	}

	return all, nil
}

// ForEach calls fn for every remaining item and stops at the first error.
func (p *PageIterator[T]) ForEach(fn func(T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return p.err
}

func (p *PageIterator[T]) fetchNext() {
	if p.fullPages >= p.options.MaxPages {
		p.err = &PaginationError{
			MaxPages: p.options.MaxPages,
			PageSize: p.options.PageSize,
			Offset:   p.offset,
		}

		return
	}

	err := p.ctx.Err()
	if err != nil {
		p.err = fmt.Errorf("fetching page at offset %d: %w", p.offset, err)

		return
	}

	page, err := p.fetch(p.ctx, p.offset, p.options.PageSize)
	if err != nil {
		p.err = fmt.Errorf("fetching page at offset %d: %w", p.offset, err)

		return
	}

	var items []T
	if page != nil {
		items = page.Items
	}

	p.current = items
	p.index = 0

	if len(items) < p.options.PageSize {
		p.done = true

		return
	}

	p.fullPages++
	p.offset += p.options.PageSize
}

package mcapi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxBatchMembers is the most members one batch subscribe call accepts.
const MaxBatchMembers = 500

// MemberUpdater performs one batch subscribe call. ListsClient implements it.
type MemberUpdater interface {
	UpdateMembers(ctx context.Context, listID string, request *BatchMembersRequest) (*BatchMembersResponse, error)
}

// BatchResult is the outcome of one chunk.
type BatchResult struct {
	ID       string
	Offset   int
	Size     int
	Success  bool
	Data     *BatchMembersResponse
	Error    error
	Duration time.Duration
}

// BatchSummary aggregates the chunk results of a MemberBatcher run.
type BatchSummary struct {
	Results        []BatchResult
	TotalCreated   int
	TotalUpdated   int
	TotalErrors    int
	MemberErrors   []BatchMemberError
	ProcessedCount int
}

// MemberBatcher subscribes member slices of any size by splitting them into
// chunks the API accepts. Chunks run one after another; the first failing
// chunk stops the run.
type MemberBatcher struct {
	updater   MemberUpdater
	chunkSize int
	timeout   time.Duration
	callback  func(result *BatchResult)
}

// NewMemberBatcher creates a batcher. chunkSize is clamped to 1..500.
func NewMemberBatcher(updater MemberUpdater, chunkSize int) *MemberBatcher {
	if chunkSize <= 0 || chunkSize > MaxBatchMembers {
		chunkSize = MaxBatchMembers
	}

	return &MemberBatcher{
		updater:   updater,
		chunkSize: chunkSize,
	}
}

// SetTimeout bounds each chunk call. Zero disables the per-chunk timeout.
func (b *MemberBatcher) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// OnChunk registers a callback invoked after each chunk.
func (b *MemberBatcher) OnChunk(fn func(result *BatchResult)) {
	b.callback = fn
}

// Chunks splits members into slices of at most size entries.
func Chunks[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

// Subscribe sends all members to the list. The summary holds every chunk
// attempted, including the failing one.
func (b *MemberBatcher) Subscribe(ctx context.Context, listID string, members []MemberRequest, updateExisting bool) (*BatchSummary, error) {
	summary := &BatchSummary{}

	for index, chunk := range Chunks(members, b.chunkSize) {
		result := b.runChunk(ctx, listID, chunk, updateExisting)
		result.Offset = index * b.chunkSize

		summary.Results = append(summary.Results, *result)

		if b.callback != nil {
			b.callback(result)
		}

		if result.Error != nil {
			return summary, fmt.Errorf("subscribing members %d-%d: %w", result.Offset, result.Offset+result.Size-1, result.Error)
		}

		summary.ProcessedCount += result.Size
		summary.TotalCreated += result.Data.TotalCreated
		summary.TotalUpdated += result.Data.TotalUpdated
		summary.TotalErrors += result.Data.ErrorCount
		summary.MemberErrors = append(summary.MemberErrors, result.Data.Errors...)
	}

	return summary, nil
}

func (b *MemberBatcher) runChunk(ctx context.Context, listID string, chunk []MemberRequest, updateExisting bool) *BatchResult {
	result := &BatchResult{ID: uuid.NewString(), Size: len(chunk)}

	if b.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	data, err := b.updater.UpdateMembers(ctx, listID, &BatchMembersRequest{
		Members:        chunk,
		UpdateExisting: &updateExisting,
	})
	result.Duration = time.Since(start)
	result.Data = data
	result.Error = err
	result.Success = err == nil && data != nil

	if err == nil && data == nil {
		result.Data = &BatchMembersResponse{}
		result.Success = true
	}

	return result
}

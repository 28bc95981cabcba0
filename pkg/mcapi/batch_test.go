package mcapi_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type fakeUpdater struct {
	sizes  []int
	failOn int
}

func (f *fakeUpdater) UpdateMembers(_ context.Context, _ string, request *mcapi.BatchMembersRequest) (*mcapi.BatchMembersResponse, error) {
	f.sizes = append(f.sizes, len(request.Members))

	if f.failOn > 0 && len(f.sizes) == f.failOn {
		return nil, errTestRejected
	}

	return &mcapi.BatchMembersResponse{TotalCreated: len(request.Members)}, nil
}

func members(count int) []mcapi.MemberRequest {
	result := make([]mcapi.MemberRequest, count)
	for i := range result {
		result[i] = mcapi.MemberRequest{
			EmailAddress: fmt.Sprintf("user%d@example.com", i),
			Status:       mcapi.MemberStatusSubscribed,
		}
	}

	return result
}

func TestChunks(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mcapi.Chunks([]int{}, 3))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, mcapi.Chunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1}, {2}}, mcapi.Chunks([]int{1, 2}, 0))
}

func TestMemberBatcher_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("splits into chunks of 500", func(t *testing.T) {
		t.Parallel()

		updater := &fakeUpdater{}
		batcher := mcapi.NewMemberBatcher(updater, 0)

		var callbacks int

		batcher.OnChunk(func(_ *mcapi.BatchResult) { callbacks++ })

		summary, err := batcher.Subscribe(context.Background(), "list1", members(1201), false)
		require.NoError(t, err)
		assert.Equal(t, []int{500, 500, 201}, updater.sizes)
		assert.Equal(t, 1201, summary.TotalCreated)
		assert.Equal(t, 1201, summary.ProcessedCount)
		assert.Len(t, summary.Results, 3)
		assert.Equal(t, 1000, summary.Results[2].Offset)
		assert.Equal(t, 3, callbacks)
		assert.NotEqual(t, summary.Results[0].ID, summary.Results[1].ID)
	})

	t.Run("stops at first failing chunk", func(t *testing.T) {
		t.Parallel()

		updater := &fakeUpdater{failOn: 2}
		batcher := mcapi.NewMemberBatcher(updater, 10)

		summary, err := batcher.Subscribe(context.Background(), "list1", members(35), true)
		require.ErrorIs(t, err, errTestRejected)
		assert.Equal(t, []int{10, 10}, updater.sizes)
		assert.Equal(t, 10, summary.ProcessedCount)
		assert.Len(t, summary.Results, 2)
		assert.False(t, summary.Results[1].Success)
	})

	t.Run("no members makes no calls", func(t *testing.T) {
		t.Parallel()

		updater := &fakeUpdater{}

		summary, err := mcapi.NewMemberBatcher(updater, 500).Subscribe(context.Background(), "list1", nil, false)
		require.NoError(t, err)
		assert.Empty(t, updater.sizes)
		assert.Empty(t, summary.Results)
	})
}

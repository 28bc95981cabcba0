package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// md5("urist.mcvankab@freddiesjokes.com")
const uristHash = "62eeb292278cc15f5817cb78f7790b08"

func TestMembersClient_EmailIDsAreHashed(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Member{ID: uristHash})
	members := NewTestClient(server.URL).Lists().Members("list-1")
	ctx := context.Background()

	_, err := members.Get(ctx, "Urist.McVankab@freddiesjokes.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list-1/members/"+uristHash, server.Last(t).Path)

	_, err = members.Get(ctx, uristHash, nil)
	require.NoError(t, err)
	assert.Equal(t, "/lists/list-1/members/"+uristHash, server.Last(t).Path)

	require.NoError(t, members.Delete(ctx, "urist.mcvankab@freddiesjokes.com"))
	assert.Equal(t, http.MethodDelete, server.Last(t).Method)
	assert.Equal(t, "/lists/list-1/members/"+uristHash, server.Last(t).Path)

	require.NoError(t, members.DeletePermanent(ctx, "urist.mcvankab@freddiesjokes.com"))
	assert.Equal(t, http.MethodPost, server.Last(t).Method)
	assert.Equal(t, "/lists/list-1/members/"+uristHash+"/actions/delete-permanent", server.Last(t).Path)
}

func TestMembersClient_Create(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[mcapi.MemberRequest, mcapi.Member]{
		{
			Name:         "subscribed member",
			Request:      &mcapi.MemberRequest{EmailAddress: "a@example.com", Status: mcapi.MemberStatusSubscribed},
			ExpectedPath: "/lists/list-1/members",
			StatusCode:   http.StatusOK,
			Response:     &mcapi.Member{ID: "abc", Status: mcapi.MemberStatusSubscribed},
		},
		{
			Name:       "missing status",
			Request:    &mcapi.MemberRequest{EmailAddress: "a@example.com"},
			WantErr:    true,
			ErrMessage: "status: is required",
			WantNoCall: true,
		},
		{
			Name:       "archived is not a create status",
			Request:    &mcapi.MemberRequest{EmailAddress: "a@example.com", Status: mcapi.MemberStatusArchived},
			WantErr:    true,
			ErrMessage: "allowed: subscribed, unsubscribed, cleaned, pending, transactional",
			WantNoCall: true,
		},
		{
			Name:       "bad email",
			Request:    &mcapi.MemberRequest{EmailAddress: "nobody", Status: mcapi.MemberStatusPending},
			WantErr:    true,
			ErrMessage: "not a valid email",
			WantNoCall: true,
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *mcapi.MemberRequest) (*mcapi.Member, error) {
		return c.Lists().Members("list-1").Create
	})
}

func TestMembersClient_EveryStatusIsAccepted(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Member{})
	members := NewTestClient(server.URL).Lists().Members("list-1")

	for _, status := range []mcapi.MemberStatus{
		mcapi.MemberStatusSubscribed,
		mcapi.MemberStatusUnsubscribed,
		mcapi.MemberStatusCleaned,
		mcapi.MemberStatusPending,
		mcapi.MemberStatusTransactional,
	} {
		_, err := members.Create(context.Background(), &mcapi.MemberRequest{EmailAddress: "a@example.com", Status: status})
		require.NoError(t, err, status)
		assert.Equal(t, string(status), server.Last(t).Body["status"])
	}
}

func TestMembersClient_Upsert(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Member{ID: uristHash})
	members := NewTestClient(server.URL).Lists().Members("list-1")

	_, err := members.Upsert(context.Background(), "urist.mcvankab@freddiesjokes.com", &mcapi.MemberRequest{
		EmailAddress: "urist.mcvankab@freddiesjokes.com",
		Status:       mcapi.MemberStatusSubscribed,
	})
	assert.True(t, mcapi.IsValidation(err), "upsert needs status_if_new")
	assert.Empty(t, server.Requests())

	member, err := members.Upsert(context.Background(), "urist.mcvankab@freddiesjokes.com", &mcapi.MemberRequest{
		EmailAddress: "urist.mcvankab@freddiesjokes.com",
		StatusIfNew:  mcapi.MemberStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, uristHash, member.ID)

	last := server.Last(t)
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/lists/list-1/members/"+uristHash, last.Path)
	assert.Equal(t, "pending", last.Body["status_if_new"])
}

func TestMembersClient_Update(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, &mcapi.Member{ID: uristHash, Status: mcapi.MemberStatusUnsubscribed})
	members := NewTestClient(server.URL).Lists().Members("list-1")

	member, err := members.Update(context.Background(), uristHash, &mcapi.MemberRequest{Status: mcapi.MemberStatusUnsubscribed})
	require.NoError(t, err)
	assert.Equal(t, mcapi.MemberStatusUnsubscribed, member.Status)
	assert.Equal(t, http.MethodPatch, server.Last(t).Method)

	_, err = members.Update(context.Background(), uristHash, &mcapi.MemberRequest{Status: "gone"})
	assert.True(t, mcapi.IsValidation(err))
	assert.Len(t, server.Requests(), 1)
}

func TestMembersClient_Tags(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, map[string]interface{}{
		"tags":        []map[string]interface{}{{"id": 1, "name": "vip"}, {"id": 2, "name": "beta"}},
		"total_items": 2,
	})
	members := NewTestClient(server.URL).Lists().Members("list-1")
	ctx := context.Background()

	page, err := members.Tags(ctx, uristHash, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "vip", page.Items[0].Name)
	assert.Equal(t, "/lists/list-1/members/"+uristHash+"/tags", server.Last(t).Path)

	err = members.UpdateTags(ctx, uristHash, &mcapi.MemberTagsRequest{
		Tags: []mcapi.MemberTag{{Name: "vip", Status: "inactive"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, server.Last(t).Method)

	err = members.UpdateTags(ctx, uristHash, &mcapi.MemberTagsRequest{
		Tags: []mcapi.MemberTag{{Name: "vip", Status: "removed"}},
	})

	var validationErr *mcapi.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"tags[0].status"}, validationErr.Fields())
	assert.Len(t, server.Requests(), 2)
}

func TestMembersClient_ListAll(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, pagedHandler(t, "members", 1137))
	members := NewTestClient(server.URL).Lists().Members("list-1")

	all, err := members.ListAll(context.Background(), mcapi.NewQueryParams().WithFilter("status", "subscribed"))
	require.NoError(t, err)
	assert.Len(t, all, 1137)

	requests := server.Requests()
	require.Len(t, requests, 3)

	for _, request := range requests {
		assert.Equal(t, "/lists/list-1/members", request.Path)
		assert.Equal(t, []string{"subscribed"}, request.Query["status"])
	}
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type memberEndpoint = Endpoint[mcapi.Member, mcapi.MemberRequest, mcapi.MemberRequest]

// MembersClient implements mcapi.MembersClient for one list. Ids may be
// email addresses; they are sent as subscriber hashes.
type MembersClient struct {
	*memberEndpoint
}

// NewMembersClient creates a members client scoped to listID.
func NewMembersClient(b *backend, listID string) *MembersClient {
	endpoint := NewEndpoint[mcapi.Member, mcapi.MemberRequest, mcapi.MemberRequest](b, MemberSchema, listID)

	return &MembersClient{memberEndpoint: endpoint.withIDFunc(mcapi.MemberID)}
}

// Upsert implements mcapi.MembersClient.Upsert.
func (c *MembersClient) Upsert(ctx context.Context, id string, request *mcapi.MemberRequest) (*mcapi.Member, error) {
	return c.memberEndpoint.Upsert(ctx, id, memberUpsertRules, request)
}

// DeletePermanent implements mcapi.MembersClient.DeletePermanent.
func (c *MembersClient) DeletePermanent(ctx context.Context, id string) error {
	_, err := c.action(ctx, id, "delete-permanent", nil, nil)

	return err
}

// Tags implements mcapi.MembersClient.Tags.
func (c *MembersClient) Tags(ctx context.Context, id string, params *mcapi.QueryParams) (*mcapi.Page[mcapi.MemberTag], error) {
	path, err := c.itemPath(id, "tags")
	if err != nil {
		return nil, err
	}

	return fetchPage[mcapi.MemberTag](ctx, c.backend.httpClient, path, MemberTagsSchema, params)
}

// UpdateTags implements mcapi.MembersClient.UpdateTags.
func (c *MembersClient) UpdateTags(ctx context.Context, id string, request *mcapi.MemberTagsRequest) error {
	body, err := c.backend.validator.Validate(MemberTagsSchema.Name, MemberTagsSchema.Create, request)
	if err != nil {
		return err
	}

	path, err := c.itemPath(id, "tags")
	if err != nil {
		return err
	}

	_, err = c.backend.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("updating member tags: %w", err)
	}

	return nil
}

var _ mcapi.MembersClient = (*MembersClient)(nil)

package client

import (
	"context"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type campaignEndpoint = Endpoint[mcapi.Campaign, mcapi.CampaignRequest, mcapi.CampaignRequest]

// CampaignsClient implements mcapi.CampaignsClient.
type CampaignsClient struct {
	*campaignEndpoint
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(b *backend) *CampaignsClient {
	return &CampaignsClient{
		campaignEndpoint: NewEndpoint[mcapi.Campaign, mcapi.CampaignRequest, mcapi.CampaignRequest](b, CampaignSchema),
	}
}

// Send implements mcapi.CampaignsClient.Send.
func (c *CampaignsClient) Send(ctx context.Context, id string) error {
	_, err := c.action(ctx, id, "send", nil, nil)

	return err
}

// Schedule implements mcapi.CampaignsClient.Schedule.
func (c *CampaignsClient) Schedule(ctx context.Context, id string, request *mcapi.CampaignScheduleRequest) error {
	_, err := c.action(ctx, id, "schedule", campaignScheduleRules, request)

	return err
}

// Unschedule implements mcapi.CampaignsClient.Unschedule.
func (c *CampaignsClient) Unschedule(ctx context.Context, id string) error {
	_, err := c.action(ctx, id, "unschedule", nil, nil)

	return err
}

// Test implements mcapi.CampaignsClient.Test.
func (c *CampaignsClient) Test(ctx context.Context, id string, request *mcapi.CampaignTestRequest) error {
	_, err := c.action(ctx, id, "test", campaignTestRules, request)

	return err
}

// Cancel implements mcapi.CampaignsClient.Cancel.
func (c *CampaignsClient) Cancel(ctx context.Context, id string) error {
	_, err := c.action(ctx, id, "cancel-send", nil, nil)

	return err
}

// Replicate implements mcapi.CampaignsClient.Replicate.
func (c *CampaignsClient) Replicate(ctx context.Context, id string) (*mcapi.Campaign, error) {
	resp, err := c.action(ctx, id, "replicate", nil, nil)
	if err != nil {
		return nil, err
	}

	return decode[mcapi.Campaign](resp, CampaignSchema.Name)
}

var _ mcapi.CampaignsClient = (*CampaignsClient)(nil)

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

type (
	listEndpoint             = Endpoint[mcapi.List, mcapi.ListRequest, mcapi.ListRequest]
	twitterCardEndpoint      = Endpoint[mcapi.TwitterCard, mcapi.TwitterCardRequest, mcapi.TwitterCardRequest]
	webhookEndpoint          = Endpoint[mcapi.Webhook, mcapi.WebhookRequest, mcapi.WebhookRequest]
	mergeFieldEndpoint       = Endpoint[mcapi.MergeField, mcapi.MergeFieldRequest, mcapi.MergeFieldRequest]
	segmentEndpoint          = Endpoint[mcapi.Segment, mcapi.SegmentRequest, mcapi.SegmentRequest]
	interestCategoryEndpoint = Endpoint[mcapi.InterestCategory, mcapi.InterestCategoryRequest, mcapi.InterestCategoryRequest]
)

// ListsClient implements mcapi.ListsClient.
type ListsClient struct {
	*listEndpoint
}

// NewListsClient creates a new lists client.
func NewListsClient(b *backend) *ListsClient {
	return &ListsClient{listEndpoint: NewEndpoint[mcapi.List, mcapi.ListRequest, mcapi.ListRequest](b, ListSchema)}
}

// UpdateMembers implements mcapi.ListsClient.UpdateMembers.
func (c *ListsClient) UpdateMembers(
	ctx context.Context, listID string, request *mcapi.BatchMembersRequest,
) (*mcapi.BatchMembersResponse, error) {
	body, err := c.backend.validator.Validate(BatchMembersSchema.Name, BatchMembersSchema.Create, request)
	if err != nil {
		return nil, err
	}

	path, err := mcapi.BuildPath(BatchMembersSchema.Endpoint, listID)
	if err != nil {
		return nil, err
	}

	resp, err := c.backend.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating list members: %w", err)
	}

	return decode[mcapi.BatchMembersResponse](resp, BatchMembersSchema.Name)
}

// Members implements mcapi.ListsClient.Members.
func (c *ListsClient) Members(listID string) mcapi.MembersClient {
	return NewMembersClient(c.backend, listID)
}

// TwitterCards implements mcapi.ListsClient.TwitterCards.
func (c *ListsClient) TwitterCards(listID string) mcapi.TwitterCardsClient {
	return NewEndpoint[mcapi.TwitterCard, mcapi.TwitterCardRequest, mcapi.TwitterCardRequest](
		c.backend, TwitterCardSchema, listID)
}

// Webhooks implements mcapi.ListsClient.Webhooks.
func (c *ListsClient) Webhooks(listID string) mcapi.WebhooksClient {
	return NewEndpoint[mcapi.Webhook, mcapi.WebhookRequest, mcapi.WebhookRequest](c.backend, WebhookSchema, listID)
}

// MergeFields implements mcapi.ListsClient.MergeFields.
func (c *ListsClient) MergeFields(listID string) mcapi.MergeFieldsClient {
	return NewEndpoint[mcapi.MergeField, mcapi.MergeFieldRequest, mcapi.MergeFieldRequest](
		c.backend, MergeFieldSchema, listID)
}

// Segments implements mcapi.ListsClient.Segments.
func (c *ListsClient) Segments(listID string) mcapi.SegmentsClient {
	return NewEndpoint[mcapi.Segment, mcapi.SegmentRequest, mcapi.SegmentRequest](c.backend, SegmentSchema, listID)
}

// InterestCategories implements mcapi.ListsClient.InterestCategories.
func (c *ListsClient) InterestCategories(listID string) mcapi.InterestCategoriesClient {
	return NewEndpoint[mcapi.InterestCategory, mcapi.InterestCategoryRequest, mcapi.InterestCategoryRequest](
		c.backend, InterestCategorySchema, listID)
}

// SignupForms implements mcapi.ListsClient.SignupForms.
func (c *ListsClient) SignupForms(listID string) mcapi.SignupFormsClient {
	return NewEndpoint[mcapi.SignupForm, struct{}, struct{}](c.backend, SignupFormSchema, listID)
}

// AbuseReports implements mcapi.ListsClient.AbuseReports.
func (c *ListsClient) AbuseReports(listID string) mcapi.AbuseReportsClient {
	return NewEndpoint[mcapi.AbuseReport, struct{}, struct{}](c.backend, AbuseReportSchema, listID)
}

// Activity implements mcapi.ListsClient.Activity.
func (c *ListsClient) Activity(listID string) mcapi.ActivityClient {
	return NewEndpoint[mcapi.ListActivity, struct{}, struct{}](c.backend, ActivitySchema, listID)
}

// Clients implements mcapi.ListsClient.Clients.
func (c *ListsClient) Clients(listID string) mcapi.ListClientsClient {
	return NewEndpoint[mcapi.ListClient, struct{}, struct{}](c.backend, ListClientSchema, listID)
}

// GrowthHistory implements mcapi.ListsClient.GrowthHistory.
func (c *ListsClient) GrowthHistory(listID string) mcapi.GrowthHistoryClient {
	return NewEndpoint[mcapi.GrowthHistory, struct{}, struct{}](c.backend, GrowthHistorySchema, listID)
}

var (
	_ mcapi.ListsClient              = (*ListsClient)(nil)
	_ mcapi.TwitterCardsClient       = (*twitterCardEndpoint)(nil)
	_ mcapi.WebhooksClient           = (*webhookEndpoint)(nil)
	_ mcapi.MergeFieldsClient        = (*mergeFieldEndpoint)(nil)
	_ mcapi.SegmentsClient           = (*segmentEndpoint)(nil)
	_ mcapi.InterestCategoriesClient = (*interestCategoryEndpoint)(nil)
	_ mcapi.AbuseReportsClient       = (*Endpoint[mcapi.AbuseReport, struct{}, struct{}])(nil)
	_ mcapi.ActivityClient           = (*Endpoint[mcapi.ListActivity, struct{}, struct{}])(nil)
	_ mcapi.ListClientsClient        = (*Endpoint[mcapi.ListClient, struct{}, struct{}])(nil)
	_ mcapi.GrowthHistoryClient      = (*Endpoint[mcapi.GrowthHistory, struct{}, struct{}])(nil)
	_ mcapi.SignupFormsClient        = (*Endpoint[mcapi.SignupForm, struct{}, struct{}])(nil)
)

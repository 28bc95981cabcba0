package mcapi

import "context"

// ResourceReader is the read side shared by every collection endpoint.
type ResourceReader[T any] interface {
	Get(ctx context.Context, id string, params *QueryParams) (*T, error)
	// List fetches one page.
	List(ctx context.Context, params *QueryParams) (*Page[T], error)
	// ListAll fetches every page. Paging keys in params are ignored.
	ListAll(ctx context.Context, params *QueryParams) ([]T, error)
}

// ResourceClient is a full CRUD endpoint. C is the create payload and U the
// update payload.
type ResourceClient[T, C, U any] interface {
	ResourceReader[T]
	Create(ctx context.Context, request *C) (*T, error)
	Update(ctx context.Context, id string, request *U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ListsClient manages audiences and hands out scoped clients for the
// resources nested below a list.
type ListsClient interface {
	ResourceClient[List, ListRequest, ListRequest]

	// UpdateMembers batch subscribes or updates up to 500 members.
	UpdateMembers(ctx context.Context, listID string, request *BatchMembersRequest) (*BatchMembersResponse, error)

	Members(listID string) MembersClient
	TwitterCards(listID string) TwitterCardsClient
	Webhooks(listID string) WebhooksClient
	MergeFields(listID string) MergeFieldsClient
	Segments(listID string) SegmentsClient
	InterestCategories(listID string) InterestCategoriesClient
	SignupForms(listID string) SignupFormsClient
	AbuseReports(listID string) AbuseReportsClient
	Activity(listID string) ActivityClient
	Clients(listID string) ListClientsClient
	GrowthHistory(listID string) GrowthHistoryClient
}

// MembersClient manages the members of one list. Member ids may be given as
// an email address or as the subscriber hash.
type MembersClient interface {
	ResourceClient[Member, MemberRequest, MemberRequest]

	// Upsert adds the member or updates it when it already exists.
	Upsert(ctx context.Context, id string, request *MemberRequest) (*Member, error)
	// DeletePermanent erases the member and its data.
	DeletePermanent(ctx context.Context, id string) error
	Tags(ctx context.Context, id string, params *QueryParams) (*Page[MemberTag], error)
	UpdateTags(ctx context.Context, id string, request *MemberTagsRequest) error
}

// TwitterCardsClient manages Twitter lead generation cards of one list.
type TwitterCardsClient interface {
	Create(ctx context.Context, request *TwitterCardRequest) (*TwitterCard, error)
	Get(ctx context.Context, id string, params *QueryParams) (*TwitterCard, error)
	List(ctx context.Context, params *QueryParams) (*Page[TwitterCard], error)
	ListAll(ctx context.Context, params *QueryParams) ([]TwitterCard, error)
}

// WebhooksClient manages list webhooks.
type WebhooksClient = ResourceClient[Webhook, WebhookRequest, WebhookRequest]

// MergeFieldsClient manages list merge fields.
type MergeFieldsClient = ResourceClient[MergeField, MergeFieldRequest, MergeFieldRequest]

// SegmentsClient manages list segments.
type SegmentsClient = ResourceClient[Segment, SegmentRequest, SegmentRequest]

// InterestCategoriesClient manages list interest categories.
type InterestCategoriesClient = ResourceClient[InterestCategory, InterestCategoryRequest, InterestCategoryRequest]

// AbuseReportsClient reads abuse reports of a list.
type AbuseReportsClient = ResourceReader[AbuseReport]

// GrowthHistoryClient reads monthly growth of a list.
type GrowthHistoryClient = ResourceReader[GrowthHistory]

// ActivityClient reads daily activity of a list.
type ActivityClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[ListActivity], error)
}

// ListClientsClient reads the email clients used by list members.
type ListClientsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[ListClient], error)
}

// SignupFormsClient reads the hosted signup forms of a list.
type SignupFormsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[SignupForm], error)
}

// CampaignsClient manages campaigns and their delivery actions.
type CampaignsClient interface {
	ResourceClient[Campaign, CampaignRequest, CampaignRequest]

	Send(ctx context.Context, id string) error
	Schedule(ctx context.Context, id string, request *CampaignScheduleRequest) error
	Unschedule(ctx context.Context, id string) error
	Test(ctx context.Context, id string, request *CampaignTestRequest) error
	Cancel(ctx context.Context, id string) error
	Replicate(ctx context.Context, id string) (*Campaign, error)
}

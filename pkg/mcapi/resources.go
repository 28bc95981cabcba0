package mcapi

// ListContact is the postal contact shown in the footer of list emails.
type ListContact struct {
	Company  string `json:"company,omitempty"  yaml:"company,omitempty"`
	Address1 string `json:"address1,omitempty" yaml:"address1,omitempty"`
	Address2 string `json:"address2,omitempty" yaml:"address2,omitempty"`
	City     string `json:"city,omitempty"     yaml:"city,omitempty"`
	State    string `json:"state,omitempty"    yaml:"state,omitempty"`
	Zip      string `json:"zip,omitempty"      yaml:"zip,omitempty"`
	Country  string `json:"country,omitempty"  yaml:"country,omitempty"`
	Phone    string `json:"phone,omitempty"    yaml:"phone,omitempty"`
}

// CampaignDefaults are the default sender values for campaigns sent to a list.
type CampaignDefaults struct {
	FromName  string `json:"from_name,omitempty"  yaml:"from_name,omitempty"`
	FromEmail string `json:"from_email,omitempty" yaml:"from_email,omitempty"`
	Subject   string `json:"subject,omitempty"    yaml:"subject,omitempty"`
	Language  string `json:"language,omitempty"   yaml:"language,omitempty"`
}

// ListStats holds list level statistics.
type ListStats struct {
	MemberCount               int     `json:"member_count"                  yaml:"member_count"`
	UnsubscribeCount          int     `json:"unsubscribe_count"             yaml:"unsubscribe_count"`
	CleanedCount              int     `json:"cleaned_count"                 yaml:"cleaned_count"`
	CampaignCount             int     `json:"campaign_count"                yaml:"campaign_count"`
	CampaignLastSent          string  `json:"campaign_last_sent"            yaml:"campaign_last_sent"`
	MergeFieldCount           int     `json:"merge_field_count"             yaml:"merge_field_count"`
	AvgSubRate                float64 `json:"avg_sub_rate"                  yaml:"avg_sub_rate"`
	AvgUnsubRate              float64 `json:"avg_unsub_rate"                yaml:"avg_unsub_rate"`
	OpenRate                  float64 `json:"open_rate"                     yaml:"open_rate"`
	ClickRate                 float64 `json:"click_rate"                    yaml:"click_rate"`
	LastSubDate               string  `json:"last_sub_date"                 yaml:"last_sub_date"`
	LastUnsubDate             string  `json:"last_unsub_date"               yaml:"last_unsub_date"`
	MemberCountSinceSend      int     `json:"member_count_since_send"       yaml:"member_count_since_send"`
	UnsubscribeCountSinceSend int     `json:"unsubscribe_count_since_send"  yaml:"unsubscribe_count_since_send"`
}

// List is an audience.
type List struct {
	ID                   string            `json:"id"                     yaml:"id"`
	WebID                int               `json:"web_id"                 yaml:"web_id"`
	Name                 string            `json:"name"                   yaml:"name"`
	Contact              *ListContact      `json:"contact,omitempty"      yaml:"contact,omitempty"`
	PermissionReminder   string            `json:"permission_reminder"    yaml:"permission_reminder"`
	UseArchiveBar        bool              `json:"use_archive_bar"        yaml:"use_archive_bar"`
	CampaignDefaults     *CampaignDefaults `json:"campaign_defaults,omitempty" yaml:"campaign_defaults,omitempty"`
	NotifyOnSubscribe    string            `json:"notify_on_subscribe"    yaml:"notify_on_subscribe"`
	NotifyOnUnsubscribe  string            `json:"notify_on_unsubscribe"  yaml:"notify_on_unsubscribe"`
	DateCreated          string            `json:"date_created"           yaml:"date_created"`
	ListRating           int               `json:"list_rating"            yaml:"list_rating"`
	EmailTypeOption      bool              `json:"email_type_option"      yaml:"email_type_option"`
	SubscribeURLShort    string            `json:"subscribe_url_short"    yaml:"subscribe_url_short"`
	SubscribeURLLong     string            `json:"subscribe_url_long"     yaml:"subscribe_url_long"`
	BeamerAddress        string            `json:"beamer_address"         yaml:"beamer_address"`
	Visibility           string            `json:"visibility"             yaml:"visibility"`
	DoubleOptin          bool              `json:"double_optin"           yaml:"double_optin"`
	MarketingPermissions bool              `json:"marketing_permissions"  yaml:"marketing_permissions"`
	Stats                *ListStats        `json:"stats,omitempty"        yaml:"stats,omitempty"`
	Links                Links             `json:"_links,omitempty"       yaml:"_links,omitempty"`
}

// ListRequest creates or updates a list. Booleans are pointers so an explicit
// false is still sent.
type ListRequest struct {
	Name                string            `json:"name,omitempty"                  yaml:"name,omitempty"`
	Contact             *ListContact      `json:"contact,omitempty"               yaml:"contact,omitempty"`
	PermissionReminder  string            `json:"permission_reminder,omitempty"   yaml:"permission_reminder,omitempty"`
	UseArchiveBar       *bool             `json:"use_archive_bar,omitempty"       yaml:"use_archive_bar,omitempty"`
	CampaignDefaults    *CampaignDefaults `json:"campaign_defaults,omitempty"     yaml:"campaign_defaults,omitempty"`
	NotifyOnSubscribe   string            `json:"notify_on_subscribe,omitempty"   yaml:"notify_on_subscribe,omitempty"`
	NotifyOnUnsubscribe string            `json:"notify_on_unsubscribe,omitempty" yaml:"notify_on_unsubscribe,omitempty"`
	EmailTypeOption     *bool             `json:"email_type_option,omitempty"     yaml:"email_type_option,omitempty"`
	DoubleOptin         *bool             `json:"double_optin,omitempty"          yaml:"double_optin,omitempty"`
	Visibility          string            `json:"visibility,omitempty"            yaml:"visibility,omitempty"`
}

// MemberStatus is the subscription state of a list member.
type MemberStatus string

// Member statuses accepted by the API.
const (
	MemberStatusSubscribed    MemberStatus = "subscribed"
	MemberStatusUnsubscribed  MemberStatus = "unsubscribed"
	MemberStatusCleaned       MemberStatus = "cleaned"
	MemberStatusPending       MemberStatus = "pending"
	MemberStatusTransactional MemberStatus = "transactional"
	MemberStatusArchived      MemberStatus = "archived"
)

// MemberTag is a tag attached to a member.
type MemberTag struct {
	ID     int    `json:"id,omitempty"     yaml:"id,omitempty"`
	Name   string `json:"name"             yaml:"name"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// MemberLocation is the geolocation of a member.
type MemberLocation struct {
	Latitude    float64 `json:"latitude,omitempty"     yaml:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"    yaml:"longitude,omitempty"`
	CountryCode string  `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	Timezone    string  `json:"timezone,omitempty"     yaml:"timezone,omitempty"`
}

// Member is a contact on a list.
type Member struct {
	ID              string                 `json:"id"                          yaml:"id"`
	EmailAddress    string                 `json:"email_address"               yaml:"email_address"`
	UniqueEmailID   string                 `json:"unique_email_id"             yaml:"unique_email_id"`
	ContactID       string                 `json:"contact_id"                  yaml:"contact_id"`
	FullName        string                 `json:"full_name"                   yaml:"full_name"`
	WebID           int                    `json:"web_id"                      yaml:"web_id"`
	EmailType       string                 `json:"email_type"                  yaml:"email_type"`
	Status          MemberStatus           `json:"status"                      yaml:"status"`
	MergeFields     map[string]interface{} `json:"merge_fields,omitempty"      yaml:"merge_fields,omitempty"`
	Interests       map[string]bool        `json:"interests,omitempty"         yaml:"interests,omitempty"`
	IPSignup        string                 `json:"ip_signup"                   yaml:"ip_signup"`
	TimestampSignup string                 `json:"timestamp_signup"            yaml:"timestamp_signup"`
	IPOpt           string                 `json:"ip_opt"                      yaml:"ip_opt"`
	TimestampOpt    string                 `json:"timestamp_opt"               yaml:"timestamp_opt"`
	MemberRating    int                    `json:"member_rating"               yaml:"member_rating"`
	LastChanged     string                 `json:"last_changed"                yaml:"last_changed"`
	Language        string                 `json:"language"                    yaml:"language"`
	VIP             bool                   `json:"vip"                         yaml:"vip"`
	Location        *MemberLocation        `json:"location,omitempty"          yaml:"location,omitempty"`
	Source          string                 `json:"source"                      yaml:"source"`
	TagsCount       int                    `json:"tags_count"                  yaml:"tags_count"`
	Tags            []MemberTag            `json:"tags,omitempty"              yaml:"tags,omitempty"`
	ListID          string                 `json:"list_id"                     yaml:"list_id"`
	Links           Links                  `json:"_links,omitempty"            yaml:"_links,omitempty"`
}

// MemberRequest creates, updates or upserts a member.
type MemberRequest struct {
	EmailAddress string                 `json:"email_address,omitempty"  yaml:"email_address,omitempty"`
	EmailType    string                 `json:"email_type,omitempty"     yaml:"email_type,omitempty"`
	Status       MemberStatus           `json:"status,omitempty"         yaml:"status,omitempty"`
	StatusIfNew  MemberStatus           `json:"status_if_new,omitempty"  yaml:"status_if_new,omitempty"`
	MergeFields  map[string]interface{} `json:"merge_fields,omitempty"   yaml:"merge_fields,omitempty"`
	Interests    map[string]bool        `json:"interests,omitempty"      yaml:"interests,omitempty"`
	Language     string                 `json:"language,omitempty"       yaml:"language,omitempty"`
	VIP          *bool                  `json:"vip,omitempty"            yaml:"vip,omitempty"`
	Location     *MemberLocation        `json:"location,omitempty"       yaml:"location,omitempty"`
	IPSignup     string                 `json:"ip_signup,omitempty"      yaml:"ip_signup,omitempty"`
	IPOpt        string                 `json:"ip_opt,omitempty"         yaml:"ip_opt,omitempty"`
	Tags         []string               `json:"tags,omitempty"           yaml:"tags,omitempty"`
}

// BatchMembersRequest subscribes or updates up to 500 members in one call.
type BatchMembersRequest struct {
	Members        []MemberRequest `json:"members"                   yaml:"members"`
	UpdateExisting *bool           `json:"update_existing,omitempty" yaml:"update_existing,omitempty"`
}

// BatchMemberError reports one member the API rejected in a batch.
type BatchMemberError struct {
	EmailAddress string `json:"email_address" yaml:"email_address"`
	Error        string `json:"error"         yaml:"error"`
	ErrorCode    string `json:"error_code"    yaml:"error_code"`
}

// BatchMembersResponse summarizes a batch subscribe call.
type BatchMembersResponse struct {
	NewMembers     []Member           `json:"new_members"      yaml:"new_members"`
	UpdatedMembers []Member           `json:"updated_members"  yaml:"updated_members"`
	Errors         []BatchMemberError `json:"errors"           yaml:"errors"`
	TotalCreated   int                `json:"total_created"    yaml:"total_created"`
	TotalUpdated   int                `json:"total_updated"    yaml:"total_updated"`
	ErrorCount     int                `json:"error_count"      yaml:"error_count"`
	Links          Links              `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// MemberTagsRequest adds or removes tags on a member.
type MemberTagsRequest struct {
	Tags []MemberTag `json:"tags" yaml:"tags"`
}

// TwitterCard is a Twitter lead generation card attached to a list.
type TwitterCard struct {
	ID               string `json:"id"                 yaml:"id"`
	Name             string `json:"name"               yaml:"name"`
	Title            string `json:"title"              yaml:"title"`
	CTAText          string `json:"cta_text"           yaml:"cta_text"`
	PrivacyPolicyURL string `json:"privacy_policy_url" yaml:"privacy_policy_url"`
	ImageURL         string `json:"image_url"          yaml:"image_url"`
	TwitterAccountID string `json:"twitter_account_id" yaml:"twitter_account_id"`
	Links            Links  `json:"_links,omitempty"   yaml:"_links,omitempty"`
}

// TwitterCardRequest creates a lead generation card.
type TwitterCardRequest struct {
	Name             string `json:"name,omitempty"               yaml:"name,omitempty"`
	Title            string `json:"title,omitempty"              yaml:"title,omitempty"`
	CTAText          string `json:"cta_text,omitempty"           yaml:"cta_text,omitempty"`
	PrivacyPolicyURL string `json:"privacy_policy_url,omitempty" yaml:"privacy_policy_url,omitempty"`
	ImageURL         string `json:"image_url,omitempty"          yaml:"image_url,omitempty"`
	TwitterAccountID string `json:"twitter_account_id,omitempty" yaml:"twitter_account_id,omitempty"`
}

// WebhookEvents selects the list events a webhook fires on.
type WebhookEvents struct {
	Subscribe   *bool `json:"subscribe,omitempty"   yaml:"subscribe,omitempty"`
	Unsubscribe *bool `json:"unsubscribe,omitempty" yaml:"unsubscribe,omitempty"`
	Profile     *bool `json:"profile,omitempty"     yaml:"profile,omitempty"`
	Cleaned     *bool `json:"cleaned,omitempty"     yaml:"cleaned,omitempty"`
	UpEmail     *bool `json:"upemail,omitempty"     yaml:"upemail,omitempty"`
	Campaign    *bool `json:"campaign,omitempty"    yaml:"campaign,omitempty"`
}

// WebhookSources selects which kinds of change trigger a webhook.
type WebhookSources struct {
	User  *bool `json:"user,omitempty"  yaml:"user,omitempty"`
	Admin *bool `json:"admin,omitempty" yaml:"admin,omitempty"`
	API   *bool `json:"api,omitempty"   yaml:"api,omitempty"`
}

// Webhook is a list webhook.
type Webhook struct {
	ID      string          `json:"id"                yaml:"id"`
	URL     string          `json:"url"               yaml:"url"`
	Events  *WebhookEvents  `json:"events,omitempty"  yaml:"events,omitempty"`
	Sources *WebhookSources `json:"sources,omitempty" yaml:"sources,omitempty"`
	ListID  string          `json:"list_id"           yaml:"list_id"`
	Links   Links           `json:"_links,omitempty"  yaml:"_links,omitempty"`
}

// WebhookRequest creates or updates a webhook.
type WebhookRequest struct {
	URL     string          `json:"url,omitempty"     yaml:"url,omitempty"`
	Events  *WebhookEvents  `json:"events,omitempty"  yaml:"events,omitempty"`
	Sources *WebhookSources `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// MergeField is a custom audience field.
type MergeField struct {
	MergeID      int                    `json:"merge_id"                yaml:"merge_id"`
	Tag          string                 `json:"tag"                     yaml:"tag"`
	Name         string                 `json:"name"                    yaml:"name"`
	Type         string                 `json:"type"                    yaml:"type"`
	Required     bool                   `json:"required"                yaml:"required"`
	DefaultValue string                 `json:"default_value"           yaml:"default_value"`
	Public       bool                   `json:"public"                  yaml:"public"`
	DisplayOrder int                    `json:"display_order"           yaml:"display_order"`
	Options      map[string]interface{} `json:"options,omitempty"       yaml:"options,omitempty"`
	HelpText     string                 `json:"help_text"               yaml:"help_text"`
	ListID       string                 `json:"list_id"                 yaml:"list_id"`
	Links        Links                  `json:"_links,omitempty"        yaml:"_links,omitempty"`
}

// MergeFieldRequest creates or updates a merge field.
type MergeFieldRequest struct {
	Name         string                 `json:"name,omitempty"          yaml:"name,omitempty"`
	Type         string                 `json:"type,omitempty"          yaml:"type,omitempty"`
	Tag          string                 `json:"tag,omitempty"           yaml:"tag,omitempty"`
	Required     *bool                  `json:"required,omitempty"      yaml:"required,omitempty"`
	DefaultValue string                 `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	Public       *bool                  `json:"public,omitempty"        yaml:"public,omitempty"`
	DisplayOrder int                    `json:"display_order,omitempty" yaml:"display_order,omitempty"`
	Options      map[string]interface{} `json:"options,omitempty"       yaml:"options,omitempty"`
	HelpText     string                 `json:"help_text,omitempty"     yaml:"help_text,omitempty"`
}

// SegmentCondition is one condition of a saved segment.
type SegmentCondition struct {
	ConditionType string      `json:"condition_type,omitempty" yaml:"condition_type,omitempty"`
	Field         string      `json:"field"                    yaml:"field"`
	Op            string      `json:"op"                       yaml:"op"`
	Value         interface{} `json:"value"                    yaml:"value"`
}

// SegmentOptions holds the match rules of a saved segment.
type SegmentOptions struct {
	Match      string             `json:"match,omitempty"      yaml:"match,omitempty"`
	Conditions []SegmentCondition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// Segment is a saved or static segment of a list.
type Segment struct {
	ID          int             `json:"id"                yaml:"id"`
	Name        string          `json:"name"              yaml:"name"`
	MemberCount int             `json:"member_count"      yaml:"member_count"`
	Type        string          `json:"type"              yaml:"type"`
	CreatedAt   string          `json:"created_at"        yaml:"created_at"`
	UpdatedAt   string          `json:"updated_at"        yaml:"updated_at"`
	Options     *SegmentOptions `json:"options,omitempty" yaml:"options,omitempty"`
	ListID      string          `json:"list_id"           yaml:"list_id"`
	Links       Links           `json:"_links,omitempty"  yaml:"_links,omitempty"`
}

// SegmentRequest creates or updates a segment.
type SegmentRequest struct {
	Name          string          `json:"name,omitempty"           yaml:"name,omitempty"`
	StaticSegment []string        `json:"static_segment,omitempty" yaml:"static_segment,omitempty"`
	Options       *SegmentOptions `json:"options,omitempty"        yaml:"options,omitempty"`
}

// InterestCategory groups the interests members can select.
type InterestCategory struct {
	ID           string `json:"id"               yaml:"id"`
	ListID       string `json:"list_id"          yaml:"list_id"`
	Title        string `json:"title"            yaml:"title"`
	DisplayOrder int    `json:"display_order"    yaml:"display_order"`
	Type         string `json:"type"             yaml:"type"`
	Links        Links  `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// InterestCategoryRequest creates or updates an interest category.
type InterestCategoryRequest struct {
	Title        string `json:"title,omitempty"         yaml:"title,omitempty"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty" yaml:"display_order,omitempty"`
}

// AbuseReport is a spam complaint against a list.
type AbuseReport struct {
	ID           int    `json:"id"               yaml:"id"`
	CampaignID   string `json:"campaign_id"      yaml:"campaign_id"`
	ListID       string `json:"list_id"          yaml:"list_id"`
	EmailID      string `json:"email_id"         yaml:"email_id"`
	EmailAddress string `json:"email_address"    yaml:"email_address"`
	Date         string `json:"date"             yaml:"date"`
	Links        Links  `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// ListActivity is one day of list activity.
type ListActivity struct {
	Day             string `json:"day"              yaml:"day"`
	EmailsSent      int    `json:"emails_sent"      yaml:"emails_sent"`
	UniqueOpens     int    `json:"unique_opens"     yaml:"unique_opens"`
	RecipientClicks int    `json:"recipient_clicks" yaml:"recipient_clicks"`
	HardBounce      int    `json:"hard_bounce"      yaml:"hard_bounce"`
	SoftBounce      int    `json:"soft_bounce"      yaml:"soft_bounce"`
	Subs            int    `json:"subs"             yaml:"subs"`
	Unsubs          int    `json:"unsubs"           yaml:"unsubs"`
	OtherAdds       int    `json:"other_adds"       yaml:"other_adds"`
	OtherRemoves    int    `json:"other_removes"    yaml:"other_removes"`
}

// ListClient is an email client used by list members.
type ListClient struct {
	Client  string `json:"client"  yaml:"client"`
	Members int    `json:"members" yaml:"members"`
	ListID  string `json:"list_id" yaml:"list_id"`
}

// GrowthHistory is one month of list growth.
type GrowthHistory struct {
	ListID        string `json:"list_id"          yaml:"list_id"`
	Month         string `json:"month"            yaml:"month"`
	Existing      int    `json:"existing"         yaml:"existing"`
	Imports       int    `json:"imports"          yaml:"imports"`
	Optins        int    `json:"optins"           yaml:"optins"`
	Subscribed    int    `json:"subscribed"       yaml:"subscribed"`
	Unsubscribed  int    `json:"unsubscribed"     yaml:"unsubscribed"`
	Reconfirm     int    `json:"reconfirm"        yaml:"reconfirm"`
	Cleaned       int    `json:"cleaned"          yaml:"cleaned"`
	Pending       int    `json:"pending"          yaml:"pending"`
	Deleted       int    `json:"deleted"          yaml:"deleted"`
	Transactional int    `json:"transactional"    yaml:"transactional"`
	Links         Links  `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// SignupForm is a hosted signup form of a list.
type SignupForm struct {
	ListID    string                   `json:"list_id"              yaml:"list_id"`
	Header    map[string]interface{}   `json:"header,omitempty"     yaml:"header,omitempty"`
	Contents  []map[string]interface{} `json:"contents,omitempty"   yaml:"contents,omitempty"`
	Styles    []map[string]interface{} `json:"styles,omitempty"     yaml:"styles,omitempty"`
	SignupURL string                   `json:"signup_form_url"      yaml:"signup_form_url"`
	Links     Links                    `json:"_links,omitempty"     yaml:"_links,omitempty"`
}

// CampaignRecipients selects the audience of a campaign.
type CampaignRecipients struct {
	ListID         string `json:"list_id,omitempty"          yaml:"list_id,omitempty"`
	ListName       string `json:"list_name,omitempty"        yaml:"list_name,omitempty"`
	SegmentText    string `json:"segment_text,omitempty"     yaml:"segment_text,omitempty"`
	RecipientCount int    `json:"recipient_count,omitempty"  yaml:"recipient_count,omitempty"`
}

// CampaignSettings holds the content settings of a campaign.
type CampaignSettings struct {
	SubjectLine string `json:"subject_line,omitempty" yaml:"subject_line,omitempty"`
	PreviewText string `json:"preview_text,omitempty" yaml:"preview_text,omitempty"`
	Title       string `json:"title,omitempty"        yaml:"title,omitempty"`
	FromName    string `json:"from_name,omitempty"    yaml:"from_name,omitempty"`
	ReplyTo     string `json:"reply_to,omitempty"     yaml:"reply_to,omitempty"`
	ToName      string `json:"to_name,omitempty"      yaml:"to_name,omitempty"`
	FolderID    string `json:"folder_id,omitempty"    yaml:"folder_id,omitempty"`
	TemplateID  int    `json:"template_id,omitempty"  yaml:"template_id,omitempty"`
}

// Campaign is an email campaign.
type Campaign struct {
	ID          string              `json:"id"                   yaml:"id"`
	WebID       int                 `json:"web_id"               yaml:"web_id"`
	Type        string              `json:"type"                 yaml:"type"`
	CreateTime  string              `json:"create_time"          yaml:"create_time"`
	ArchiveURL  string              `json:"archive_url"          yaml:"archive_url"`
	Status      string              `json:"status"               yaml:"status"`
	EmailsSent  int                 `json:"emails_sent"          yaml:"emails_sent"`
	SendTime    string              `json:"send_time"            yaml:"send_time"`
	ContentType string              `json:"content_type"         yaml:"content_type"`
	Recipients  *CampaignRecipients `json:"recipients,omitempty" yaml:"recipients,omitempty"`
	Settings    *CampaignSettings   `json:"settings,omitempty"   yaml:"settings,omitempty"`
	Links       Links               `json:"_links,omitempty"     yaml:"_links,omitempty"`
}

// CampaignRequest creates or updates a campaign.
type CampaignRequest struct {
	Type       string              `json:"type,omitempty"       yaml:"type,omitempty"`
	Recipients *CampaignRecipients `json:"recipients,omitempty" yaml:"recipients,omitempty"`
	Settings   *CampaignSettings   `json:"settings,omitempty"   yaml:"settings,omitempty"`
}

// CampaignScheduleRequest schedules a campaign for delivery.
type CampaignScheduleRequest struct {
	ScheduleTime string `json:"schedule_time,omitempty" yaml:"schedule_time,omitempty"`
	Timewarp     *bool  `json:"timewarp,omitempty"      yaml:"timewarp,omitempty"`
}

// CampaignTestRequest sends a test email.
type CampaignTestRequest struct {
	TestEmails []string `json:"test_emails,omitempty" yaml:"test_emails,omitempty"`
	SendType   string   `json:"send_type,omitempty"   yaml:"send_type,omitempty"`
}

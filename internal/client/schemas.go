package client

import (
	"embed"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var (
	memberStatuses = []string{
		string(mcapi.MemberStatusSubscribed),
		string(mcapi.MemberStatusUnsubscribed),
		string(mcapi.MemberStatusCleaned),
		string(mcapi.MemberStatusPending),
		string(mcapi.MemberStatusTransactional),
	}

	// batch subscribe accepts a narrower set than the member endpoint
	batchMemberStatuses = []string{
		string(mcapi.MemberStatusSubscribed),
		string(mcapi.MemberStatusUnsubscribed),
		string(mcapi.MemberStatusCleaned),
		string(mcapi.MemberStatusPending),
	}

	mergeFieldTypes = []string{
		"text", "number", "address", "phone", "date", "url",
		"imageurl", "radio", "dropdown", "birthday", "zip",
	}

	interestCategoryTypes = []string{"checkboxes", "dropdown", "radio", "hidden"}

	campaignTypes = []string{"regular", "plaintext", "absplit", "rss", "variate"}
)

var listRules = &mcapi.Rules{
	Required: []string{
		"name",
		"contact.company",
		"contact.address1",
		"contact.city",
		"contact.state",
		"contact.zip",
		"contact.country",
		"permission_reminder",
		"campaign_defaults.from_name",
		"campaign_defaults.from_email",
		"campaign_defaults.subject",
		"campaign_defaults.language",
		"email_type_option",
	},
	Emails:     []string{"campaign_defaults.from_email"},
	JSONSchema: "schemas/list_request.json",
}

// ListSchema describes /lists.
var ListSchema = &mcapi.ResourceSchema{
	Name:          "list",
	Endpoint:      "lists",
	CollectionKey: "lists",
	Create:        listRules,
	Update:        listRules,
}

// BatchMembersSchema describes the batch subscribe call on /lists/{list_id}.
var BatchMembersSchema = &mcapi.ResourceSchema{
	Name:     "batch members",
	Endpoint: "lists",
	Create: &mcapi.Rules{
		Required: []string{"members"},
		MaxItems: map[string]int{"members": mcapi.MaxBatchMembers},
		Items: map[string]*mcapi.Rules{
			"members": {
				Required: []string{"email_address"},
				Emails:   []string{"email_address"},
				OneOf:    [][]string{{"status", "status_if_new"}},
				Enums: map[string][]string{
					"status":        batchMemberStatuses,
					"status_if_new": batchMemberStatuses,
				},
			},
		},
		Defaults:   map[string]interface{}{"update_existing": false},
		JSONSchema: "schemas/batch_members_request.json",
	},
}

// MemberSchema describes /lists/{list_id}/members.
var MemberSchema = &mcapi.ResourceSchema{
	Name:          "member",
	Endpoint:      "lists",
	SubPath:       "members",
	CollectionKey: "members",
	Create: &mcapi.Rules{
		Required:   []string{"email_address", "status"},
		Emails:     []string{"email_address"},
		Enums:      map[string][]string{"status": memberStatuses},
		JSONSchema: "schemas/member_request.json",
	},
	Update: &mcapi.Rules{
		Emails:     []string{"email_address"},
		Enums:      map[string][]string{"status": memberStatuses},
		JSONSchema: "schemas/member_request.json",
	},
}

// memberUpsertRules apply to PUT, which may create the member.
var memberUpsertRules = &mcapi.Rules{
	Required: []string{"email_address", "status_if_new"},
	Emails:   []string{"email_address"},
	Enums: map[string][]string{
		"status":        memberStatuses,
		"status_if_new": memberStatuses,
	},
	JSONSchema: "schemas/member_request.json",
}

// MemberTagsSchema describes /lists/{list_id}/members/{hash}/tags.
var MemberTagsSchema = &mcapi.ResourceSchema{
	Name:          "member tags",
	Endpoint:      "lists",
	SubPath:       "members",
	CollectionKey: "tags",
	Create: &mcapi.Rules{
		Required: []string{"tags"},
		Items: map[string]*mcapi.Rules{
			"tags": {
				Required: []string{"name"},
				Enums:    map[string][]string{"status": {"active", "inactive"}},
			},
		},
	},
}

// TwitterCardSchema describes /lists/{list_id}/twitter-lead-gen-cards.
var TwitterCardSchema = &mcapi.ResourceSchema{
	Name:          "twitter lead generation card",
	Endpoint:      "lists",
	SubPath:       "twitter-lead-gen-cards",
	CollectionKey: "twitter_lead_gen_cards",
	Create: &mcapi.Rules{
		Required: []string{
			"name",
			"title",
			"cta_text",
			"privacy_policy_url",
			"image_url",
			"twitter_account_id",
		},
		MaxLength: map[string]int{"cta_text": constants.MaxTwitterCTALength},
		URLs:      []string{"privacy_policy_url", "image_url"},
	},
}

// WebhookSchema describes /lists/{list_id}/webhooks.
var WebhookSchema = &mcapi.ResourceSchema{
	Name:          "webhook",
	Endpoint:      "lists",
	SubPath:       "webhooks",
	CollectionKey: "webhooks",
	Create: &mcapi.Rules{
		Required: []string{"url"},
		URLs:     []string{"url"},
	},
	Update: &mcapi.Rules{
		URLs: []string{"url"},
	},
}

// MergeFieldSchema describes /lists/{list_id}/merge-fields.
var MergeFieldSchema = &mcapi.ResourceSchema{
	Name:          "merge field",
	Endpoint:      "lists",
	SubPath:       "merge-fields",
	CollectionKey: "merge_fields",
	Create: &mcapi.Rules{
		Required: []string{"name", "type"},
		Enums:    map[string][]string{"type": mergeFieldTypes},
	},
	Update: &mcapi.Rules{
		Required: []string{"name"},
	},
}

// SegmentSchema describes /lists/{list_id}/segments.
var SegmentSchema = &mcapi.ResourceSchema{
	Name:          "segment",
	Endpoint:      "lists",
	SubPath:       "segments",
	CollectionKey: "segments",
	Create: &mcapi.Rules{
		Required: []string{"name"},
		Enums:    map[string][]string{"options.match": {"any", "all"}},
	},
	Update: &mcapi.Rules{
		Required: []string{"name"},
		Enums:    map[string][]string{"options.match": {"any", "all"}},
	},
}

// InterestCategorySchema describes /lists/{list_id}/interest-categories.
var InterestCategorySchema = &mcapi.ResourceSchema{
	Name:          "interest category",
	Endpoint:      "lists",
	SubPath:       "interest-categories",
	CollectionKey: "categories",
	Create: &mcapi.Rules{
		Required: []string{"title", "type"},
		Enums:    map[string][]string{"type": interestCategoryTypes},
	},
	Update: &mcapi.Rules{
		Required: []string{"title", "type"},
		Enums:    map[string][]string{"type": interestCategoryTypes},
	},
}

// Read only list sub-resources.
var (
	AbuseReportSchema = &mcapi.ResourceSchema{
		Name:          "abuse report",
		Endpoint:      "lists",
		SubPath:       "abuse-reports",
		CollectionKey: "abuse_reports",
	}

	ActivitySchema = &mcapi.ResourceSchema{
		Name:          "list activity",
		Endpoint:      "lists",
		SubPath:       "activity",
		CollectionKey: "activity",
	}

	ListClientSchema = &mcapi.ResourceSchema{
		Name:          "list client",
		Endpoint:      "lists",
		SubPath:       "clients",
		CollectionKey: "clients",
	}

	GrowthHistorySchema = &mcapi.ResourceSchema{
		Name:          "growth history",
		Endpoint:      "lists",
		SubPath:       "growth-history",
		CollectionKey: "history",
	}

	SignupFormSchema = &mcapi.ResourceSchema{
		Name:          "signup form",
		Endpoint:      "lists",
		SubPath:       "signup-forms",
		CollectionKey: "signup_forms",
	}
)

// CampaignSchema describes /campaigns.
var CampaignSchema = &mcapi.ResourceSchema{
	Name:          "campaign",
	Endpoint:      "campaigns",
	CollectionKey: "campaigns",
	Create: &mcapi.Rules{
		Required:   []string{"type"},
		Enums:      map[string][]string{"type": campaignTypes},
		Emails:     []string{"settings.reply_to"},
		JSONSchema: "schemas/campaign_request.json",
	},
	Update: &mcapi.Rules{
		Required:   []string{"settings.subject_line", "settings.from_name", "settings.reply_to"},
		Emails:     []string{"settings.reply_to"},
		JSONSchema: "schemas/campaign_request.json",
	},
}

// Campaign action payloads.
var (
	campaignScheduleRules = &mcapi.Rules{
		Required: []string{"schedule_time"},
	}

	campaignTestRules = &mcapi.Rules{
		Required: []string{"test_emails", "send_type"},
		Enums:    map[string][]string{"send_type": {"html", "plaintext"}},
	}
)

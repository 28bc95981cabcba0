package mcapi

// Link is one entry of the _links array the API attaches to resources.
type Link struct {
	Rel          string `json:"rel"                     yaml:"rel"`
	Href         string `json:"href"                    yaml:"href"`
	Method       string `json:"method"                  yaml:"method"`
	TargetSchema string `json:"targetSchema,omitempty"  yaml:"targetSchema,omitempty"`
	Schema       string `json:"schema,omitempty"        yaml:"schema,omitempty"`
}

// Links is the _links array of a resource.
type Links []Link

// Find returns the link with the given relation, or nil.
func (l Links) Find(rel string) *Link {
	for i := range l {
		if l[i].Rel == rel {
			return &l[i]
		}
	}

	return nil
}

// Page is one page of a collection. Items never holds more than TotalItems
// entries when the server reports a total.
type Page[T any] struct {
	Items      []T `json:"items"       yaml:"items"`
	TotalItems int `json:"total_items" yaml:"total_items"`
}

// Ping is the response of the health check endpoint.
type Ping struct {
	HealthStatus string `json:"health_status" yaml:"health_status"`
}

// AccountContact is the postal contact of an account.
type AccountContact struct {
	Company  string `json:"company"  yaml:"company"`
	Address1 string `json:"addr1"    yaml:"addr1"`
	Address2 string `json:"addr2"    yaml:"addr2"`
	City     string `json:"city"     yaml:"city"`
	State    string `json:"state"    yaml:"state"`
	Zip      string `json:"zip"      yaml:"zip"`
	Country  string `json:"country"  yaml:"country"`
}

// AccountInfo is the response of the API root.
type AccountInfo struct {
	AccountID        string          `json:"account_id"         yaml:"account_id"`
	LoginID          string          `json:"login_id"           yaml:"login_id"`
	AccountName      string          `json:"account_name"       yaml:"account_name"`
	Email            string          `json:"email"              yaml:"email"`
	FirstName        string          `json:"first_name"         yaml:"first_name"`
	LastName         string          `json:"last_name"          yaml:"last_name"`
	Username         string          `json:"username"           yaml:"username"`
	Role             string          `json:"role"               yaml:"role"`
	PricingPlanType  string          `json:"pricing_plan_type"  yaml:"pricing_plan_type"`
	AccountTimezone  string          `json:"account_timezone"   yaml:"account_timezone"`
	AccountIndustry  string          `json:"account_industry"   yaml:"account_industry"`
	MemberSince      string          `json:"member_since"       yaml:"member_since"`
	TotalSubscribers int             `json:"total_subscribers"  yaml:"total_subscribers"`
	Contact          *AccountContact `json:"contact,omitempty"  yaml:"contact,omitempty"`
	Links            Links           `json:"_links,omitempty"   yaml:"_links,omitempty"`
}

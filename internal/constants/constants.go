package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as ping.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry settings used when a caller opts into transport retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// API endpoint settings.
const (
	// APIHostTemplate is formatted with the account data center.
	APIHostTemplate = "https://%s.api.mailchimp.com/3.0"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "mcapi-go/3"

	// BasicAuthUsername is ignored by the API but must be present.
	BasicAuthUsername = "mcapi"
)

// Pagination and batching limits.
const (
	// DefaultPageSize is the page size used when fetching whole collections.
	DefaultPageSize = 500

	// DefaultMaxPages caps consecutive full pages during a fetch-all.
	DefaultMaxPages = 10000

	// StandardPageSize is the CLI default for single page listings.
	StandardPageSize = 50

	// MaxTwitterCTALength bounds a lead generation card call to action.
	MaxTwitterCTALength = 20
)

// Cache settings.
const (
	// DefaultCacheSize is the default number of entries in the memory cache.
	DefaultCacheSize = 256

	// DefaultCacheTTL is how long a cached GET response stays fresh.
	DefaultCacheTTL = 1 * time.Minute

	// DefaultNATSBucket is the JetStream KV bucket used for cached responses.
	DefaultNATSBucket = "mcapi_cache"
)

// Output formatting.
const (
	// JSONIndentSize is the indent used for json and yaml output.
	JSONIndentSize = 2

	// FormatJSON selects json output.
	FormatJSON = "json"

	// FormatYAML selects yaml output.
	FormatYAML = "yaml"

	// NotAvailable is printed for empty values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"
)

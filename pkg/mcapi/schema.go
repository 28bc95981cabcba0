package mcapi

// Rules are the local checks applied to one request payload. Field names are
// dotted paths into the JSON document, e.g. "campaign_defaults.from_email".
type Rules struct {
	// Required fields must be present and non-empty.
	Required []string
	// Enums restrict a field to a fixed set of values.
	Enums map[string][]string
	// Emails must look like an email address when present.
	Emails []string
	// URLs must start with http:// or https:// when present.
	URLs []string
	// MaxLength bounds string fields by rune count.
	MaxLength map[string]int
	// MaxItems bounds array fields.
	MaxItems map[string]int
	// OneOf lists groups of fields where at least one must be present.
	OneOf [][]string
	// Items applies rules to every element of an array field.
	Items map[string]*Rules
	// Defaults are set on the document after validation when absent.
	Defaults map[string]interface{}
	// JSONSchema names an embedded JSON schema used for type checks.
	JSONSchema string
}

// ResourceSchema describes one remote resource: where it lives and which
// payload rules apply to each write operation.
type ResourceSchema struct {
	// Name is used in error messages.
	Name string
	// Endpoint is the top level path segment, e.g. "lists".
	Endpoint string
	// SubPath is the nested collection below a parent id, e.g. "members".
	// Empty for top level resources.
	SubPath string
	// CollectionKey is the response key holding the page items.
	CollectionKey string
	Create        *Rules
	Update        *Rules
}

// Nested reports whether the resource lives below a parent resource.
func (s *ResourceSchema) Nested() bool {
	return s.SubPath != ""
}

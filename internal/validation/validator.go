// Package validation checks request payloads against resource rules before
// anything is sent.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ohler55/ojg/jp"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// Static errors for err113 compliance.
var (
	ErrSchemaNotFound = errors.New("json schema not found")
)

// Validator applies mcapi.Rules to payloads. Compiled JSON schemas are cached,
// so one Validator should be shared.
type Validator struct {
	schemas fs.FS

	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// New creates a validator. schemas holds the JSON schema files referenced by
// Rules.JSONSchema and may be nil when no rules use one.
func New(schemas fs.FS) *Validator {
	return &Validator{
		schemas:  schemas,
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks payload against rules and returns the document to send,
// with defaults applied. Every violation is collected into one
// *mcapi.ValidationError. Nil rules accept anything.
func (v *Validator) Validate(resource string, rules *mcapi.Rules, payload interface{}) (interface{}, error) {
	doc, err := toDocument(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", resource, err)
	}

	if rules == nil {
		return doc, nil
	}

	violations := checkRules(doc, rules, "")

	if rules.JSONSchema != "" {
		schemaViolations, schemaErr := v.checkSchema(rules.JSONSchema, doc)
		if schemaErr != nil {
			return nil, schemaErr
		}

		violations = append(violations, schemaViolations...)
	}

	if len(violations) > 0 {
		return nil, &mcapi.ValidationError{Resource: resource, Errors: violations}
	}

	err = applyDefaults(doc, rules.Defaults)
	if err != nil {
		return nil, fmt.Errorf("applying %s defaults: %w", resource, err)
	}

	return doc, nil
}

// toDocument turns a typed request or a map into a generic JSON document.
func toDocument(payload interface{}) (interface{}, error) {
	if payload == nil {
		return map[string]interface{}{}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc interface{}

	err = decoder.Decode(&doc)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return map[string]interface{}{}, nil
	}

	return doc, nil
}

func fieldExpr(field string) jp.Expr {
	expr := jp.R()
	for _, part := range strings.Split(field, ".") {
		expr = expr.C(part)
	}

	return expr
}

// lookup returns the value at a dotted path and whether it is present.
// Null and the empty string count as absent.
func lookup(doc interface{}, field string) (interface{}, bool) {
	results := fieldExpr(field).Get(doc)
	if len(results) == 0 || results[0] == nil {
		return nil, false
	}

	if text, ok := results[0].(string); ok && text == "" {
		return nil, false
	}

	return results[0], true
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func asString(value interface{}) string {
	if text, ok := value.(string); ok {
		return text
	}

	return fmt.Sprint(value)
}

//nolint:cyclop,funlen // one block per rule kind
func checkRules(doc interface{}, rules *mcapi.Rules, prefix string) []error {
	var violations []error

	for _, field := range rules.Required {
		if _, ok := lookup(doc, field); !ok {
			violations = append(violations, &mcapi.FieldError{
				Field:   prefix + field,
				Code:    mcapi.CodeRequired,
				Message: "is required",
			})
		}
	}

	for _, group := range rules.OneOf {
		present := false

		for _, field := range group {
			if _, ok := lookup(doc, field); ok {
				present = true

				break
			}
		}

		if !present {
			names := make([]string, 0, len(group))
			for _, field := range group {
				names = append(names, prefix+field)
			}

			violations = append(violations, &mcapi.FieldError{
				Field:   strings.Join(names, "|"),
				Code:    mcapi.CodeRequired,
				Message: "one of " + strings.Join(group, ", ") + " is required",
			})
		}
	}

	for _, field := range sortedKeys(rules.Enums) {
		value, ok := lookup(doc, field)
		if !ok {
			continue
		}

		allowed := rules.Enums[field]
		if !containsValue(allowed, asString(value)) {
			violations = append(violations, &mcapi.FieldError{
				Field:         prefix + field,
				Code:          mcapi.CodeEnum,
				Message:       fmt.Sprintf("%q is not an allowed value", asString(value)),
				AllowedValues: allowed,
			})
		}
	}

	for _, field := range rules.Emails {
		if value, ok := lookup(doc, field); ok && !IsEmail(asString(value)) {
			violations = append(violations, &mcapi.FormatError{Field: prefix + field, Format: "email", Value: asString(value)})
		}
	}

	for _, field := range rules.URLs {
		if value, ok := lookup(doc, field); ok && !IsURL(asString(value)) {
			violations = append(violations, &mcapi.FormatError{Field: prefix + field, Format: "url", Value: asString(value)})
		}
	}

	for _, field := range sortedKeys(rules.MaxLength) {
		value, ok := lookup(doc, field)
		if !ok {
			continue
		}

		limit := rules.MaxLength[field]
		if length := utf8.RuneCountInString(asString(value)); length > limit {
			violations = append(violations, &mcapi.FieldError{
				Field:   prefix + field,
				Code:    mcapi.CodeMaxLength,
				Message: fmt.Sprintf("must be at most %d characters, got %d", limit, length),
			})
		}
	}

	oversized := make(map[string]bool)

	for _, field := range sortedKeys(rules.MaxItems) {
		value, ok := lookup(doc, field)
		if !ok {
			continue
		}

		items, isArray := value.([]interface{})
		if !isArray {
			continue
		}

		if limit := rules.MaxItems[field]; len(items) > limit {
			oversized[field] = true

			violations = append(violations, &mcapi.LimitExceededError{Field: prefix + field, Limit: limit, Actual: len(items)})
		}
	}

	for _, field := range sortedKeys(rules.Items) {
		if oversized[field] {
			continue
		}

		value, ok := lookup(doc, field)
		if !ok {
			continue
		}

		items, isArray := value.([]interface{})
		if !isArray {
			violations = append(violations, &mcapi.FieldError{Field: prefix + field, Code: mcapi.CodeType, Message: "must be an array"})

			continue
		}

		for index, item := range items {
			itemPrefix := fmt.Sprintf("%s%s[%d].", prefix, field, index)
			violations = append(violations, checkRules(item, rules.Items[field], itemPrefix)...)
		}
	}

	return violations
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}

func applyDefaults(doc interface{}, defaults map[string]interface{}) error {
	if _, isMap := doc.(map[string]interface{}); !isMap {
		return nil
	}

	for _, field := range sortedKeys(defaults) {
		results := fieldExpr(field).Get(doc)
		if len(results) > 0 && results[0] != nil {
			continue
		}

		err := fieldExpr(field).Set(doc, defaults[field])
		if err != nil {
			return fmt.Errorf("setting default for %s: %w", field, err)
		}
	}

	return nil
}

func (v *Validator) schema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if compiled, ok := v.compiled[name]; ok {
		return compiled, nil
	}

	if v.schemas == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}

	data, err := fs.ReadFile(v.schemas, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaNotFound, name, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	err = compiler.AddResource(name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", name, err)
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}

	v.compiled[name] = compiled

	return compiled, nil
}

func (v *Validator) checkSchema(name string, doc interface{}) ([]error, error) {
	compiled, err := v.schema(name)
	if err != nil {
		return nil, err
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil, nil
	}

	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return nil, fmt.Errorf("validating against schema %s: %w", name, err)
	}

	var violations []error

	collectSchemaErrors(schemaErr, &violations)

	return violations, nil
}

func collectSchemaErrors(err *jsonschema.ValidationError, violations *[]error) {
	if len(err.Causes) == 0 {
		*violations = append(*violations, &mcapi.FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Code:    mcapi.CodeType,
			Message: err.Message,
		})

		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(cause, violations)
	}
}

// fieldFromPointer turns "/members/3/status" into "members[3].status".
func fieldFromPointer(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return "$"
	}

	var builder strings.Builder

	for index, part := range strings.Split(pointer, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")

		if _, err := strconv.Atoi(part); err == nil && index > 0 {
			builder.WriteString("[" + part + "]")

			continue
		}

		if index > 0 {
			builder.WriteByte('.')
		}

		builder.WriteString(part)
	}

	return builder.String()
}

package mcapi

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// BuildPath joins an endpoint name and path segments into a resource path.
// Each segment is escaped on its own, so an id containing "/" stays one
// segment. Nil segments (and nil *string) are skipped, which lets callers
// pass optional sub-resources positionally. Any integer kind is accepted as a
// segment. An empty endpoint or endpoint part, an empty string segment or a
// segment of unsupported type is an ErrInvalidPath.
func BuildPath(endpoint string, segments ...any) (string, error) {
	endpoint = strings.Trim(endpoint, "/")
	if endpoint == "" {
		return "", fmt.Errorf("%w: endpoint is empty", ErrInvalidPath)
	}

	var builder strings.Builder

	for _, part := range strings.Split(endpoint, "/") {
		if part == "" {
			return "", fmt.Errorf("%w: endpoint %q has an empty part", ErrInvalidPath, endpoint)
		}

		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(part))
	}

	for index, segment := range segments {
		value, present, err := segmentString(segment)
		if err != nil {
			return "", fmt.Errorf("%w: segment %d: %w", ErrInvalidPath, index, err)
		}

		if !present {
			continue
		}

		if value == "" {
			return "", fmt.Errorf("%w: segment %d is empty", ErrInvalidPath, index)
		}

		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(value))
	}

	return builder.String(), nil
}

// MustBuildPath is BuildPath for static paths known to be valid.
func MustBuildPath(endpoint string, segments ...any) string {
	path, err := BuildPath(endpoint, segments...)
	if err != nil {
		panic(err)
	}

	return path
}

func segmentString(segment any) (string, bool, error) {
	switch typed := segment.(type) {
	case nil:
		return "", false, nil
	case string:
		return typed, true, nil
	case *string:
		if typed == nil {
			return "", false, nil
		}

		return *typed, true, nil
	case fmt.Stringer:
		if isNilPointer(typed) {
			return "", false, nil
		}

		return typed.String(), true, nil
	}

	value := reflect.ValueOf(segment)

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10), true, nil
	default:
		return "", false, fmt.Errorf("unsupported segment type %T", segment)
	}
}

func isNilPointer(value any) bool {
	reflected := reflect.ValueOf(value)

	return reflected.Kind() == reflect.Pointer && reflected.IsNil()
}

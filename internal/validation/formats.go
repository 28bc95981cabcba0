package validation

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately loose: something, an @, and a domain with a dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmail reports whether value looks like an email address.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsURL reports whether value is an absolute http or https URL.
func IsURL(value string) bool {
	lower := strings.ToLower(value)

	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(lower, scheme) && len(lower) > len(scheme) {
			return true
		}
	}

	return false
}

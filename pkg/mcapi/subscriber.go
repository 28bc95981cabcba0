package mcapi

import (
	"crypto/md5" //nolint:gosec // the API keys members by the MD5 of the address
	"encoding/hex"
	"strings"
)

// SubscriberHash returns the member id of an email address: the hex MD5 of
// the lowercased address.
func SubscriberHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(email))) //nolint:gosec // see import

	return hex.EncodeToString(sum[:])
}

// MemberID accepts either an email address or a subscriber hash and returns
// the subscriber hash.
func MemberID(id string) string {
	if strings.Contains(id, "@") {
		return SubscriberHash(id)
	}

	return id
}

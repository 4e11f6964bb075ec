package utils

import (
	"strconv"
	"strings"
)

// ParsePositiveID parses a base-10 id. Signs, whitespace, zero and anything
// non-numeric are rejected.
func ParsePositiveID(raw string) (int, bool) {
	if raw == "" || raw[0] == '+' || raw[0] == '-' {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NormalizeAddress lowercases and collapses whitespace so equivalent
// spellings share a cache entry
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

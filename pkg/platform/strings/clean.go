// Package strings provides string manipulation utilities shared by the
// identifier schemes.
package strings

import (
	"strings"
)

// Strip removes every rune in drop from value, after trimming surrounding
// whitespace. Schemes use it to erase formatting punctuation before
// validation.
//
// Example:
//
//	Strip(" 93.04.01-001.96 ", " .-")
//	// Returns: "93040100196"
func Strip(value, drop string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if strings.ContainsRune(drop, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsDigits reports whether value is non-empty and consists solely of ASCII
// digits. Unicode digits outside 0-9 are rejected on purpose: national number
// schemes are ASCII-only.
func IsDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// IsZeros reports whether value consists solely of the digit zero. Used for
// positivity checks on numeric identifiers without round-tripping through an
// integer type.
func IsZeros(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] != '0' {
			return false
		}
	}
	return true
}

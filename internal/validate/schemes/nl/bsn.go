// Package nl implements the Dutch identifier schemes.
package nl

import (
	"strconv"
	"time"

	"idnum/internal/validate"
	pstrings "idnum/pkg/platform/strings"
)

const separators = " .-"

// BSN validates the Dutch burgerservicenummer, a 9-digit personal identifier
// checked with the "elfproef": the weighted digit sum
// 9·d1 + 8·d2 + … + 2·d8 − d9 must be divisible by 11.
type BSN struct{}

// Compact strips formatting punctuation. Older 8-digit numbers are
// left-padded to the canonical 9 digits.
func (BSN) Compact(raw string) (string, error) {
	cleaned := pstrings.Strip(raw, separators)
	if !pstrings.IsDigits(cleaned) {
		return cleaned, validate.ErrInvalidFormat
	}
	if len(cleaned) == 8 {
		cleaned = "0" + cleaned
	}
	return cleaned, nil
}

// Format renders the conventional spaced shape, e.g. "1112.22.333".
func (v BSN) Format(raw string) string {
	c, err := v.Compact(raw)
	if err != nil || len(c) != 9 {
		return c
	}
	return c[:4] + "." + c[4:6] + "." + c[6:]
}

// Validate checks the character class, the 9-digit length, and the elfproef.
func (v BSN) Validate(raw string, _ time.Time) validate.Result {
	compact, err := v.Compact(raw)
	if err != nil {
		return validate.Reject(err)
	}
	if pstrings.IsZeros(compact) {
		return validate.Reject(validate.ErrInvalidFormat)
	}
	if len(compact) != 9 {
		return validate.Reject(validate.ErrInvalidLength)
	}

	sum := 0
	for i := 0; i < 8; i++ {
		digit, _ := strconv.Atoi(string(compact[i]))
		sum += digit * (9 - i)
	}
	last, _ := strconv.Atoi(string(compact[8]))
	sum -= last

	if sum%11 != 0 {
		return validate.Reject(validate.ErrInvalidChecksum)
	}
	return validate.Individual(compact)
}

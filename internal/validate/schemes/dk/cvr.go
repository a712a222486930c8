package dk

import (
	"strconv"
	"strings"
	"time"

	"idnum/internal/validate"
	pstrings "idnum/pkg/platform/strings"
)

// cvrWeights are the mod-11 weights applied across all eight digits; the
// weighted sum of a valid number is divisible by 11.
var cvrWeights = [8]int{2, 7, 6, 5, 4, 3, 2, 1}

// CVR validates the Danish business register number, 8 digits with a mod-11
// weighted checksum. The leading digit is never zero.
type CVR struct{}

// Compact strips spaces and dashes and an optional DK VAT prefix.
func (CVR) Compact(raw string) (string, error) {
	cleaned := pstrings.Strip(raw, separators)
	if len(cleaned) >= 2 && strings.EqualFold(cleaned[:2], "DK") {
		cleaned = cleaned[2:]
	}
	if !pstrings.IsDigits(cleaned) {
		return cleaned, validate.ErrInvalidFormat
	}
	return cleaned, nil
}

// Format renders the conventional spaced shape, e.g. "25 31 37 63".
func (v CVR) Format(raw string) string {
	c, err := v.Compact(raw)
	if err != nil || len(c) != 8 {
		return c
	}
	return c[:2] + " " + c[2:4] + " " + c[4:6] + " " + c[6:]
}

// Validate checks the character class, the 8-digit length, the non-zero
// leading digit, and the mod-11 weighted sum.
func (v CVR) Validate(raw string, _ time.Time) validate.Result {
	compact, err := v.Compact(raw)
	if err != nil {
		return validate.Reject(err)
	}
	if len(compact) != 8 {
		return validate.Reject(validate.ErrInvalidLength)
	}
	if compact[0] == '0' {
		return validate.Reject(validate.ErrInvalidFormat)
	}

	sum := 0
	for i, w := range cvrWeights {
		digit, _ := strconv.Atoi(string(compact[i]))
		sum += digit * w
	}
	if sum%11 != 0 {
		return validate.Reject(validate.ErrInvalidChecksum)
	}
	return validate.Company(compact)
}

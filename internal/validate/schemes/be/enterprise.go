package be

import (
	"strings"
	"time"

	"idnum/internal/validate"
	pstrings "idnum/pkg/platform/strings"
)

// Enterprise validates the Belgian enterprise number (KBO/BCE), the 10-digit
// identifier assigned to legal entities and also used as the VAT number with
// a BE prefix. The last two digits are 97 minus the remainder of the first
// eight digits modulo 97.
type Enterprise struct{}

// Compact strips formatting punctuation and an optional BE country prefix.
func (Enterprise) Compact(raw string) (string, error) {
	cleaned := pstrings.Strip(raw, separators)
	if len(cleaned) >= 2 && strings.EqualFold(cleaned[:2], "BE") {
		cleaned = cleaned[2:]
	}
	if !pstrings.IsDigits(cleaned) {
		return cleaned, validate.ErrInvalidFormat
	}
	return cleaned, nil
}

// Format renders the conventional dotted shape, e.g. "0403.170.701".
func (v Enterprise) Format(raw string) string {
	c, err := v.Compact(raw)
	if err != nil || len(c) != 10 {
		return c
	}
	return c[:4] + "." + c[4:7] + "." + c[7:]
}

// Validate checks the character class, the 10-digit length, the leading
// digit (0 for companies numbered before 2014, 1 for the newer range), and
// the mod-97 check digits.
func (v Enterprise) Validate(raw string, _ time.Time) validate.Result {
	compact, err := v.Compact(raw)
	if err != nil {
		return validate.Reject(err)
	}
	if pstrings.IsZeros(compact) {
		return validate.Reject(validate.ErrInvalidFormat)
	}
	if len(compact) != 10 {
		return validate.Reject(validate.ErrInvalidLength)
	}
	if compact[0] != '0' && compact[0] != '1' {
		return validate.Reject(validate.ErrInvalidFormat)
	}

	if 97-atoi(compact[:8])%97 != atoi(compact[8:]) {
		return validate.Reject(validate.ErrInvalidChecksum)
	}
	return validate.Company(compact)
}

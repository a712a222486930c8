// Package dk implements the Danish identifier schemes: the CPR personal
// number and the CVR business register number.
package dk

import (
	"strconv"
	"time"

	"idnum/internal/validate"
	pstrings "idnum/pkg/platform/strings"
)

const separators = " -"

// CPR validates the Danish personal identification number, 10 digits of the
// shape DDMMYY-SSSS: a birth date followed by a 4-digit sequence number. The
// register dropped the historical mod-11 check when sequence ranges ran out,
// so validation is structural: the date fields must decode to a real calendar
// date under at least one century completion.
type CPR struct{}

// Compact strips the conventional dash and spaces.
func (CPR) Compact(raw string) (string, error) {
	cleaned := pstrings.Strip(raw, separators)
	if !pstrings.IsDigits(cleaned) {
		return cleaned, validate.ErrInvalidFormat
	}
	return cleaned, nil
}

// Format renders the conventional dashed shape, e.g. "010493-1234".
func (v CPR) Format(raw string) string {
	c, err := v.Compact(raw)
	if err != nil || len(c) != 10 {
		return c
	}
	return c[:6] + "-" + c[6:]
}

// Validate checks the character class, the 10-digit length, and birth-date
// plausibility against the injected reference time.
func (v CPR) Validate(raw string, now time.Time) validate.Result {
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

	dd, _ := strconv.Atoi(compact[:2])
	mm, _ := strconv.Atoi(compact[2:4])
	yy, _ := strconv.Atoi(compact[4:6])
	if len(validate.YearCandidates(yy, mm, dd, now)) == 0 {
		return validate.Reject(validate.ErrInvalidFormat)
	}
	return validate.Individual(compact)
}

// Package be implements the Belgian identifier schemes: the national register
// number for natural persons and the enterprise number for legal entities.
package be

import (
	"strconv"
	"time"

	"idnum/internal/validate"
	pstrings "idnum/pkg/platform/strings"
)

// separators covers the punctuation conventionally used when writing Belgian
// identifiers (93.04.01-001.96, 0403.170.701, 0403 170 701).
const separators = " .-/"

// unknownBirthDate is the sentinel first-six value assigned when the holder's
// birth date is entirely unknown to the register.
const unknownBirthDate = "000001"

// NationalNumber validates the Belgian national register number
// (rijksregisternummer / numéro de registre national), an 11-digit personal
// identifier of the shape YYMMDD XXX CC: a birth date, a 3-digit sequence
// number, and a 2-digit mod-97 checksum.
//
// The two-digit birth year is ambiguous between the 1900s and the 2000s, and
// people born in or after 2000 have their checksum computed over a
// century-marked basis. Validation therefore enumerates every plausible
// century completion and accepts the number if any candidate basis satisfies
// the checksum equation.
type NationalNumber struct{}

// Compact strips formatting punctuation. The partially cleaned value is
// returned alongside ErrInvalidFormat when non-digit characters remain.
func (NationalNumber) Compact(raw string) (string, error) {
	cleaned := pstrings.Strip(raw, separators)
	if !pstrings.IsDigits(cleaned) {
		return cleaned, validate.ErrInvalidFormat
	}
	return cleaned, nil
}

// Format renders the conventional dotted shape, e.g. "93.04.01-001.96".
// Total: inputs that don't clean to 11 digits come back as cleaned.
func (v NationalNumber) Format(raw string) string {
	c, err := v.Compact(raw)
	if err != nil || len(c) != 11 {
		return c
	}
	return c[:2] + "." + c[2:4] + "." + c[4:6] + "-" + c[6:9] + "." + c[9:]
}

// Validate runs the full pipeline: character class and positivity, length,
// birth-date plausibility, then the checksum search over century candidates.
func (v NationalNumber) Validate(raw string, now time.Time) validate.Result {
	compact, err := v.Compact(raw)
	if err != nil {
		return validate.Reject(err)
	}
	if pstrings.IsZeros(compact) {
		// The register never assigns the all-zero number; numeric value
		// must be positive.
		return validate.Reject(validate.ErrInvalidFormat)
	}
	if len(compact) != 11 {
		return validate.Reject(validate.ErrInvalidLength)
	}

	firstSix := compact[:6]
	baseNumber := atoi(compact[6:9])
	checksum := atoi(compact[9:11])

	bases, ok := checksumBases(firstSix, baseNumber, now)
	if !ok {
		return validate.Reject(validate.ErrInvalidFormat)
	}
	for _, basis := range bases {
		// Mod-97 remainders range 0-96, so passing checksums range 1-97:
		// a zero remainder demands checksum 97, and checksum 00 never
		// passes.
		if basis%97+checksum == 97 {
			return validate.Individual(compact)
		}
	}
	return validate.Reject(validate.ErrInvalidChecksum)
}

// checksumBases enumerates the candidate checksum bases for the first six
// digits. ok is false when the digits decode to no plausible birth date under
// any century completion.
func checksumBases(firstSix string, baseNumber int, now time.Time) (bases []int, ok bool) {
	switch {
	case firstSix == unknownBirthDate:
		// Birth date entirely unknown; the checksum covers the sequence
		// number alone.
		return []int{baseNumber}, true

	case firstSix[2:6] == "0000":
		// Year known, month and day unknown. Each century completion that
		// has already started (within the slack window) contributes a basis.
		yy := atoi(firstSix[:2])
		for _, century := range []int{1900, 2000} {
			year := century + yy
			if validate.YearNotAfterCutoff(year, now) {
				bases = append(bases, centuryBasis(year, baseNumber))
			}
		}
		return bases, true

	default:
		yy := atoi(firstSix[:2])
		mm := atoi(firstSix[2:4])
		dd := atoi(firstSix[4:6])
		years := validate.YearCandidates(yy, mm, dd, now)
		if len(years) == 0 {
			return nil, false
		}
		for _, year := range years {
			bases = append(bases, centuryBasis(year, baseNumber))
		}
		return bases, true
	}
}

// centuryBasis applies the scheme's century adjustment: holders born in or
// after 2000 have the digit 2 prepended to their zero-padded sequence number
// before the mod-97 division.
func centuryBasis(year, baseNumber int) int {
	if year >= 2000 {
		return 2000 + baseNumber
	}
	return baseNumber
}

// atoi converts a digits-only substring; inputs are pre-checked so failure is
// impossible.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

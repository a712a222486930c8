package validate

import "time"

// FutureSlack is how far past "now" a reconstructed birth date may lie before
// it is rejected. One day absorbs time-zone and clock skew between the caller
// and the validator.
const FutureSlack = 24 * time.Hour

// Centuries tried when completing a truncated two-digit year.
var centuries = [...]int{1900, 2000}

// YearCandidates returns the full years for which the two-digit year yy
// completes to a real calendar date yyyy-mm-dd that is not later than now
// plus FutureSlack. Zero, one, or two candidates may come back: a truncated
// year is genuinely ambiguous between the 1900s and the 2000s.
func YearCandidates(yy, mm, dd int, now time.Time) []int {
	cutoff := now.Add(FutureSlack)
	var years []int
	for _, century := range centuries {
		year := century + yy
		if !validDate(year, mm, dd) {
			continue
		}
		date := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
		if date.After(cutoff) {
			continue
		}
		years = append(years, year)
	}
	return years
}

// YearNotAfterCutoff reports whether the start of the given year is not later
// than now plus FutureSlack. Used by schemes that know the birth year but not
// the month or day.
func YearNotAfterCutoff(year int, now time.Time) bool {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return !start.After(now.Add(FutureSlack))
}

// validDate reports whether the components form a real calendar date,
// respecting month lengths and leap years. time.Date normalizes overflowing
// components, so a round-trip comparison detects impossible dates.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Package validate defines the validator contract shared by every national
// identifier scheme, plus the country registry that dispatches to them.
//
// Domain Purity: this package contains only pure computation. No I/O, no
// stored state, no time.Now() calls — "now" is always received as a parameter
// so validation across date boundaries stays deterministic under test.
package validate

import (
	"errors"
	"time"
)

// Error kinds reported by validators. Each pipeline stage owns exactly one
// kind; the first failing stage determines which one a caller sees.
var (
	// ErrInvalidFormat indicates characters outside the scheme alphabet, or a
	// date-bearing identifier whose date fields decode to no plausible
	// calendar date under any century completion.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidLength indicates the cleaned identifier has the wrong number
	// of digits for the scheme.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChecksum indicates a structurally plausible identifier whose
	// checksum equation is unsatisfied by every candidate basis.
	ErrInvalidChecksum = errors.New("invalid checksum")
)

// Result is the outcome of validating one identifier against one scheme.
type Result struct {
	Valid   bool
	Compact string

	// Classification flags describing what kind of holder the scheme encodes.
	IsIndividual bool
	IsCompany    bool

	// Err holds the error kind when Valid is false.
	Err error
}

// Reject builds an invalid Result with the given error kind.
func Reject(err error) Result {
	return Result{Err: err}
}

// Individual builds a valid Result for a personal identifier.
func Individual(compact string) Result {
	return Result{Valid: true, Compact: compact, IsIndividual: true}
}

// Company builds a valid Result for an entity identifier.
func Company(compact string) Result {
	return Result{Valid: true, Compact: compact, IsCompany: true}
}

// Validator is implemented once per country scheme. Implementations are
// stateless and safe for concurrent use.
type Validator interface {
	// Compact strips formatting characters and returns the canonical form.
	// On failure it returns ErrInvalidFormat together with the partially
	// cleaned value, so callers that must not fail (Format) can fall back
	// to it.
	Compact(raw string) (string, error)

	// Format renders the identifier in its conventional human-readable
	// shape. Total: on uncleanable or odd-shaped input it returns the best
	// partial normalization instead of failing.
	Format(raw string) string

	// Validate runs the full pipeline against the scheme rules. The
	// reference instant now anchors any date plausibility checks.
	Validate(raw string, now time.Time) Result
}

package validate

import (
	"strings"
	"time"
)

// Class distinguishes identifiers assigned to natural persons from those
// assigned to legal entities.
type Class string

const (
	ClassPerson Class = "person"
	ClassEntity Class = "entity"
)

// ParseClass parses a class string from a trust boundary.
func ParseClass(s string) (Class, bool) {
	switch Class(strings.ToLower(strings.TrimSpace(s))) {
	case ClassPerson:
		return ClassPerson, true
	case ClassEntity:
		return ClassEntity, true
	}
	return "", false
}

// CountryResult is the registry-level validation outcome. Checked is false
// when no validator is registered for the country and class; the embedded
// Result is only meaningful when Checked is true.
type CountryResult struct {
	Checked bool
	Result
}

// Registry maps country codes to the candidate validators for each identifier
// class. A country may register several coexisting schemes; candidates are
// tried in order. The tables are copied at construction and never mutated, so
// a Registry is safe for concurrent use.
type Registry struct {
	byClass map[Class]map[string][]Validator
}

// New builds a Registry from per-class tables keyed by ISO 3166-1 alpha-2
// country code. Keys are upper-cased; lookups are case-insensitive.
func New(person, entity map[string][]Validator) *Registry {
	return &Registry{
		byClass: map[Class]map[string][]Validator{
			ClassPerson: normalizeTable(person),
			ClassEntity: normalizeTable(entity),
		},
	}
}

func normalizeTable(table map[string][]Validator) map[string][]Validator {
	out := make(map[string][]Validator, len(table))
	for country, validators := range table {
		if len(validators) == 0 {
			continue
		}
		out[strings.ToUpper(country)] = append([]Validator(nil), validators...)
	}
	return out
}

// Lookup returns the ordered candidate validators for a country and class,
// or nil when none are registered.
func (r *Registry) Lookup(class Class, country string) []Validator {
	table, ok := r.byClass[class]
	if !ok {
		return nil
	}
	return table[strings.ToUpper(country)]
}

// ValidateForCountry evaluates the candidate validators for the country in
// registration order. The first validator that reports valid wins and its
// classification flags are returned; if every candidate rejects, the first
// candidate's error is reported since it represents the country's primary
// scheme. An unknown country or class yields Checked == false.
func (r *Registry) ValidateForCountry(class Class, country, raw string, now time.Time) CountryResult {
	validators := r.Lookup(class, country)
	if len(validators) == 0 {
		return CountryResult{}
	}

	var first Result
	for i, v := range validators {
		res := v.Validate(raw, now)
		if res.Valid {
			return CountryResult{Checked: true, Result: res}
		}
		if i == 0 {
			first = res
		}
	}
	return CountryResult{Checked: true, Result: first}
}

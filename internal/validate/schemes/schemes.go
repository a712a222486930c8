// Package schemes assembles the default validator catalog. Keeping the
// country tables here, outside the validate package, lets each scheme package
// depend on the contract without an import cycle.
package schemes

import (
	"idnum/internal/validate"
	"idnum/internal/validate/schemes/be"
	"idnum/internal/validate/schemes/dk"
	"idnum/internal/validate/schemes/nl"
)

// Default builds the registry with every supported country scheme. The
// registry is immutable once built; construct it at process start and share
// it freely.
func Default() *validate.Registry {
	person := map[string][]validate.Validator{
		"BE": {be.NationalNumber{}},
		"DK": {dk.CPR{}},
		"NL": {nl.BSN{}},
	}
	entity := map[string][]validate.Validator{
		"BE": {be.Enterprise{}},
		"DK": {dk.CVR{}},
	}
	return validate.New(person, entity)
}

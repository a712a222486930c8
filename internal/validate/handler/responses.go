package handler

import (
	"errors"

	"idnum/internal/validate"
)

// ValidateResponse is the HTTP response for POST /validate. Checked is false
// when no scheme is registered for the country and class; Error carries the
// failure kind when a checked number is invalid.
type ValidateResponse struct {
	Checked      bool   `json:"checked"`
	Valid        bool   `json:"valid"`
	Compact      string `json:"compact,omitempty"`
	IsIndividual bool   `json:"is_individual,omitempty"`
	IsCompany    bool   `json:"is_company,omitempty"`
	Error        string `json:"error,omitempty"`
}

// FromResult converts a registry outcome to an HTTP response.
func FromResult(res validate.CountryResult) *ValidateResponse {
	out := &ValidateResponse{
		Checked: res.Checked,
		Valid:   res.Checked && res.Valid,
	}
	if out.Valid {
		out.Compact = res.Compact
		out.IsIndividual = res.IsIndividual
		out.IsCompany = res.IsCompany
	} else if res.Checked {
		out.Error = errorKind(res.Err)
	}
	return out
}

// errorKind maps validator error kinds to their wire names.
func errorKind(err error) string {
	switch {
	case errors.Is(err, validate.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, validate.ErrInvalidChecksum):
		return "invalid_checksum"
	case errors.Is(err, validate.ErrInvalidFormat):
		return "invalid_format"
	default:
		return "invalid_format"
	}
}

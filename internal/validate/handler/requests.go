package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"idnum/internal/validate"
	dErrors "idnum/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /validate.
type ValidateRequest struct {
	Class   string `json:"class"`
	Country string `json:"country"`
	Number  string `json:"number"`

	// Parsed values (populated by Validate)
	parsedClass validate.Class
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.Number) > 64 {
		return dErrors.New(dErrors.CodeValidation, "number must be at most 64 characters")
	}

	class, ok := validate.ParseClass(r.Class)
	if !ok {
		return dErrors.New(dErrors.CodeValidation, "class must be person or entity")
	}
	r.parsedClass = class

	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	if !govalidator.StringLength(r.Country, "2", "2") || !govalidator.IsAlpha(r.Country) {
		return dErrors.New(dErrors.CodeValidation, "country must be a two-letter ISO 3166-1 code")
	}

	if strings.TrimSpace(r.Number) == "" {
		return dErrors.New(dErrors.CodeValidation, "number is required")
	}

	return nil
}

// ParsedClass returns the validated identifier class.
func (r *ValidateRequest) ParsedClass() validate.Class {
	return r.parsedClass
}

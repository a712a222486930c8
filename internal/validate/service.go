package validate

import (
	"context"
	"log/slog"
	"strings"

	dErrors "idnum/pkg/domain-errors"
	"idnum/pkg/requestcontext"
)

// Observer receives validation outcomes for metrics. Implemented by the
// metrics package; an interface here keeps the domain free of Prometheus.
type Observer interface {
	ObserveValidation(country, class, outcome string)
}

// Service fronts the registry for transport handlers, adding logging and
// metrics around the pure validation call. Identifier values are never
// logged: they are personal data.
type Service struct {
	registry *Registry
	logger   *slog.Logger
	observer Observer
}

// NewService constructs the service. All dependencies are required.
func NewService(registry *Registry, logger *slog.Logger, observer Observer) (*Service, error) {
	if registry == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "registry is required")
	}
	if logger == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "logger is required")
	}
	if observer == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "observer is required")
	}
	return &Service{registry: registry, logger: logger, observer: observer}, nil
}

// ValidateForCountry validates raw against the country's registered schemes.
// The reference time comes from the request context, so handlers and tests
// control "now" instead of the wall clock.
func (s *Service) ValidateForCountry(ctx context.Context, class Class, country, raw string) CountryResult {
	now := requestcontext.Now(ctx)
	country = strings.ToUpper(country)

	res := s.registry.ValidateForCountry(class, country, raw, now)

	outcome := "valid"
	switch {
	case !res.Checked:
		outcome = "unchecked"
	case !res.Valid:
		outcome = "invalid"
	}
	s.observer.ObserveValidation(country, string(class), outcome)

	s.logger.DebugContext(ctx, "identifier validated",
		"request_id", requestcontext.RequestID(ctx),
		"country", country,
		"class", class,
		"outcome", outcome,
	)
	return res
}

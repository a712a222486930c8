package validate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"idnum/pkg/requestcontext"
)

// stubObserver records outcome observations without Prometheus.
type stubObserver struct {
	observed []string
}

func (o *stubObserver) ObserveValidation(country, class, outcome string) {
	o.observed = append(o.observed, country+"/"+class+"/"+outcome)
}

type ServiceSuite struct {
	suite.Suite
	observer *stubObserver
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	registry := New(map[string][]Validator{
		"BE": {fakeValidator{res: Individual("12345")}},
		"NL": {fakeValidator{res: Reject(ErrInvalidChecksum)}},
	}, nil)

	s.observer = &stubObserver{}

	var err error
	s.service, err = NewService(registry, slog.New(slog.NewTextHandler(io.Discard, nil)), s.observer)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestNewService() {
	s.Run("nil registry returns error", func() {
		_, err := NewService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), s.observer)
		s.Error(err)
		s.Contains(err.Error(), "registry is required")
	})

	s.Run("nil logger returns error", func() {
		_, err := NewService(New(nil, nil), nil, s.observer)
		s.Error(err)
		s.Contains(err.Error(), "logger is required")
	})

	s.Run("nil observer returns error", func() {
		_, err := NewService(New(nil, nil), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		s.Error(err)
		s.Contains(err.Error(), "observer is required")
	})
}

func (s *ServiceSuite) TestValidateForCountry() {
	ctx := requestcontext.WithTime(context.Background(), now)

	s.Run("valid outcome is observed", func() {
		res := s.service.ValidateForCountry(ctx, ClassPerson, "be", "12345")
		s.True(res.Checked)
		s.True(res.Valid)
		s.Contains(s.observer.observed, "BE/person/valid")
	})

	s.Run("invalid outcome is observed", func() {
		res := s.service.ValidateForCountry(ctx, ClassPerson, "NL", "999")
		s.True(res.Checked)
		s.False(res.Valid)
		s.Contains(s.observer.observed, "NL/person/invalid")
	})

	s.Run("unknown country is unchecked", func() {
		res := s.service.ValidateForCountry(ctx, ClassPerson, "ZZ", "999")
		s.False(res.Checked)
		s.Contains(s.observer.observed, "ZZ/person/unchecked")
	})
}

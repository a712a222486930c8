package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"idnum/internal/validate"
	"idnum/pkg/platform/httputil"
	"idnum/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	ValidateForCountry(ctx context.Context, class validate.Class, country, raw string) validate.CountryResult
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
}

// HandleValidate handles POST /validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.ValidateForCountry(ctx, req.ParsedClass(), req.Country, req.Number)

	h.logger.InfoContext(ctx, "validation request served",
		"request_id", requestID,
		"country", req.Country,
		"class", req.Class,
		"checked", res.Checked,
		"valid", res.Checked && res.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(res))
}

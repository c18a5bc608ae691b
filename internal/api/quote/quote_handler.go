package quote

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/baldotina/go-trip-quotes/internal/api"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewQuoteHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GenerateQuote handles POST /quotes - generates the three tiered route
// proposals for a trip request.
func (h *Handler) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuoteHandler").Start(r.Context(), "GenerateQuote")
	defer span.End()

	l := h.logger.With(slog.String("method", "GenerateQuote"))

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		l.WarnContext(ctx, "Trip request failed validation", slog.Any("error", err))
		span.SetStatus(codes.Error, "Validation failed")
		api.ErrorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	proposal, err := h.service.GenerateQuote(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate quote", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate quote")
		return
	}

	span.SetStatus(codes.Ok, "Quote generated")
	api.WriteJSONResponse(w, r, http.StatusCreated, proposal)
}

// GetProposal handles GET /proposals/{proposalID}.
func (h *Handler) GetProposal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("QuoteHandler").Start(r.Context(), "GetProposal")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetProposal"))

	proposalID, err := uuid.Parse(chi.URLParam(r, "proposalID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid proposal ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid proposal ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid proposal ID")
		return
	}

	proposal, err := h.service.GetProposal(ctx, proposalID)
	if err != nil {
		if errors.Is(err, ErrProposalNotFound) {
			span.SetStatus(codes.Error, "Proposal not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Proposal not found")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch proposal", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch proposal")
		return
	}

	span.SetStatus(codes.Ok, "Proposal returned")
	api.WriteJSONResponse(w, r, http.StatusOK, proposal)
}

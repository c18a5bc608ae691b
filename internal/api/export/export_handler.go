package export

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/baldotina/go-trip-quotes/internal/api"
	"github.com/baldotina/go-trip-quotes/internal/api/quote"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

type Handler struct {
	logger   *slog.Logger
	service  Service
	quoteSvc quote.Service
}

func NewExportHandler(service Service, quoteSvc quote.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		quoteSvc: quoteSvc,
	}
}

// ExportRequest is the payload for POST /proposals/{proposalID}/export.
// ItemComments maps "<cityId>:<itemName>" to an admin tip.
type ExportRequest struct {
	Tier         types.Tier        `json:"tier"`
	AdminNotes   string            `json:"adminNotes,omitempty"`
	ItemComments map[string]string `json:"itemComments,omitempty"`
}

// ExportProposal handles POST /proposals/{proposalID}/export - assembles
// the downloadable document for one tier of a stored proposal.
func (h *Handler) ExportProposal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ExportHandler").Start(r.Context(), "ExportProposal")
	defer span.End()

	l := h.logger.With(slog.String("method", "ExportProposal"))

	proposalID, err := uuid.Parse(chi.URLParam(r, "proposalID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid proposal ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid proposal ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid proposal ID")
		return
	}

	var req ExportRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Tier == "" {
		span.SetStatus(codes.Error, "Missing tier")
		api.ErrorResponse(w, r, http.StatusUnprocessableEntity, "tier is required")
		return
	}

	proposal, err := h.quoteSvc.GetProposal(ctx, proposalID)
	if err != nil {
		if errors.Is(err, quote.ErrProposalNotFound) {
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

	doc, err := h.service.BuildDocument(ctx, proposal, req.Tier, req.AdminNotes, req.ItemComments)
	if err != nil {
		l.WarnContext(ctx, "Failed to assemble export document", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Document assembly failed")
		api.ErrorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	span.SetStatus(codes.Ok, "Document exported")
	api.WriteJSONResponse(w, r, http.StatusOK, doc)
}

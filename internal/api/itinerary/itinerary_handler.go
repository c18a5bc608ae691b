package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/baldotina/go-trip-quotes/internal/api"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewItineraryHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// BuildRequest is the payload for POST /itineraries.
type BuildRequest struct {
	CityID      string     `json:"cityId"`
	Nights      int        `json:"nights"`
	Preferences []string   `json:"preferences"`
	Tier        types.Tier `json:"tier"`
}

// BuildItinerary handles POST /itineraries - expands one city stay into
// a day-by-day schedule.
func (h *Handler) BuildItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "BuildItinerary")
	defer span.End()

	l := h.logger.With(slog.String("method", "BuildItinerary"))

	var req BuildRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.CityID == "" {
		span.SetStatus(codes.Error, "Missing cityId")
		api.ErrorResponse(w, r, http.StatusUnprocessableEntity, "cityId is required")
		return
	}
	if req.Tier == "" {
		req.Tier = types.TierMid
	}

	days, err := h.service.BuildForCity(ctx, req.CityID, req.Nights, req.Preferences, req.Tier)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			span.SetStatus(codes.Error, "City not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
			return
		}
		l.ErrorContext(ctx, "Failed to build itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to build itinerary")
		return
	}

	span.SetStatus(codes.Ok, "Itinerary built")
	api.WriteJSONResponse(w, r, http.StatusOK, days)
}

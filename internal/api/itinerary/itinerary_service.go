package itinerary

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/baldotina/go-trip-quotes/app/observability/metrics"
	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// ErrCityNotFound is returned for city identifiers missing from the
// catalog. The engine tolerates catalog gaps mid-computation, but an
// itinerary for a city that does not exist at all is a caller mistake.
var ErrCityNotFound = errors.New("city not found in catalog")

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary operations.
type Service interface {
	BuildForCity(ctx context.Context, cityID string, nights int, preferences []string, tier types.Tier) ([]types.Day, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
}

func NewServiceImpl(cat *catalog.Catalog, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		catalog: cat,
	}
}

// BuildForCity expands a catalog city's stay into a day-by-day schedule.
// Called lazily whenever a city itinerary is displayed or exported; the
// result is recomputed fresh every time, never cached.
func (s *ServiceImpl) BuildForCity(ctx context.Context, cityID string, nights int, preferences []string, tier types.Tier) ([]types.Day, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "BuildForCity", trace.WithAttributes(
		attribute.String("city.id", cityID),
		attribute.Int("nights", nights),
		attribute.String("tier", string(tier)),
	))
	defer span.End()

	city, ok := s.catalog.City(cityID)
	if !ok {
		s.logger.WarnContext(ctx, "Itinerary requested for unknown city", slog.String("cityID", cityID))
		span.SetStatus(codes.Error, "City not found")
		return nil, ErrCityNotFound
	}

	detail := types.CityDetail{
		CityID:       city.ID,
		Name:         city.Name,
		Highlights:   city.Highlights,
		FoodSpots:    city.FoodSpots,
		EveningIdeas: city.EveningIdeas,
	}
	days := Build(s.catalog, detail, nights, preferences, tier)

	metrics.Get().ItineraryBuildsTotal.Add(ctx, 1)
	span.SetStatus(codes.Ok, "Itinerary built")
	return days, nil
}

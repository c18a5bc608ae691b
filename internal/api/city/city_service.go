package city

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the read-only city catalog to the request form.
type Service interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
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

func (s *ServiceImpl) GetAllCities(ctx context.Context) ([]types.City, error) {
	_, span := otel.Tracer("CityService").Start(ctx, "GetAllCities")
	defer span.End()

	cities := s.catalog.Cities()
	span.SetStatus(codes.Ok, "Cities listed")
	return cities, nil
}

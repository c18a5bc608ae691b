package quote

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/baldotina/go-trip-quotes/app/observability/metrics"
	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// ErrProposalNotFound is returned when a proposal ID is unknown or its
// TTL has expired.
var ErrProposalNotFound = errors.New("proposal not found")

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for quote operations.
type Service interface {
	GenerateQuote(ctx context.Context, req types.TripRequest) (*types.Proposal, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*types.Proposal, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	catalog   *catalog.Catalog
	proposals *cache.Cache
}

func NewServiceImpl(cat *catalog.Catalog, logger *slog.Logger) *ServiceImpl {
	// Proposals are transient: the dashboard fetches them back shortly
	// after generation, nothing depends on them surviving a restart.
	proposals := cache.New(24*time.Hour, 1*time.Hour)
	return &ServiceImpl{
		logger:    logger,
		catalog:   cat,
		proposals: proposals,
	}
}

// GenerateQuote runs the route engine for a trip request and stores the
// resulting proposal for later retrieval.
func (s *ServiceImpl) GenerateQuote(ctx context.Context, req types.TripRequest) (*types.Proposal, error) {
	ctx, span := otel.Tracer("QuoteService").Start(ctx, "GenerateQuote", trace.WithAttributes(
		attribute.Int("trip.cities", len(req.CityIDs)),
		attribute.Int("trip.days", req.TotalDays),
		attribute.Int("trip.travelers", req.Travelers),
	))
	defer span.End()

	start := time.Now()
	routes := GenerateRoutes(s.catalog, req)

	proposal := &types.Proposal{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Routes:    routes,
	}
	s.proposals.Set(proposal.ID.String(), proposal, cache.DefaultExpiration)

	m := metrics.Get()
	m.QuotesGeneratedTotal.Add(ctx, 1)
	m.QuoteDurationSeconds.Record(ctx, time.Since(start).Seconds())

	s.logger.InfoContext(ctx, "Generated trip quote",
		slog.String("proposalID", proposal.ID.String()),
		slog.Int("cities", len(req.CityIDs)),
		slog.Int("totalDays", req.TotalDays),
		slog.Int("budgetTotal", routes[0].Costs.TotalPerPerson),
		slog.Int("premiumTotal", routes[2].Costs.TotalPerPerson),
	)
	span.SetStatus(codes.Ok, "Quote generated")
	return proposal, nil
}

// GetProposal fetches a previously generated proposal by ID.
func (s *ServiceImpl) GetProposal(ctx context.Context, proposalID uuid.UUID) (*types.Proposal, error) {
	ctx, span := otel.Tracer("QuoteService").Start(ctx, "GetProposal", trace.WithAttributes(
		attribute.String("proposal.id", proposalID.String()),
	))
	defer span.End()

	cached, found := s.proposals.Get(proposalID.String())
	if !found {
		metrics.Get().ProposalLookupsMissed.Add(ctx, 1)
		s.logger.WarnContext(ctx, "Proposal not found", slog.String("proposalID", proposalID.String()))
		span.SetStatus(codes.Error, "Proposal not found")
		return nil, ErrProposalNotFound
	}

	span.SetStatus(codes.Ok, "Proposal retrieved")
	return cached.(*types.Proposal), nil
}

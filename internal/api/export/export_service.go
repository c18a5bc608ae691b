package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/baldotina/go-trip-quotes/app/observability/metrics"
	"github.com/baldotina/go-trip-quotes/internal/api/itinerary"
	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// Tip is one admin-authored note attached to a specific activity or
// meal of a city.
type Tip struct {
	Item string `json:"item"`
	Note string `json:"note"`
}

// CityItinerary is one city's share of an export document: the stay
// expanded day by day plus any tips the admin attached to its items.
type CityItinerary struct {
	CityID string      `json:"cityId"`
	Name   string      `json:"name"`
	Emoji  string      `json:"emoji,omitempty"`
	Nights int         `json:"nights"`
	Days   []types.Day `json:"days"`
	Tips   []Tip       `json:"tips,omitempty"`
}

// BudgetCheck compares a route's per-person total against the client's
// stated budget.
type BudgetCheck struct {
	WithinBudget bool `json:"withinBudget"`
	OverBy       int  `json:"overBy,omitempty"`
}

// Document is the data contract handed to the PDF renderer. Assembling
// it here keeps layout concerns out of the engine: the renderer only
// walks this structure.
type Document struct {
	ClientName  string            `json:"clientName,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Request     types.TripRequest `json:"request"`
	Route       types.Route       `json:"route"`
	Cities      []CityItinerary   `json:"cities"`
	AdminNotes  string            `json:"adminNotes,omitempty"`
	Budget      BudgetCheck       `json:"budget"`
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for export operations.
type Service interface {
	BuildDocument(ctx context.Context, proposal *types.Proposal, tier types.Tier, adminNotes string, itemComments map[string]string) (*Document, error)
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

// BuildDocument assembles the export document for one tier of a
// proposal: the priced route, a freshly built day-by-day itinerary per
// city, the admin's free-text notes and the sparse tips map keyed
// "<cityId>:<itemName>". Tips are passed through to their city, never
// interpreted. City itineraries are independent pure computations, so
// they are built concurrently.
func (s *ServiceImpl) BuildDocument(ctx context.Context, proposal *types.Proposal, tier types.Tier, adminNotes string, itemComments map[string]string) (*Document, error) {
	ctx, span := otel.Tracer("ExportService").Start(ctx, "BuildDocument", trace.WithAttributes(
		attribute.String("proposal.id", proposal.ID.String()),
		attribute.String("tier", string(tier)),
	))
	defer span.End()

	route, err := routeForTier(proposal, tier)
	if err != nil {
		s.logger.WarnContext(ctx, "Export requested for unknown tier",
			slog.String("tier", string(tier)), slog.String("proposalID", proposal.ID.String()))
		span.SetStatus(codes.Error, "Unknown tier")
		return nil, err
	}

	cities := make([]CityItinerary, len(route.CityDetails))
	g, gctx := errgroup.WithContext(ctx)
	for i, detail := range route.CityDetails {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			days := itinerary.Build(s.catalog, detail, detail.Nights, proposal.Request.Preferences, route.Tier)
			cities[i] = CityItinerary{
				CityID: detail.CityID,
				Name:   detail.Name,
				Emoji:  detail.Emoji,
				Nights: detail.Nights,
				Days:   days,
				Tips:   tipsForCity(detail.CityID, itemComments),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Itinerary assembly cancelled")
		return nil, err
	}

	doc := &Document{
		ClientName:  proposal.Request.ClientName,
		GeneratedAt: time.Now().UTC(),
		Request:     proposal.Request,
		Route:       route,
		Cities:      cities,
		AdminNotes:  adminNotes,
		Budget:      checkBudget(route, proposal.Request.Budget),
	}

	metrics.Get().ExportDocumentsTotal.Add(ctx, 1)
	s.logger.InfoContext(ctx, "Assembled export document",
		slog.String("proposalID", proposal.ID.String()),
		slog.String("tier", string(tier)),
		slog.Int("cities", len(cities)),
	)
	span.SetStatus(codes.Ok, "Document assembled")
	return doc, nil
}

func routeForTier(proposal *types.Proposal, tier types.Tier) (types.Route, error) {
	for _, route := range proposal.Routes {
		if route.Tier == tier {
			return route, nil
		}
	}
	return types.Route{}, fmt.Errorf("proposal has no %q route", tier)
}

// tipsForCity extracts the tips addressed to one city and orders them
// by item name so document output stays deterministic.
func tipsForCity(cityID string, itemComments map[string]string) []Tip {
	prefix := cityID + ":"
	var tips []Tip
	for key, note := range itemComments {
		if note == "" || !strings.HasPrefix(key, prefix) {
			continue
		}
		tips = append(tips, Tip{Item: strings.TrimPrefix(key, prefix), Note: note})
	}
	sort.Slice(tips, func(i, j int) bool { return tips[i].Item < tips[j].Item })
	return tips
}

func checkBudget(route types.Route, budget int) BudgetCheck {
	if route.Costs.TotalPerPerson <= budget {
		return BudgetCheck{WithinBudget: true}
	}
	return BudgetCheck{WithinBudget: false, OverBy: route.Costs.TotalPerPerson - budget}
}

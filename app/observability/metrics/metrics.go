package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	QuotesGeneratedTotal  metric.Int64Counter
	QuoteDurationSeconds  metric.Float64Histogram
	ItineraryBuildsTotal  metric.Int64Counter
	ExportDocumentsTotal  metric.Int64Counter
	ProposalLookupsMissed metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using
// the globally configured MeterProvider. Safe to call from anywhere;
// before the provider is configured the instruments are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("baldotina-trip-quotes")
		var err error
		m := &AppMetrics{}

		m.QuotesGeneratedTotal, err = meter.Int64Counter(
			"quotes_generated_total",
			metric.WithDescription("Total number of trip quotes generated"),
			metric.WithUnit("{quote}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quotes_generated_total: %v", err)
		}

		m.QuoteDurationSeconds, err = meter.Float64Histogram(
			"quote_generation_duration_seconds",
			metric.WithDescription("Duration of route generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create quote_generation_duration_seconds: %v", err)
		}

		m.ItineraryBuildsTotal, err = meter.Int64Counter(
			"itinerary_builds_total",
			metric.WithDescription("Total number of city itineraries built"),
			metric.WithUnit("{itinerary}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_builds_total: %v", err)
		}

		m.ExportDocumentsTotal, err = meter.Int64Counter(
			"export_documents_total",
			metric.WithDescription("Total number of export documents assembled"),
			metric.WithUnit("{document}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create export_documents_total: %v", err)
		}

		m.ProposalLookupsMissed, err = meter.Int64Counter(
			"proposal_lookups_missed_total",
			metric.WithDescription("Total number of proposal lookups that found nothing"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create proposal_lookups_missed_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, initializing
// it against the current MeterProvider on first use.
func Get() *AppMetrics {
	if appMetrics == nil {
		InitAppMetrics()
	}
	return appMetrics
}

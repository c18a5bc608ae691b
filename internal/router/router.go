package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baldotina/go-trip-quotes/internal/api/city"
	"github.com/baldotina/go-trip-quotes/internal/api/export"
	"github.com/baldotina/go-trip-quotes/internal/api/itinerary"
	"github.com/baldotina/go-trip-quotes/internal/api/quote"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	CityHandler      *city.Handler
	QuoteHandler     *quote.Handler
	ItineraryHandler *itinerary.Handler
	ExportHandler    *export.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to
// be applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	// The SPA runs on a different origin in development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/cities", cfg.CityHandler.GetAllCities)

		r.Post("/quotes", cfg.QuoteHandler.GenerateQuote)
		r.Get("/proposals/{proposalID}", cfg.QuoteHandler.GetProposal)
		r.Post("/proposals/{proposalID}/export", cfg.ExportHandler.ExportProposal)

		r.Post("/itineraries", cfg.ItineraryHandler.BuildItinerary)
	})

	return r
}

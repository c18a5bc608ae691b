package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/baldotina/go-trip-quotes/internal/types"
)

//go:embed data/cities.json
var citiesJSON []byte

//go:embed data/transport.json
var transportJSON []byte

//go:embed data/flights.json
var flightsJSON []byte

const (
	// DefaultFlightCost prices an inter-city pair missing from the
	// transport table (€/person, one way).
	DefaultFlightCost = 55

	// DefaultIntercontinentalFare prices a Buenos Aires leg for a city
	// missing from the flights table (€/person, one way).
	DefaultIntercontinentalFare = 450
)

// Catalog is the static reference dataset the engine runs against:
// cities, the symmetric inter-city transport table and the Buenos
// Aires ↔ Europe flight fares. It is loaded once at startup and never
// written afterwards, so it is safe to share across concurrent calls.
type Catalog struct {
	cities  map[string]types.City
	order   []string
	routes  map[string]types.TransportOptions
	flights map[string]types.TierPrices
}

// Load parses the embedded catalog tables. Highlights are normalized at
// this ingestion boundary so legacy bare-string records never reach the
// engine.
func Load() (*Catalog, error) {
	var cities []types.City
	if err := json.Unmarshal(citiesJSON, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse cities catalog: %w", err)
	}
	routes := make(map[string]types.TransportOptions)
	if err := json.Unmarshal(transportJSON, &routes); err != nil {
		return nil, fmt.Errorf("failed to parse transport catalog: %w", err)
	}
	flights := make(map[string]types.TierPrices)
	if err := json.Unmarshal(flightsJSON, &flights); err != nil {
		return nil, fmt.Errorf("failed to parse flights catalog: %w", err)
	}

	for i := range cities {
		cities[i].Highlights = types.NormalizeHighlights(cities[i].Highlights)
	}
	return New(cities, routes, flights), nil
}

// New builds a catalog from already-parsed tables. Tests use it to
// inject synthetic datasets.
func New(cities []types.City, routes map[string]types.TransportOptions, flights map[string]types.TierPrices) *Catalog {
	c := &Catalog{
		cities:  make(map[string]types.City, len(cities)),
		order:   make([]string, 0, len(cities)),
		routes:  routes,
		flights: flights,
	}
	if c.routes == nil {
		c.routes = map[string]types.TransportOptions{}
	}
	if c.flights == nil {
		c.flights = map[string]types.TierPrices{}
	}
	for _, city := range cities {
		c.cities[city.ID] = city
		c.order = append(c.order, city.ID)
	}
	return c
}

// City returns the catalog entry for the given identifier.
func (c *Catalog) City(id string) (types.City, bool) {
	city, ok := c.cities[id]
	return city, ok
}

// Cities returns all catalog cities in dataset order.
func (c *Catalog) Cities() []types.City {
	out := make([]types.City, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.cities[id])
	}
	return out
}

// TransportOptions looks up the symmetric transport entry for a city
// pair, trying "a-b" then "b-a". Unknown pairs resolve to a
// flight-only entry at the default fare; the lookup never fails.
func (c *Catalog) TransportOptions(cityA, cityB string) types.TransportOptions {
	if opts, ok := c.routes[cityA+"-"+cityB]; ok {
		return opts
	}
	if opts, ok := c.routes[cityB+"-"+cityA]; ok {
		return opts
	}
	fare := DefaultFlightCost
	return types.TransportOptions{Flight: &fare}
}

// FlightFare returns the Buenos Aires ↔ city fare for a tier, falling
// back to the default intercontinental fare for unknown cities.
func (c *Catalog) FlightFare(cityID string, tier types.Tier) int {
	fares, ok := c.flights[cityID]
	if !ok {
		return DefaultIntercontinentalFare
	}
	return fares.ForTier(tier)
}

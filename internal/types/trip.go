package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tier is one of the three service levels a route can be quoted at.
// The order budget < mid < premium is a total order of increasing cost
// and comfort and drives catalog price columns and transport choices.
type Tier string

const (
	TierBudget  Tier = "budget"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
)

// Tiers returns the three tiers in their fixed generation order.
func Tiers() []Tier {
	return []Tier{TierBudget, TierMid, TierPremium}
}

// TripRequest is the client-facing quote request. Field names follow the
// SPA's form payload.
type TripRequest struct {
	ClientName  string   `json:"clientName,omitempty"`
	CityIDs     []string `json:"cities"`
	TotalDays   int      `json:"totalDays"`
	Travelers   int      `json:"travelers"`
	Budget      int      `json:"budget"`
	Preferences []string `json:"preferences"`
	Notes       string   `json:"notes,omitempty"`
}

// Validate enforces the intake-form rules. The engine itself never
// validates; this runs at the HTTP boundary before a request reaches it.
func (r TripRequest) Validate() error {
	if len(r.CityIDs) < 2 {
		return fmt.Errorf("at least 2 cities are required, got %d", len(r.CityIDs))
	}
	if r.TotalDays < 3 || r.TotalDays > 30 {
		return fmt.Errorf("totalDays must be between 3 and 30, got %d", r.TotalDays)
	}
	if r.TotalDays < len(r.CityIDs) {
		return fmt.Errorf("totalDays (%d) must cover at least one night per city (%d cities)", r.TotalDays, len(r.CityIDs))
	}
	if r.Travelers < 1 || r.Travelers > 10 {
		return fmt.Errorf("travelers must be between 1 and 10, got %d", r.Travelers)
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d", r.Budget)
	}
	if len(r.Preferences) == 0 {
		return fmt.Errorf("at least one preference is required")
	}
	return nil
}

// HasPreference reports whether the request carries the given tag.
func (r TripRequest) HasPreference(tag string) bool {
	for _, p := range r.Preferences {
		if p == tag {
			return true
		}
	}
	return false
}

// FlightLeg is one intercontinental flight (Buenos Aires ↔ Europe).
type FlightLeg struct {
	City string `json:"city"`
	Cost int    `json:"cost"`
}

// Segment is one inter-city transport leg within a route.
type Segment struct {
	From string `json:"from"`
	To   string `json:"to"`
	Mode string `json:"mode"`
	Cost int    `json:"cost"`
}

// AccommodationPlan describes the tier's lodging choice for one city stay.
type AccommodationPlan struct {
	Type     string `json:"type"`
	PerNight int    `json:"perNight"`
	Total    int    `json:"total"`
}

// DailySpend is a per-day cost and its stay total.
type DailySpend struct {
	PerDay int `json:"perDay"`
	Total  int `json:"total"`
}

// CityDetail is a catalog city enriched with the nights assigned to it,
// its computed subtotals and the zone recommendations for this request.
type CityDetail struct {
	CityID           string            `json:"cityId"`
	Name             string            `json:"name"`
	Emoji            string            `json:"emoji"`
	Country          string            `json:"country"`
	Photo            string            `json:"photo,omitempty"`
	Nights           int               `json:"nights"`
	Accommodation    AccommodationPlan `json:"accommodation"`
	Food             DailySpend        `json:"food"`
	LocalTransport   DailySpend        `json:"localTransport"`
	Highlights       []Highlight       `json:"highlights"`
	FoodSpots        []FoodSpot        `json:"foodSpots"`
	EveningIdeas     []EveningIdea     `json:"eveningIdeas"`
	RecommendedZones []string          `json:"recommendedZones"`
	AvoidZones       []string          `json:"avoidZones"`
	Subtotal         int               `json:"subtotal"`
}

// Costs is the five-category breakdown of a route, per person, in euros.
// TotalPerPerson is always the sum of the five categories and TotalGroup
// is TotalPerPerson times the traveler count.
type Costs struct {
	Accommodation      int `json:"accommodation"`
	Food               int `json:"food"`
	LocalTransport     int `json:"localTransport"`
	InterCityTransport int `json:"interCityTransport"`
	Flights            int `json:"flights"`
	TotalPerPerson     int `json:"totalPerPerson"`
	TotalGroup         int `json:"totalGroup"`
}

// Route is one fully priced tier option for a trip request.
type Route struct {
	Tier        Tier         `json:"tier"`
	Label       string       `json:"label"`
	RouteVisual string       `json:"routeVisual"`
	FlightIn    FlightLeg    `json:"flightIn"`
	FlightOut   FlightLeg    `json:"flightOut"`
	Segments    []Segment    `json:"segments"`
	CityDetails []CityDetail `json:"cityDetails"`
	Costs       Costs        `json:"costs"`
}

// ZoneRecommendation is the per-city neighbourhood advice derived from
// the traveler's preference tags.
type ZoneRecommendation struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
}

// Day is one entry of a city's day-by-day itinerary. Nil slots are
// rendered downstream as free time.
type Day struct {
	DayNumber int          `json:"dayNumber"`
	Morning   *Highlight   `json:"morning"`
	Afternoon *Highlight   `json:"afternoon"`
	Lunch     *FoodSpot    `json:"lunch"`
	Evening   *EveningIdea `json:"evening"`
}

// Proposal is a generated quote: the original request plus the three
// tiered routes, kept transiently so the client dashboard can fetch it.
type Proposal struct {
	ID        uuid.UUID   `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Request   TripRequest `json:"request"`
	Routes    []Route     `json:"routes"`
}

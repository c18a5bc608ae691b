package types

import "encoding/json"

// Preference tags understood by the engine. They match the activity type
// tags on catalog entries, plus the two mood tags used only for zone
// recommendations.
const (
	PrefCultura     = "cultura"
	PrefGastronomia = "gastronomia"
	PrefNaturaleza  = "naturaleza"
	PrefNocturno    = "nocturno"
	PrefTranquilo   = "tranquilo"
	PrefAnimado     = "animado"
)

// TimeOfDay is a highlight's scheduling affinity.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeAny       TimeOfDay = "any"
)

// TierPrices is a catalog price column per tier, in euros.
type TierPrices struct {
	Budget  int `json:"budget"`
	Mid     int `json:"mid"`
	Premium int `json:"premium"`
}

// ForTier returns the price for the given tier.
func (p TierPrices) ForTier(t Tier) int {
	switch t {
	case TierBudget:
		return p.Budget
	case TierPremium:
		return p.Premium
	default:
		return p.Mid
	}
}

// Highlight is a sightseeing/activity catalog entry.
type Highlight struct {
	Name        string    `json:"name"`
	Photo       string    `json:"photo,omitempty"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Type        string    `json:"type,omitempty"`
	TimeOfDay   TimeOfDay `json:"timeOfDay,omitempty"`
}

// UnmarshalJSON accepts both the current object shape and the legacy
// bare-string shape still present in older catalog entries. A bare
// string decodes to a name-only highlight; NormalizeHighlights fills in
// the missing type and time of day.
func (h *Highlight) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*h = Highlight{Name: name, Duration: "2h"}
		return nil
	}
	type plain Highlight
	var full plain
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*h = Highlight(full)
	return nil
}

// NormalizeHighlights backfills legacy records: a highlight without a
// time of day alternates morning/afternoon by position, and a missing
// type defaults to cultura. The input slice is not modified.
func NormalizeHighlights(hs []Highlight) []Highlight {
	out := make([]Highlight, len(hs))
	for i, h := range hs {
		if h.TimeOfDay == "" {
			if i%2 == 0 {
				h.TimeOfDay = TimeMorning
			} else {
				h.TimeOfDay = TimeAfternoon
			}
		}
		if h.Type == "" {
			h.Type = PrefCultura
		}
		out[i] = h
	}
	return out
}

// FoodSpot is a lunch recommendation with a price-range tag matching the
// tier names.
type FoodSpot struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Zone        string `json:"zone,omitempty"`
	PriceRange  string `json:"priceRange"`
}

// EveningIdea is an after-dinner plan sharing the highlight type tags.
type EveningIdea struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

// City is one immutable catalog entry.
type City struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Emoji          string        `json:"emoji"`
	Country        string        `json:"country"`
	Photo          string        `json:"photo,omitempty"`
	Accommodation  TierPrices    `json:"accommodation"`
	DailyFood      TierPrices    `json:"dailyFood"`
	LocalTransport TierPrices    `json:"localTransport"`
	Highlights     []Highlight   `json:"highlights"`
	FoodSpots      []FoodSpot    `json:"foodSpots"`
	EveningIdeas   []EveningIdea `json:"eveningIdeas"`
	QuietZones     []string      `json:"quietZones"`
	TouristyZones  []string      `json:"touristyZones"`
}

// TransportOptions is one symmetric inter-city entry of the transport
// table. A nil pointer means the mode is not available for the pair.
type TransportOptions struct {
	Bus    *int `json:"bus"`
	Train  *int `json:"train"`
	Flight *int `json:"flight"`
}

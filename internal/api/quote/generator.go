package quote

import (
	"strings"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// All trips depart from and return to the agency's home city.
const homeCity = "Buenos Aires"

var tierLabels = map[types.Tier]string{
	types.TierBudget:  "Económica",
	types.TierMid:     "Equilibrada",
	types.TierPremium: "Premium",
}

var accommodationLabels = map[types.Tier]string{
	types.TierBudget:  "Hostal / Airbnb compartido",
	types.TierMid:     "Hotel 3★ céntrico",
	types.TierPremium: "Hotel boutique 4★",
}

// GenerateRoutes produces the three tiered route options for a trip
// request, always in budget, mid, premium order. Each route is computed
// independently from the same inputs; the function is pure and holds no
// state between calls, so identical requests yield identical output.
func GenerateRoutes(cat *catalog.Catalog, req types.TripRequest) []types.Route {
	routes := make([]types.Route, 0, len(types.Tiers()))
	for _, tier := range types.Tiers() {
		routes = append(routes, generateRoute(cat, tier, req.CityIDs, req.TotalDays, req.Preferences, req.Travelers))
	}
	return routes
}

// generateRoute builds one fully priced route. Missing catalog data
// never fails the computation: unknown flight cities fall back to the
// default intercontinental fare and unknown transport pairs to the
// default flight cost.
func generateRoute(cat *catalog.Catalog, tier types.Tier, cityIDs []string, totalDays int, preferences []string, travelers int) types.Route {
	nights := distributeDays(totalDays, len(cityIDs))

	firstCityID := cityIDs[0]
	lastCityID := cityIDs[len(cityIDs)-1]
	flightIn := cat.FlightFare(firstCityID, tier)
	flightOut := cat.FlightFare(lastCityID, tier)

	segments := make([]types.Segment, 0, len(cityIDs)-1)
	totalInterCity := 0
	for i := 0; i < len(cityIDs)-1; i++ {
		leg := resolveTransport(cat, cityIDs[i], cityIDs[i+1], tier)
		segments = append(segments, types.Segment{
			From: displayName(cat, cityIDs[i]),
			To:   displayName(cat, cityIDs[i+1]),
			Mode: leg.mode,
			Cost: leg.cost,
		})
		totalInterCity += leg.cost
	}

	cityDetails := make([]types.CityDetail, 0, len(cityIDs))
	var totalAccommodation, totalFood, totalLocalTransport int
	for i, cityID := range cityIDs {
		// Unknown cities yield a zero-valued entry rather than an error.
		city, _ := cat.City(cityID)
		n := nights[i]

		accPerNight := city.Accommodation.ForTier(tier)
		foodPerDay := city.DailyFood.ForTier(tier)
		localPerDay := city.LocalTransport.ForTier(tier)
		zones := recommendZones(city, preferences)

		cityDetails = append(cityDetails, types.CityDetail{
			CityID:  cityID,
			Name:    displayName(cat, cityID),
			Emoji:   city.Emoji,
			Country: city.Country,
			Photo:   city.Photo,
			Nights:  n,
			Accommodation: types.AccommodationPlan{
				Type:     accommodationLabels[tier],
				PerNight: accPerNight,
				Total:    accPerNight * n,
			},
			Food: types.DailySpend{
				PerDay: foodPerDay,
				Total:  foodPerDay * n,
			},
			LocalTransport: types.DailySpend{
				PerDay: localPerDay,
				Total:  localPerDay * n,
			},
			Highlights:       city.Highlights,
			FoodSpots:        city.FoodSpots,
			EveningIdeas:     city.EveningIdeas,
			RecommendedZones: zones.Recommended,
			AvoidZones:       zones.Avoid,
			Subtotal:         (accPerNight + foodPerDay + localPerDay) * n,
		})

		totalAccommodation += accPerNight * n
		totalFood += foodPerDay * n
		totalLocalTransport += localPerDay * n
	}

	totalFlights := flightIn + flightOut
	totalPerPerson := totalAccommodation + totalFood + totalLocalTransport + totalInterCity + totalFlights

	stops := make([]string, 0, len(cityIDs)+2)
	stops = append(stops, homeCity)
	for _, cityID := range cityIDs {
		stops = append(stops, displayName(cat, cityID))
	}
	stops = append(stops, homeCity)

	return types.Route{
		Tier:        tier,
		Label:       tierLabels[tier],
		RouteVisual: strings.Join(stops, " → "),
		FlightIn:    types.FlightLeg{City: displayName(cat, firstCityID), Cost: flightIn},
		FlightOut:   types.FlightLeg{City: displayName(cat, lastCityID), Cost: flightOut},
		Segments:    segments,
		CityDetails: cityDetails,
		Costs: types.Costs{
			Accommodation:      totalAccommodation,
			Food:               totalFood,
			LocalTransport:     totalLocalTransport,
			InterCityTransport: totalInterCity,
			Flights:            totalFlights,
			TotalPerPerson:     totalPerPerson,
			TotalGroup:         totalPerPerson * travelers,
		},
	}
}

// displayName falls back to the raw identifier for cities missing from
// the catalog so routes stay renderable.
func displayName(cat *catalog.Catalog, cityID string) string {
	if city, ok := cat.City(cityID); ok {
		return city.Name
	}
	return cityID
}

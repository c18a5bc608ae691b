package itinerary

import (
	"sort"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// Lunch recommendations are sorted by how well their price range fits
// the tier; price ranges outside a tier's list sort last.
var foodTierPriority = map[types.Tier][]string{
	types.TierBudget:  {"budget", "mid"},
	types.TierMid:     {"mid", "budget", "premium"},
	types.TierPremium: {"premium", "mid"},
}

// Build expands a city stay into a day-by-day schedule of morning and
// afternoon activities, lunch and an evening plan. It always returns
// max(1, nights) days. Highlights are scored by preference affinity,
// split into morning/afternoon pools and round-robin distributed across
// the days; a day whose pool comes up empty borrows the second item of
// the opposite pool. The function is a pure transformation: equal
// inputs always reproduce the same itinerary.
func Build(cat *catalog.Catalog, city types.CityDetail, nights int, preferences []string, tier types.Tier) []types.Day {
	days := nights
	if days < 1 {
		days = 1
	}

	highlights := types.NormalizeHighlights(city.Highlights)
	foodSpots, eveningIdeas := poolsWithCatalogFallback(cat, city)

	type scoredHighlight struct {
		types.Highlight
		score int
	}
	scored := make([]scoredHighlight, len(highlights))
	for i, h := range highlights {
		scored[i] = scoredHighlight{Highlight: h, score: scoreHighlight(h, preferences)}
	}
	// Stable sort: ties keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var morningPool, afternoonPool []types.Highlight
	for _, sh := range scored {
		if sh.TimeOfDay == types.TimeMorning || sh.TimeOfDay == types.TimeAny {
			morningPool = append(morningPool, sh.Highlight)
		}
		if sh.TimeOfDay == types.TimeAfternoon || sh.TimeOfDay == types.TimeAny {
			afternoonPool = append(afternoonPool, sh.Highlight)
		}
	}

	morningDist := distribute(morningPool, days)
	afternoonDist := distribute(afternoonPool, days)
	foodDist := distribute(sortFoodByTier(foodSpots, tier), days)
	eveningDist := distribute(sortEveningByPreference(eveningIdeas, preferences), days)

	schedule := make([]types.Day, 0, days)
	for d := 0; d < days; d++ {
		day := types.Day{
			DayNumber: d + 1,
			Morning:   pickActivity(morningDist[d], afternoonDist[d]),
			Afternoon: pickActivity(afternoonDist[d], morningDist[d]),
		}
		if len(foodDist[d]) > 0 {
			day.Lunch = &foodDist[d][0]
		}
		if len(eveningDist[d]) > 0 {
			day.Evening = &eveningDist[d][0]
		}
		schedule = append(schedule, day)
	}
	return schedule
}

// scoreHighlight gives every highlight a base score of 1 plus a flat +2
// when its type tag matches a traveler preference. The boost is binary,
// not proportional.
func scoreHighlight(h types.Highlight, preferences []string) int {
	score := 1
	for _, p := range preferences {
		if p == h.Type {
			score += 2
			break
		}
	}
	return score
}

// distribute assigns item i to bucket i mod days, preserving the input
// order so higher-priority items land in earlier buckets first.
func distribute[T any](items []T, days int) [][]T {
	buckets := make([][]T, days)
	for i, item := range items {
		buckets[i%days] = append(buckets[i%days], item)
	}
	return buckets
}

// pickActivity fills a slot from its own pool, falling back to the
// second item of the opposite pool so a thin pool does not leave the
// slot empty or steal the other slot's first choice. Both empty means a
// free slot.
func pickActivity(primary, secondary []types.Highlight) *types.Highlight {
	if len(primary) > 0 {
		return &primary[0]
	}
	if len(secondary) > 1 {
		return &secondary[1]
	}
	return nil
}

func sortFoodByTier(spots []types.FoodSpot, tier types.Tier) []types.FoodSpot {
	priorities, ok := foodTierPriority[tier]
	if !ok {
		priorities = []string{"mid", "budget", "premium"}
	}
	rank := func(priceRange string) int {
		for i, p := range priorities {
			if p == priceRange {
				return i
			}
		}
		return len(priorities) + 1
	}

	sorted := append([]types.FoodSpot(nil), spots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i].PriceRange) < rank(sorted[j].PriceRange)
	})
	return sorted
}

// sortEveningByPreference is a stable binary partition, not a full
// scoring pass: ideas matching any preference simply sort first.
func sortEveningByPreference(ideas []types.EveningIdea, preferences []string) []types.EveningIdea {
	matches := func(idea types.EveningIdea) bool {
		for _, p := range preferences {
			if p == idea.Type {
				return true
			}
		}
		return false
	}

	sorted := append([]types.EveningIdea(nil), ideas...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return matches(sorted[i]) && !matches(sorted[j])
	})
	return sorted
}

// poolsWithCatalogFallback returns the detail's food and evening pools,
// falling back to the catalog entry when the detail carries none.
func poolsWithCatalogFallback(cat *catalog.Catalog, city types.CityDetail) ([]types.FoodSpot, []types.EveningIdea) {
	foodSpots := city.FoodSpots
	eveningIdeas := city.EveningIdeas
	if catalogCity, ok := cat.City(city.CityID); ok {
		if len(foodSpots) == 0 {
			foodSpots = catalogCity.FoodSpots
		}
		if len(eveningIdeas) == 0 {
			eveningIdeas = catalogCity.EveningIdeas
		}
	}
	return foodSpots, eveningIdeas
}

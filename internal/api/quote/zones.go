package quote

import (
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// recommendZones derives the per-city neighbourhood advice from the
// traveler's mood tags. Only one branch fires: tranquilo wins over
// animado when both are present.
func recommendZones(city types.City, preferences []string) types.ZoneRecommendation {
	switch {
	case hasTag(preferences, types.PrefTranquilo):
		return types.ZoneRecommendation{
			Recommended: city.QuietZones,
			Avoid:       city.TouristyZones,
		}
	case hasTag(preferences, types.PrefAnimado):
		recommended := append([]string{}, firstN(city.QuietZones, 2)...)
		recommended = append(recommended, city.TouristyZones...)
		return types.ZoneRecommendation{
			Recommended: recommended,
			Avoid:       []string{},
		}
	default:
		return types.ZoneRecommendation{
			Recommended: firstN(city.QuietZones, 3),
			Avoid:       firstN(city.TouristyZones, 2),
		}
	}
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

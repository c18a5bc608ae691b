package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

func emptyCatalog() *catalog.Catalog {
	return catalog.New(nil, nil, nil)
}

func highlight(name, typ string, timeOfDay types.TimeOfDay) types.Highlight {
	return types.Highlight{Name: name, Type: typ, TimeOfDay: timeOfDay}
}

func TestBuildLength(t *testing.T) {
	city := types.CityDetail{
		CityID: "madrid",
		Highlights: []types.Highlight{
			highlight("Prado", types.PrefCultura, types.TimeMorning),
			highlight("Retiro", types.PrefNaturaleza, types.TimeAfternoon),
		},
	}

	for nights := 0; nights <= 8; nights++ {
		days := Build(emptyCatalog(), city, nights, nil, types.TierMid)
		expected := nights
		if expected < 1 {
			expected = 1
		}
		require.Len(t, days, expected, "nights=%d", nights)
		for i, day := range days {
			assert.Equal(t, i+1, day.DayNumber)
		}
	}
}

func TestBuildPreferenceScoringOrdersBuckets(t *testing.T) {
	city := types.CityDetail{
		CityID: "roma",
		Highlights: []types.Highlight{
			highlight("Coliseo", types.PrefCultura, types.TimeMorning),
			highlight("Trastevere", types.PrefGastronomia, types.TimeMorning),
		},
	}

	// The gastronomy match scores 3 against 1, so it lands on day one.
	days := Build(emptyCatalog(), city, 2, []string{types.PrefGastronomia}, types.TierMid)
	require.Len(t, days, 2)
	require.NotNil(t, days[0].Morning)
	assert.Equal(t, "Trastevere", days[0].Morning.Name)
	require.NotNil(t, days[1].Morning)
	assert.Equal(t, "Coliseo", days[1].Morning.Name)
}

func TestBuildAnyTimeAppearsInBothPools(t *testing.T) {
	city := types.CityDetail{
		CityID: "madrid",
		Highlights: []types.Highlight{
			highlight("Mercado de San Miguel", types.PrefGastronomia, types.TimeAny),
		},
	}

	days := Build(emptyCatalog(), city, 1, nil, types.TierMid)
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Morning)
	require.NotNil(t, days[0].Afternoon)
	assert.Equal(t, "Mercado de San Miguel", days[0].Morning.Name)
	assert.Equal(t, "Mercado de San Miguel", days[0].Afternoon.Name)
}

func TestBuildCrossPoolFallback(t *testing.T) {
	// No morning highlights at all: the morning slot borrows the
	// *second* afternoon item, leaving the first for the afternoon.
	city := types.CityDetail{
		CityID: "lisboa",
		Highlights: []types.Highlight{
			highlight("Miradouros", types.PrefNaturaleza, types.TimeAfternoon),
			highlight("LX Factory", types.PrefGastronomia, types.TimeAfternoon),
		},
	}

	days := Build(emptyCatalog(), city, 1, nil, types.TierMid)
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Afternoon)
	assert.Equal(t, "Miradouros", days[0].Afternoon.Name)
	require.NotNil(t, days[0].Morning)
	assert.Equal(t, "LX Factory", days[0].Morning.Name)
}

func TestBuildSparsePoolsLeaveFreeSlots(t *testing.T) {
	// One afternoon highlight only: the afternoon gets it, the morning
	// has no second item to borrow and stays free.
	city := types.CityDetail{
		CityID: "lisboa",
		Highlights: []types.Highlight{
			highlight("Miradouros", types.PrefNaturaleza, types.TimeAfternoon),
		},
	}

	days := Build(emptyCatalog(), city, 1, nil, types.TierMid)
	require.Len(t, days, 1)
	assert.Nil(t, days[0].Morning)
	require.NotNil(t, days[0].Afternoon)
}

func TestBuildNoFoodOrEveningNeverPanics(t *testing.T) {
	city := types.CityDetail{
		CityID: "ghost-town",
		Highlights: []types.Highlight{
			highlight("Plaza", types.PrefCultura, types.TimeMorning),
		},
	}

	days := Build(emptyCatalog(), city, 3, []string{types.PrefCultura}, types.TierBudget)
	require.Len(t, days, 3)
	for _, day := range days {
		assert.Nil(t, day.Lunch)
		assert.Nil(t, day.Evening)
	}
}

func TestBuildFoodSortedByTierPriority(t *testing.T) {
	city := types.CityDetail{
		CityID: "madrid",
		FoodSpots: []types.FoodSpot{
			{Name: "Caro", PriceRange: "premium"},
			{Name: "Barato", PriceRange: "budget"},
			{Name: "Medio", PriceRange: "mid"},
		},
	}

	tests := []struct {
		tier  types.Tier
		first string
	}{
		{types.TierBudget, "Barato"},
		{types.TierMid, "Medio"},
		{types.TierPremium, "Caro"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			days := Build(emptyCatalog(), city, 1, nil, tt.tier)
			require.NotNil(t, days[0].Lunch)
			assert.Equal(t, tt.first, days[0].Lunch.Name)
		})
	}
}

func TestBuildEveningPreferenceMatchesFirst(t *testing.T) {
	city := types.CityDetail{
		CityID: "berlin",
		EveningIdeas: []types.EveningIdea{
			{Name: "Ópera", Type: types.PrefCultura},
			{Name: "Clubs", Type: types.PrefNocturno},
		},
	}

	days := Build(emptyCatalog(), city, 1, []string{types.PrefNocturno}, types.TierMid)
	require.NotNil(t, days[0].Evening)
	assert.Equal(t, "Clubs", days[0].Evening.Name)

	// Without the matching preference the stable order holds.
	days = Build(emptyCatalog(), city, 1, []string{types.PrefNaturaleza}, types.TierMid)
	require.NotNil(t, days[0].Evening)
	assert.Equal(t, "Ópera", days[0].Evening.Name)
}

func TestBuildNormalizesLegacyHighlights(t *testing.T) {
	// Name-only records alternate morning/afternoon by position and
	// default to cultura.
	city := types.CityDetail{
		CityID: "praga",
		Highlights: []types.Highlight{
			{Name: "Reloj Astronómico"},
			{Name: "Josefov"},
		},
	}

	days := Build(emptyCatalog(), city, 1, nil, types.TierMid)
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Morning)
	assert.Equal(t, "Reloj Astronómico", days[0].Morning.Name)
	assert.Equal(t, types.PrefCultura, days[0].Morning.Type)
	require.NotNil(t, days[0].Afternoon)
	assert.Equal(t, "Josefov", days[0].Afternoon.Name)
}

func TestBuildFallsBackToCatalogPools(t *testing.T) {
	cat := catalog.New([]types.City{
		{
			ID:   "madrid",
			Name: "Madrid",
			FoodSpots: []types.FoodSpot{
				{Name: "Casa Lucio", PriceRange: "mid"},
			},
			EveningIdeas: []types.EveningIdea{
				{Name: "Flamenco", Type: types.PrefCultura},
			},
		},
	}, nil, nil)

	// The detail carries no pools of its own.
	city := types.CityDetail{CityID: "madrid"}
	days := Build(cat, city, 1, nil, types.TierMid)
	require.Len(t, days, 1)
	require.NotNil(t, days[0].Lunch)
	assert.Equal(t, "Casa Lucio", days[0].Lunch.Name)
	require.NotNil(t, days[0].Evening)
	assert.Equal(t, "Flamenco", days[0].Evening.Name)
}

func TestBuildDeterminism(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	madrid, ok := cat.City("madrid")
	require.True(t, ok)

	city := types.CityDetail{
		CityID:       madrid.ID,
		Highlights:   madrid.Highlights,
		FoodSpots:    madrid.FoodSpots,
		EveningIdeas: madrid.EveningIdeas,
	}

	first := Build(cat, city, 4, []string{types.PrefCultura}, types.TierPremium)
	second := Build(cat, city, 4, []string{types.PrefCultura}, types.TierPremium)
	assert.Equal(t, first, second)
}

func TestBuildRoundRobinDistribution(t *testing.T) {
	city := types.CityDetail{
		CityID: "madrid",
		Highlights: []types.Highlight{
			highlight("A", types.PrefCultura, types.TimeMorning),
			highlight("B", types.PrefCultura, types.TimeMorning),
			highlight("C", types.PrefCultura, types.TimeMorning),
		},
	}

	// Three morning items over two days: buckets [A C] [B].
	days := Build(emptyCatalog(), city, 2, nil, types.TierMid)
	require.Len(t, days, 2)
	require.NotNil(t, days[0].Morning)
	assert.Equal(t, "A", days[0].Morning.Name)
	require.NotNil(t, days[1].Morning)
	assert.Equal(t, "B", days[1].Morning.Name)

	// Day one's afternoon borrows the second item of its morning
	// bucket, C; day two's bucket has no second item.
	require.NotNil(t, days[0].Afternoon)
	assert.Equal(t, "C", days[0].Afternoon.Name)
	assert.Nil(t, days[1].Afternoon)
}

package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

func intPtr(v int) *int { return &v }

func TestResolveTransportTierPolicy(t *testing.T) {
	// Pair with every mode available.
	cat := catalog.New(nil, map[string]types.TransportOptions{
		"madrid-barcelona": {Bus: intPtr(20), Train: intPtr(45), Flight: intPtr(35)},
	}, nil)

	tests := []struct {
		tier types.Tier
		cost int
		mode string
	}{
		{types.TierBudget, 20, ModeBus},
		{types.TierMid, 45, ModeTrain},
		{types.TierPremium, 35, ModeFlight},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			leg := resolveTransport(cat, "madrid", "barcelona", tt.tier)
			assert.Equal(t, tt.cost, leg.cost)
			assert.Equal(t, tt.mode, leg.mode)
		})
	}
}

func TestResolveTransportFlightOnlyPair(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	// madrid-viena has no bus or train, so even the budget tier falls
	// back to the pair's flight at the low-cost label.
	leg := resolveTransport(cat, "madrid", "viena", types.TierBudget)
	assert.Equal(t, 50, leg.cost)
	assert.Equal(t, ModeLowCostFlight, leg.mode)

	leg = resolveTransport(cat, "madrid", "viena", types.TierMid)
	assert.Equal(t, 50, leg.cost)
	assert.Equal(t, ModeFlight, leg.mode)
}

func TestResolveTransportSymmetric(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	forward := resolveTransport(cat, "madrid", "barcelona", types.TierBudget)
	backward := resolveTransport(cat, "barcelona", "madrid", types.TierBudget)
	assert.Equal(t, forward, backward)
	assert.Equal(t, 20, forward.cost)
	assert.Equal(t, ModeBus, forward.mode)
}

func TestResolveTransportUnknownPairNeverFails(t *testing.T) {
	cat := catalog.New(nil, nil, nil)

	for _, tier := range types.Tiers() {
		leg := resolveTransport(cat, "narnia", "mordor", tier)
		assert.Equal(t, catalog.DefaultFlightCost, leg.cost)
		if tier == types.TierBudget {
			assert.Equal(t, ModeLowCostFlight, leg.mode)
		} else {
			assert.Equal(t, ModeFlight, leg.mode)
		}
	}
}

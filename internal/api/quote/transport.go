package quote

import (
	"github.com/baldotina/go-trip-quotes/internal/catalog"
	"github.com/baldotina/go-trip-quotes/internal/types"
)

// Transport mode labels as they appear on proposals and exports.
const (
	ModeBus           = "Bus"
	ModeTrain         = "Tren"
	ModeFlight        = "Vuelo"
	ModeLowCostFlight = "Vuelo low-cost"
)

type transportLeg struct {
	cost int
	mode string
}

// resolveTransport picks the transport mode and cost for one city pair
// at a tier: budget rides the bus when one exists and otherwise takes a
// low-cost flight, mid prefers the train, premium always flies. The
// catalog lookup is symmetric and substitutes a default flight fare for
// unknown pairs, so this is a total function.
func resolveTransport(cat *catalog.Catalog, cityA, cityB string, tier types.Tier) transportLeg {
	opts := cat.TransportOptions(cityA, cityB)

	flight := catalog.DefaultFlightCost
	if opts.Flight != nil {
		flight = *opts.Flight
	}

	switch tier {
	case types.TierBudget:
		if opts.Bus != nil {
			return transportLeg{cost: *opts.Bus, mode: ModeBus}
		}
		return transportLeg{cost: flight, mode: ModeLowCostFlight}
	case types.TierMid:
		if opts.Train != nil {
			return transportLeg{cost: *opts.Train, mode: ModeTrain}
		}
		return transportLeg{cost: flight, mode: ModeFlight}
	default:
		return transportLeg{cost: flight, mode: ModeFlight}
	}
}

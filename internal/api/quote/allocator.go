package quote

// distributeDays splits a total trip-day budget across the requested
// cities in order. Every city gets the integer base share and the first
// totalDays%numCities cities absorb the remainder, one extra night each.
// Front-loading the remainder keeps the allocation deterministic and
// order-sensitive.
//
// When totalDays < numCities the base is 0 and trailing cities end up
// with 0 nights; the request validator upstream prevents that shape, the
// allocator itself does not guard against it.
func distributeDays(totalDays, numCities int) []int {
	base := totalDays / numCities
	remainder := totalDays % numCities

	nights := make([]int, numCities)
	for i := range nights {
		nights[i] = base
		if i < remainder {
			nights[i]++
		}
	}
	return nights
}

package steering

import "math/rand/v2"

// RandomInRange returns a uniform value in [lo, hi) drawn from rng.
// When hi <= lo it returns lo.
func RandomInRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// RandomIntInRange returns a uniform integer in [lo, hi], both ends included.
func RandomIntInRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

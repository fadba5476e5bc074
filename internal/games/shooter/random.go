package shooter

import (
	"math/rand"

	"github.com/vovakirdan/arcade-shooters/internal/config"
)

// Random is the source of randomness for spawns, bursts and stars.
// *rand.Rand satisfies it; tests may substitute a scripted source.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded source. Equal seeds replay equal games.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform samples a float in [lo, hi).
func uniform(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// randInt samples an int in [lo, hi].
func randInt(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// sample draws from a config range, as a whole number when integer is set.
func sample(r Random, rg config.Range, integer bool) float64 {
	if integer {
		return float64(randInt(r, int(rg.Min), int(rg.Max)))
	}
	return uniform(r, rg.Min, rg.Max)
}

// pick returns a random element of xs, or def when xs is empty.
func pick[T any](r Random, xs []T, def T) T {
	if len(xs) == 0 {
		return def
	}
	return xs[r.Intn(len(xs))]
}

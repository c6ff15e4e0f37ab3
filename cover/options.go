package cover

import "math/rand"

// DefaultSeed seeds the heuristics' RNG when no option supplies one,
// so an unseeded Approx2/Approx3 call is still reproducible.
const DefaultSeed int64 = 1

// Option configures the randomized heuristics.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand supplies the RNG used by Approx2/Approx3. The caller keeps
// ownership; *rand.Rand is not goroutine-safe. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cover: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed gives the heuristic a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// resolve applies opts in order and fills the default RNG.
func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}

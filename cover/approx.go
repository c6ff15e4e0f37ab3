// Package cover - polynomial-time vertex cover heuristics.
//
// All three heuristics share one loop shape: while uncovered edges remain,
// choose node(s), add them to the cover and drop every edge they touch.
// Each round removes at least one edge, so the loop terminates after at most
// E rounds, and it only stops once no edge is left uncovered: the result is
// always a valid vertex cover.
//
//	Approx1  greedy by maximum remaining degree (deterministic, smallest index wins ties)
//	Approx2  random remaining edge, then one of its endpoints at random
//	Approx3  random remaining edge, both endpoints (2-approximation)
//
// Complexity: O(V · E) for Approx1, O(E²) worst case for Approx2/Approx3.
package cover

import (
	"math"

	"github.com/katalvlaran/lvcover/core"
)

// Approx1 repeatedly takes the node with the highest degree among the
// remaining (uncovered) edges. Ties go to the smallest node index.
// Deterministic: needs no RNG.
func Approx1(g *core.Graph) Set {
	if g == nil {
		return Set{}
	}
	pool := newEdgePool(g)
	in := make([]bool, g.Size())
	deg := make([]int, g.Size())

	for pool.len() > 0 {
		for i := range deg {
			deg[i] = 0
		}
		for _, e := range pool.edges {
			deg[e.U]++
			deg[e.V]++
		}
		best := 0
		for v := 1; v < len(deg); v++ {
			if deg[v] > deg[best] {
				best = v
			}
		}
		in[best] = true
		pool.removeIncident(best)
	}

	return fromFlags(in)
}

// Approx2 repeatedly picks a remaining edge uniformly at random and adds one
// of its two endpoints, chosen uniformly, to the cover.
// Randomness comes from WithRand/WithSeed, else DefaultSeed.
func Approx2(g *core.Graph, opts ...Option) Set {
	if g == nil {
		return Set{}
	}
	o := resolve(opts)
	pool := newEdgePool(g)
	in := make([]bool, g.Size())

	for pool.len() > 0 {
		e := pool.pick(o.rng)
		v := e.U
		if o.rng.Intn(2) == 1 {
			v = e.V
		}
		in[v] = true
		pool.removeIncident(v)
	}

	return fromFlags(in)
}

// Approx3 repeatedly picks a remaining edge uniformly at random and adds both
// endpoints to the cover. The picked edges form a matching, and any cover
// needs one endpoint per matching edge, so |Approx3(g)| ≤ 2·|MVC(g)|.
// Randomness comes from WithRand/WithSeed, else DefaultSeed.
func Approx3(g *core.Graph, opts ...Option) Set {
	if g == nil {
		return Set{}
	}
	o := resolve(opts)
	pool := newEdgePool(g)
	in := make([]bool, g.Size())

	for pool.len() > 0 {
		e := pool.pick(o.rng)
		in[e.U] = true
		in[e.V] = true
		pool.removeIncident(e.U)
		pool.removeIncident(e.V)
	}

	return fromFlags(in)
}

// Ratio returns the approximation ratio |approx| / |exact|.
// Two empty sets give 1; a non-empty approx over an empty exact gives +Inf.
func Ratio(approx, exact Set) float64 {
	if exact.Len() == 0 {
		if approx.Len() == 0 {
			return 1
		}
		return math.Inf(1)
	}

	return float64(approx.Len()) / float64(exact.Len())
}

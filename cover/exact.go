// Package cover - exact minimum vertex cover by exhaustive subset search.
//
// MVC walks every integer mask in 0..2^n-1; bit i set means node i is in the
// candidate subset. Edges are pre-compiled into two-bit masks so the cover
// test is one AND per edge. Candidates that are not strictly smaller than the
// best cover so far are skipped by popcount before the edge scan.
//
// Tie-break: the first minimum cover in ascending mask order wins.
//
// Complexity: O(2^n · E) time, O(E) space. Intentionally exponential.
package cover

import (
	"math/bits"

	"github.com/katalvlaran/lvcover/core"
)

// MaxExactNodes is the largest node count whose subsets fit in a uint64 mask.
// For larger graphs MVC falls back to the full node set, which is always a
// valid (but not minimum) cover. Practical runs stay far below, around n ≤ 20.
const MaxExactNodes = 63

// IsVertexCover reports whether every edge of g has at least one endpoint in s.
// Members of s outside [0, g.Size()) are ignored.
// Complexity: O(V + E).
func IsVertexCover(g *core.Graph, s Set) bool {
	if g == nil {
		return true
	}
	in := flags(g.Size(), s)
	for _, e := range g.Edges() {
		if !in[e.U] && !in[e.V] {
			return false
		}
	}

	return true
}

// IsIndependentSet reports whether no edge of g has both endpoints in s.
// Complexity: O(V + E).
func IsIndependentSet(g *core.Graph, s Set) bool {
	if g == nil {
		return true
	}
	in := flags(g.Size(), s)
	for _, e := range g.Edges() {
		if in[e.U] && in[e.V] {
			return false
		}
	}

	return true
}

// MVC returns a minimum vertex cover of g by exhaustive enumeration.
//
// The full node set is the initial best candidate; any strictly smaller cover
// replaces it. An edgeless graph yields the empty set. MVC never fails;
// callers bound n themselves (see MaxExactNodes).
func MVC(g *core.Graph) Set {
	if g == nil {
		return Set{}
	}
	n := g.Size()
	all := make([]bool, n)
	for i := range all {
		all[i] = true
	}
	if n > MaxExactNodes {
		return fromFlags(all)
	}

	edges := g.Edges()
	masks := make([]uint64, len(edges))
	for i, e := range edges {
		masks[i] = 1<<uint(e.U) | 1<<uint(e.V)
	}

	total := uint64(1) << uint(n)
	best := total - 1
	bestSize := n

	for mask := uint64(0); mask < total; mask++ {
		if bits.OnesCount64(mask) >= bestSize {
			continue
		}
		if coversAll(mask, masks) {
			best = mask
			bestSize = bits.OnesCount64(mask)
		}
	}

	return fromMask(best, n)
}

// MIS returns a maximum independent set of g: the complement of MVC(g).
// |MVC(g)| + |MIS(g)| == g.Size() for every graph.
func MIS(g *core.Graph) Set {
	if g == nil {
		return Set{}
	}

	return MVC(g).Complement(g.Size())
}

// coversAll reports whether mask hits every two-bit edge mask.
func coversAll(mask uint64, edges []uint64) bool {
	for _, e := range edges {
		if mask&e == 0 {
			return false
		}
	}

	return true
}

// fromMask expands the low n bits of mask into a Set.
func fromMask(mask uint64, n int) Set {
	out := make(Set, 0, bits.OnesCount64(mask))
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}

	return out
}

// flags turns s into a membership slice of length n, ignoring out-of-range ids.
func flags(n int, s Set) []bool {
	in := make([]bool, n)
	for _, v := range s {
		if v >= 0 && v < n {
			in[v] = true
		}
	}

	return in
}

package cover

import (
	"math/rand"

	"github.com/katalvlaran/lvcover/core"
)

// edgePool is the working set of uncovered edges for the heuristics.
// It is a private copy; the graph itself is never mutated.
type edgePool struct {
	edges []core.Edge
}

func newEdgePool(g *core.Graph) *edgePool {
	return &edgePool{edges: g.Edges()}
}

func (p *edgePool) len() int { return len(p.edges) }

// pick returns a remaining edge chosen uniformly at random.
func (p *edgePool) pick(rng *rand.Rand) core.Edge {
	return p.edges[rng.Intn(len(p.edges))]
}

// removeIncident drops every edge touching v, preserving the order of the rest.
func (p *edgePool) removeIncident(v int) {
	kept := p.edges[:0]
	for _, e := range p.edges {
		if e.U != v && e.V != v {
			kept = append(kept, e)
		}
	}
	p.edges = kept
}

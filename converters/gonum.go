// SPDX-License-Identifier: MIT
// Package: lvcover/converters
//
// gonum.go — adapters between core.Graph and gonum/graph.
//
// Mapping:
//   - core node i      ⇔ gonum node ID int64(i)
//   - core edge {u,v}  ⇔ one undirected gonum edge
//
// Contract:
//   - ToGonum never fails; nil yields an empty gonum graph.
//   - FromGonum requires dense IDs 0..n-1 (ErrNonDenseIDs otherwise) and
//     rejects self-loops (core.ErrLoopNotAllowed).
//
// Complexity: O(V + E) both ways (FromGonum sorts IDs: O(V log V)).

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvcover/core"
)

var (
	// ErrNilGraph is returned by FromGonum for a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNonDenseIDs is returned when gonum node IDs are not exactly 0..n-1.
	ErrNonDenseIDs = errors.New("converters: node IDs are not dense 0..n-1")
)

// ToGonum copies g into a new gonum simple.UndirectedGraph.
// Isolated nodes are kept, so Nodes().Len() == g.Size().
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	if g == nil {
		return out
	}
	for i := 0; i < g.Size(); i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}

	return out
}

// FromGonum builds a core.Graph from an undirected gonum graph whose node
// IDs are exactly 0..n-1.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		if id != int64(i) {
			return nil, fmt.Errorf("FromGonum: id %d at rank %d: %w", id, i, ErrNonDenseIDs)
		}
	}

	g, err := core.New(len(ids))
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for _, u := range ids {
		for _, nb := range graph.NodesOf(src.From(u)) {
			v := nb.ID()
			if v < u {
				continue // each undirected edge once
			}
			if err = g.AddEdge(int(u), int(v)); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", u, v, err)
			}
		}
	}

	return g, nil
}

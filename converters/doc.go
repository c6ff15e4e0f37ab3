// Package converters provides two-way adapters between core.Graph and
// gonum's graph model (gonum.org/v1/gonum/graph):
//   - ToGonum:   core.Graph → *simple.UndirectedGraph, node i becomes simple.Node(i).
//   - FromGonum: any graph.Undirected whose node IDs are exactly 0..n-1 → core.Graph.
//
// Use converters to hand a cover instance to gonum algorithms (topo, path,
// community) or to import a graph built with gonum.
package converters

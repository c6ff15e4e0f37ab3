// Package dfs provides depth-first search and cycle detection for core.Graph.
//
// Traversal
//
//	DFS(g, start, opts...)  stack-based (LIFO) traversal returning a DFSResult
//	                        with pre-order Order, Depth, Parent and Visited.
//	Reachable(g, src, dst)  early-exit reachability
//	Path(g, src, dst)       some path along the DFS tree; [] when unreachable,
//	                        [src] when src == dst; not guaranteed shortest
//	Tree(g, src)            predecessor map of a full traversal
//
// Cycles
//
//	HasCycle(g)   true iff any component contains a cycle
//	FindCycle(g)  one cycle as a closed walk [v0 … vk v0], nil for forests
//
// Options
//
//	WithOnVisit(fn)         pre-order hook; a returned error aborts traversal
//	WithMaxDepth(limit)     limit DFS tree depth (>=0)
//	WithFilterNeighbor(fn)  skip neighbors (counted in SkippedNeighbors)
//	WithFullTraversal()     restart from every unvisited node (forest)
//	WithTarget(dst)         stop once dst is visited
//
// Every call allocates its own stack, visited set and result; nothing is
// shared between calls and the graph is never mutated.
package dfs

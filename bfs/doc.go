// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a node is discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops at the first discovery of WithTarget(dst).
//
// Convenience queries
//
//   - Reachable(g, src, dst)  bool, early exit
//   - Path(g, src, dst)       shortest path, [] when unreachable, [src] when src==dst
//   - Tree(g, src)            predecessor map of a full traversal
//   - IsConnected(g)          one BFS from node 0 covers every node
//   - Components(g)           connected components
//
// Determinism
//
//	Neighbors are expanded in core adjacency (insertion) order, so the visit
//	sequence is fully reproducible for a fixed construction order.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start or target node does not exist
//     (always together with core.ErrOutOfRange).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

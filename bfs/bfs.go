// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, neighbor filtering and early exit.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvcover/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state. A fresh walker is built per call.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
	done    bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node (and target, when set)
	if err := checkNode(g, start); err != nil {
		return nil, err
	}
	if o.Target != noTarget {
		if err := checkNode(g, o.Target); err != nil {
			return nil, err
		}
	}

	// Prepare walker
	n := g.Size()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// checkNode maps an invalid index to ErrStartVertexNotFound + core.ErrOutOfRange.
func checkNode(g *core.Graph, id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: node %d not in [0,%d): %w", ErrStartVertexNotFound, id, g.Size(), core.ErrOutOfRange)
	}
	return nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue. parent == id marks the root.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if id == w.opts.Target {
		w.done = true
	}
}

// loop processes the queue until empty, error, or the target is discovered.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item (FIFO) and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.AdjacentNodes(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
			if w.done {
				return nil
			}
		}
	}
	return nil
}

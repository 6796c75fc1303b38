// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// Walk explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	n     core.NodeIdx
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N, E any] struct {
	graph   core.Graph[N, E]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeIdx]bool
	res     *Result
}

// Walk runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Neighbours are expanded in EdgesOf order, so the visit order follows the
// graph's storage encoding. The graph must not be mutated during the walk.
func Walk[N, E any](g core.Graph[N, E], start core.NodeIdx, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNodeNotFound, start)
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker[N, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeIdx]bool, n),
		res: &Result{
			Order:  make([]core.NodeIdx, 0, n),
			Depth:  make(map[core.NodeIdx]int, n),
			Parent: make(map[core.NodeIdx]core.NodeIdx, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, start)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks n visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. parent == n marks the root.
func (w *walker[N, E]) enqueue(n core.NodeIdx, d int, parent core.NodeIdx) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if parent != n {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{n: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, E]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N, E]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.n, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N, E]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.n)
	if err := w.opts.OnVisit(item.n, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.n, err)
	}

	return nil
}

// enqueueNeighbors walks the out-edges of item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker[N, E]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.EdgesOf(item.n) {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.n, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.n)
	}
}

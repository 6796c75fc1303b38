// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Resumable breadth-first traversal (Search) stepped one node per call.
// Determinism:
//   - Neighbours are enqueued in core EdgesOf order.

package bfs

import (
	"iter"

	"github.com/katalvlaran/slotgraph/core"
)

// Search is a resumable breadth-first traversal: a FIFO queue of node
// handles plus the set of nodes already discovered. It holds no reference
// to the graph; every step takes the graph as an argument.
//
// A node is marked discovered when it is enqueued, so it is yielded at
// most once. The graph must not be mutated while a Search over it is
// alive; a queued node that has since disappeared is skipped.
type Search[N, E any] struct {
	queue   []core.NodeIdx
	visited map[core.NodeIdx]struct{}
}

// New returns a Search seeded with start.
func New[N, E any](start core.NodeIdx) *Search[N, E] {
	return WithCapacity[N, E](start, 0)
}

// WithCapacity returns a Search seeded with start whose queue and visited
// set are pre-sized for n nodes.
func WithCapacity[N, E any](start core.NodeIdx, n int) *Search[N, E] {
	if n < 1 {
		n = 1
	}
	s := &Search[N, E]{
		queue:   make([]core.NodeIdx, 0, n),
		visited: make(map[core.NodeIdx]struct{}, n),
	}
	s.visited[start] = struct{}{}
	s.queue = append(s.queue, start)

	return s
}

// For returns a Search over g seeded with start, sized for the whole graph.
// It exists so callers get N and E inferred from g.
func For[N, E any](g core.Graph[N, E], start core.NodeIdx) *Search[N, E] {
	return WithCapacity[N, E](start, g.NodeCount())
}

// NextIdx pops the next node, enqueues its undiscovered neighbours and
// returns its handle. false once the traversal is exhausted.
func (s *Search[N, E]) NextIdx(g core.Graph[N, E]) (core.NodeIdx, bool) {
	for len(s.queue) > 0 {
		n := s.queue[0]
		s.queue[0] = core.NullNode
		s.queue = s.queue[1:]
		if !g.HasNode(n) {
			continue
		}
		for nbr := range g.EdgesOf(n) {
			if _, seen := s.visited[nbr]; seen {
				continue
			}
			s.visited[nbr] = struct{}{}
			s.queue = append(s.queue, nbr)
		}

		return n, true
	}

	return core.NullNode, false
}

// Next is NextIdx returning a copy of the node payload.
func (s *Search[N, E]) Next(g core.Graph[N, E]) (N, bool) {
	n, ok := s.NextIdx(g)
	if !ok {
		var zero N
		return zero, false
	}

	return g.GetNode(n)
}

// NextMut is NextIdx returning a pointer to the node payload.
func (s *Search[N, E]) NextMut(g core.Graph[N, E]) (*N, bool) {
	n, ok := s.NextIdx(g)
	if !ok {
		return nil, false
	}

	return g.GetNodeMut(n)
}

// Visited reports whether n has been discovered (enqueued) so far.
func (s *Search[N, E]) Visited(n core.NodeIdx) bool {
	_, ok := s.visited[n]
	return ok
}

// Pending returns the number of discovered nodes not yet yielded.
func (s *Search[N, E]) Pending() int { return len(s.queue) }

// All drains s over g as a sequence of (handle, payload) pairs.
func (s *Search[N, E]) All(g core.Graph[N, E]) iter.Seq2[core.NodeIdx, N] {
	return func(yield func(core.NodeIdx, N) bool) {
		for {
			n, ok := s.NextIdx(g)
			if !ok {
				return
			}
			v, _ := g.GetNode(n)
			if !yield(n, v) {
				return
			}
		}
	}
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(g, nodeFn, edgeFn, opts, cons...). Resolves cfg,
//     runs cons in order against g through a Sink.
//   - Constructors speak in dense node indices (0..k-1, in creation order);
//     Build maps them to core.NodeIdx handles and payloads.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs and handle sequences.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/slotgraph/core"
)

// Constructor applies a deterministic topology to a Sink. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph flags reported by the Sink (directed / multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(s *Sink) error

// Sink is the write side of a graph as seen by a Constructor. Nodes are
// addressed by dense indices assigned in creation order across every
// constructor of one Build call.
type Sink struct {
	addNode  func() int
	addEdge  func(u, v int) error
	count    func() int
	directed bool
	multi    bool
	cfg      builderConfig
}

// AddNode creates one node and returns its index.
func (s *Sink) AddNode() int { return s.addNode() }

// AddNodes creates n nodes and returns the index of the first one.
func (s *Sink) AddNodes(n int) int {
	first := s.count()
	for i := 0; i < n; i++ {
		s.addNode()
	}

	return first
}

// AddEdge links node u to node v.
func (s *Sink) AddEdge(u, v int) error { return s.addEdge(u, v) }

// Len returns the number of nodes created so far.
func (s *Sink) Len() int { return s.count() }

// Directed reports whether the target graph is directed.
func (s *Sink) Directed() bool { return s.directed }

// Rand returns the RNG configured with WithSeed or WithRand, or nil.
func (s *Sink) Rand() *rand.Rand { return s.cfg.rng }

// Multigraph reports whether the target graph accepts parallel edges and loops.
func (s *Sink) Multigraph() bool { return s.multi }

// Build applies all constructors in order to g and returns the handles of
// every node created, indexed like the Sink indices.
//
// nodeFn(i) supplies the payload of node i and edgeFn(u, v) the payload of
// edge u→v; a nil function yields zero values. Any constructor error is
// wrapped with the context "Build: %w" and returned immediately together
// with the handles created so far; no partial cleanup is attempted.
//
// Errors:
//   - ErrConstructFailed for a nil graph, a nil constructor or an edge
//     endpoint outside the created range.
//   - Constructor sentinels (ErrTooFewNodes, ErrInvalidProbability, ...).
//   - core errors (errors.Is against core.ErrDuplicateEdge, core.ErrLoop)
//     when a topology does not fit the graph variant.
func Build[N, E any](
	g core.Graph[N, E],
	nodeFn func(i int) N,
	edgeFn func(u, v int) E,
	opts []Option,
	cons ...Constructor,
) ([]core.NodeIdx, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(opts...)

	var ids []core.NodeIdx
	s := &Sink{
		directed: g.IsDirected(),
		multi:    g.IsMultigraph(),
		cfg:      cfg,
		count:    func() int { return len(ids) },
	}
	s.addNode = func() int {
		i := len(ids)
		var v N
		if nodeFn != nil {
			v = nodeFn(i)
		}
		ids = append(ids, g.AddNode(v))

		return i
	}
	s.addEdge = func(u, v int) error {
		if u < 0 || u >= len(ids) || v < 0 || v >= len(ids) {
			return fmt.Errorf("edge %d→%d outside [0,%d): %w", u, v, len(ids), ErrConstructFailed)
		}
		var w E
		if edgeFn != nil {
			w = edgeFn(u, v)
		}
		if _, err := g.TryAddEdge(ids[u], ids[v], w); err != nil {
			return fmt.Errorf("AddEdge(%d→%d): %w", u, v, err)
		}

		return nil
	}

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return ids, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s); err != nil {
			return ids, fmt.Errorf("Build: %w", err)
		}
	}

	return ids, nil
}

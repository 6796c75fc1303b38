// SPDX-License-Identifier: MIT
//
// File: gonumgraph.go
// Role: Read-only adapters from core.Graph to gonum graph.Directed and
//       graph.Undirected.
// Determinism:
//   - Nodes() follows core.Graph.Nodes order; From/To follow neighbour order.

package gonumgraph

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/katalvlaran/slotgraph/core"
)

var (
	// ErrNilGraph is returned when a view is requested over a nil graph.
	ErrNilGraph = errors.New("gonumgraph: graph is nil")

	// ErrDirectionMismatch is returned when the graph's orientation does not
	// match the requested view.
	ErrDirectionMismatch = errors.New("gonumgraph: direction mismatch")
)

// ID returns the gonum node ID of n.
func ID(n core.NodeIdx) int64 { return int64(n.Raw()) }

// Handle returns the node handle behind a gonum node ID.
func Handle(id int64) core.NodeIdx { return core.NodeFromRaw(uint64(id)) }

// Node is a gonum node backed by a NodeIdx.
type Node core.NodeIdx

// ID implements graph.Node.
func (n Node) ID() int64 { return ID(core.NodeIdx(n)) }

// Idx returns the underlying handle.
func (n Node) Idx() core.NodeIdx { return core.NodeIdx(n) }

// Edge is a gonum edge backed by an EdgeIdx. F and T are oriented as
// requested by the caller, which for undirected graphs may be the reverse of
// the stored orientation.
type Edge struct {
	F, T Node
	Idx  core.EdgeIdx
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge.
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, Idx: e.Idx} }

// view holds the methods common to both orientations.
type view[N, E any] struct {
	g core.Graph[N, E]
}

func newView[N, E any](g core.Graph[N, E], directed bool) (view[N, E], error) {
	if g == nil {
		return view[N, E]{}, ErrNilGraph
	}
	if g.IsDirected() != directed {
		return view[N, E]{}, fmt.Errorf("graph directed=%t, view directed=%t: %w",
			g.IsDirected(), directed, ErrDirectionMismatch)
	}

	return view[N, E]{g: g}, nil
}

// Graph returns the wrapped graph.
func (v view[N, E]) Graph() core.Graph[N, E] { return v.g }

// Node returns the node with the given ID, or nil if it does not exist.
func (v view[N, E]) Node(id int64) graph.Node {
	n := Handle(id)
	if !v.g.HasNode(n) {
		return nil
	}

	return Node(n)
}

// Nodes returns every live node.
func (v view[N, E]) Nodes() graph.Nodes {
	out := make([]graph.Node, 0, v.g.NodeCount())
	for n := range v.g.Nodes() {
		out = append(out, Node(n))
	}

	return nodesOf(out)
}

// From returns the nodes reachable over one edge from id.
func (v view[N, E]) From(id int64) graph.Nodes {
	var out []graph.Node
	for m := range v.g.Neighbors(Handle(id)) {
		out = append(out, Node(m))
	}

	return nodesOf(out)
}

// HasEdgeBetween reports an edge between x and y in either direction.
func (v view[N, E]) HasEdgeBetween(xid, yid int64) bool {
	x, y := Handle(xid), Handle(yid)
	if ok, _ := v.g.ContainsEdgeBetween(x, y); ok {
		return true
	}
	ok, _ := v.g.ContainsEdgeBetween(y, x)

	return ok
}

// Edge returns the edge from u to v, or nil if there is none.
func (v view[N, E]) Edge(uid, vid int64) graph.Edge {
	u, w := Handle(uid), Handle(vid)
	es, err := v.g.EdgesBetween(u, w)
	if err != nil || len(es) == 0 {
		return nil
	}

	return Edge{F: Node(u), T: Node(w), Idx: es[0]}
}

// DirectedView adapts a directed core.Graph to graph.Directed.
type DirectedView[N, E any] struct {
	view[N, E]
}

// NewDirected wraps g. ErrDirectionMismatch if g is undirected.
func NewDirected[N, E any](g core.Graph[N, E]) (*DirectedView[N, E], error) {
	v, err := newView(g, true)
	if err != nil {
		return nil, fmt.Errorf("NewDirected: %w", err)
	}

	return &DirectedView[N, E]{view: v}, nil
}

// HasEdgeFromTo reports whether an edge u→v exists.
func (d *DirectedView[N, E]) HasEdgeFromTo(uid, vid int64) bool {
	ok, _ := d.g.ContainsEdgeBetween(Handle(uid), Handle(vid))

	return ok
}

// To returns the nodes with an edge ending at id, each once.
func (d *DirectedView[N, E]) To(id int64) graph.Nodes {
	seen := make(map[core.NodeIdx]struct{})
	var out []graph.Node
	for src := range d.g.IncomingEdgesOf(Handle(id)) {
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, Node(src))
	}

	return nodesOf(out)
}

// UndirectedView adapts an undirected core.Graph to graph.Undirected.
type UndirectedView[N, E any] struct {
	view[N, E]
}

// NewUndirected wraps g. ErrDirectionMismatch if g is directed.
func NewUndirected[N, E any](g core.Graph[N, E]) (*UndirectedView[N, E], error) {
	v, err := newView(g, false)
	if err != nil {
		return nil, fmt.Errorf("NewUndirected: %w", err)
	}

	return &UndirectedView[N, E]{view: v}, nil
}

// EdgeBetween returns the edge joining x and y oriented x→y, or nil.
func (u *UndirectedView[N, E]) EdgeBetween(xid, yid int64) graph.Edge {
	return u.Edge(xid, yid)
}

// Must returns v and panics if err is non-nil. It suits view construction
// over graphs whose orientation is known statically.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}

func nodesOf(ns []graph.Node) graph.Nodes {
	if len(ns) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(ns)
}

var (
	_ graph.Directed   = (*DirectedView[struct{}, struct{}])(nil)
	_ graph.Undirected = (*UndirectedView[struct{}, struct{}])(nil)
	_ graph.Node       = Node(0)
	_ graph.Edge       = Edge{}
)

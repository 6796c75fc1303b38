// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public contract (Graph, SimpleGraph) and the four concrete graph
//       types with their constructors.
// Policy:
//   - No algorithms here; shared method bodies live in methods*.go on base.
//   - Concrete types are compositions of adjacency policy × storage encoding
//     × simple/multi rules.

package core

import (
	"iter"

	"github.com/katalvlaran/slotgraph/arena"
)

// Graph is the capability set shared by every graph variant.
//
// Precondition for every iterator returned here: the graph must not be
// mutated while the sequence is being consumed. Violations are memory-safe
// but the yielded sequence is unspecified.
type Graph[N, E any] interface {
	// IsDirected reports whether edges have an orientation.
	IsDirected() bool
	// IsMultigraph reports whether parallel edges and self-loops are allowed.
	IsMultigraph() bool
	// Encoding reports the adjacency storage encoding.
	Encoding() StorageEncoding

	NodeCount() int
	EdgeCount() int
	IsEmpty() bool

	// AddNode stores v and returns its handle. Always succeeds.
	AddNode(v N) NodeIdx
	// TryAddEdge links src and dst. See the variant docs for the rules.
	TryAddEdge(src, dst NodeIdx, v E) (EdgeIdx, error)
	// AddEdge is TryAddEdge for callers that already established the
	// preconditions; it panics with the *GraphError on failure.
	AddEdge(src, dst NodeIdx, v E) EdgeIdx

	HasNode(n NodeIdx) bool
	HasEdge(e EdgeIdx) bool
	// ContainsEdgeBetween reports whether an edge src→dst exists (either
	// orientation for undirected graphs). ErrNodeNotFound if either endpoint
	// is absent.
	ContainsEdgeBetween(src, dst NodeIdx) (bool, error)
	// EdgesBetween returns every edge src→dst. ErrNodeNotFound only if src
	// is absent.
	EdgesBetween(src, dst NodeIdx) ([]EdgeIdx, error)

	// RemoveNode removes n and, first, every edge incident to it.
	RemoveNode(n NodeIdx) (N, bool)
	// RemoveEdge removes e and its adjacency associations.
	RemoveEdge(e EdgeIdx) (E, bool)
	// ClearEdges removes every edge; nodes survive.
	ClearEdges()
	// Clear removes every node and edge. Handles issued later never equal
	// handles issued before.
	Clear()

	GetNode(n NodeIdx) (N, bool)
	GetNodeMut(n NodeIdx) (*N, bool)
	GetEdge(e EdgeIdx) (EdgeRef[E], bool)
	GetEdgeMut(e EdgeIdx) (EdgeMut[E], bool)
	// Endpoints returns the stored (src, dst) of e.
	Endpoints(e EdgeIdx) (NodeIdx, NodeIdx, bool)

	// Degree counts edge endpoints at n; self-loops count twice.
	Degree(n NodeIdx) (int, error)
	// InDegree counts edges ending at n (Degree for undirected graphs).
	InDegree(n NodeIdx) (int, error)
	// OutDegree counts edges leaving n (Degree for undirected graphs).
	OutDegree(n NodeIdx) (int, error)

	// Nodes yields every live node in arena order.
	Nodes() iter.Seq2[NodeIdx, N]
	NodesMut() iter.Seq2[NodeIdx, *N]
	// Edges yields every live edge in arena order.
	Edges() iter.Seq[EdgeRef[E]]
	EdgesMut() iter.Seq[EdgeMut[E]]
	// NodeIndices and EdgeIndices are snapshots, safe to walk while mutating.
	NodeIndices() []NodeIdx
	EdgeIndices() []EdgeIdx

	// EdgesOf yields (neighbour, edge) for the out-edges of n (directed) or
	// every incident edge of n (undirected). Empty for absent nodes.
	EdgesOf(n NodeIdx) iter.Seq2[NodeIdx, EdgeIdx]
	// IncomingEdgesOf yields (source, edge) for edges ending at n.
	IncomingEdgesOf(n NodeIdx) iter.Seq2[NodeIdx, EdgeIdx]
	// Neighbors yields each node reachable over one edge from n, once.
	Neighbors(n NodeIdx) iter.Seq[NodeIdx]
}

// SimpleGraph refines Graph for variants with at most one edge per pair.
type SimpleGraph[N, E any] interface {
	Graph[N, E]
	// EdgeBetween returns the edge from→to. ErrNodeNotFound only if from is
	// absent; (NullEdge, false, nil) when there is no such edge.
	EdgeBetween(from, to NodeIdx) (EdgeIdx, bool, error)
	// MustEdgeBetween is the precondition-verified form: the caller asserts
	// both nodes and the edge exist. It panics otherwise.
	MustEdgeBetween(from, to NodeIdx) EdgeIdx
}

// SimpleListGraph is a simple graph with list-encoded adjacency.
// It rejects self-loops (ErrLoop) and parallel edges (ErrDuplicateEdge).
//
// The four graph types have no usable zero value: obtain them from their
// NewXxx constructor or from New. Methods on a zero value panic.
type SimpleListGraph[N, E any] struct{ simple[N, E] }

// SimpleMapGraph is a simple graph with map-encoded adjacency.
// It rejects self-loops (ErrLoop) and parallel edges (ErrDuplicateEdge).
type SimpleMapGraph[N, E any] struct{ simple[N, E] }

// MultiListGraph is a multigraph with list-encoded adjacency.
// Parallel edges and self-loops are allowed.
type MultiListGraph[N, E any] struct{ base[N, E] }

// MultiMapGraph is a multigraph with map-encoded adjacency.
// Parallel edges and self-loops are allowed.
type MultiMapGraph[N, E any] struct{ base[N, E] }

// NewSimpleListGraph returns an empty SimpleListGraph.
// Undirected unless WithDirected(true) is given.
func NewSimpleListGraph[N, E any](opts ...GraphOption) *SimpleListGraph[N, E] {
	return &SimpleListGraph[N, E]{simple[N, E]{newBase[N, E](List, false, opts)}}
}

// NewSimpleMapGraph returns an empty SimpleMapGraph.
// Undirected unless WithDirected(true) is given.
func NewSimpleMapGraph[N, E any](opts ...GraphOption) *SimpleMapGraph[N, E] {
	return &SimpleMapGraph[N, E]{simple[N, E]{newBase[N, E](Map, false, opts)}}
}

// NewMultiListGraph returns an empty MultiListGraph.
// Undirected unless WithDirected(true) is given.
func NewMultiListGraph[N, E any](opts ...GraphOption) *MultiListGraph[N, E] {
	return &MultiListGraph[N, E]{newBase[N, E](List, true, opts)}
}

// NewMultiMapGraph returns an empty MultiMapGraph.
// Undirected unless WithDirected(true) is given.
func NewMultiMapGraph[N, E any](opts ...GraphOption) *MultiMapGraph[N, E] {
	return &MultiMapGraph[N, E]{newBase[N, E](Map, true, opts)}
}

// New returns an empty graph of the variant selected by enc and multi.
// It is the runtime counterpart of the four typed constructors.
func New[N, E any](enc StorageEncoding, multi bool, opts ...GraphOption) Graph[N, E] {
	if enc == nil {
		enc = List
	}
	switch {
	case multi && enc == Map:
		return NewMultiMapGraph[N, E](opts...)
	case multi:
		return NewMultiListGraph[N, E](opts...)
	case enc == Map:
		return NewSimpleMapGraph[N, E](opts...)
	default:
		return NewSimpleListGraph[N, E](opts...)
	}
}

// base holds the arenas and adjacency of every variant. All shared method
// bodies are defined on *base.
type base[N, E any] struct {
	nodes    *arena.Arena[N]
	edges    *arena.Arena[edgeRecord[E]]
	adj      adjacencyPolicy
	enc      StorageEncoding
	multi    bool
	directed bool
}

func newBase[N, E any](enc StorageEncoding, multi bool, opts []GraphOption) base[N, E] {
	cfg := resolveConfig(opts)

	return base[N, E]{
		nodes:    arena.WithCapacity[N](cfg.nodeHint),
		edges:    arena.WithCapacity[edgeRecord[E]](cfg.edgeHint),
		adj:      newPolicy(cfg.directed, enc, multi, cfg.nodeHint),
		enc:      enc,
		multi:    multi,
		directed: cfg.directed,
	}
}

// simple adds the SimpleGraph refinement on top of base.
type simple[N, E any] struct{ base[N, E] }

// Compile-time contract checks.
var (
	_ SimpleGraph[int, int] = (*SimpleListGraph[int, int])(nil)
	_ SimpleGraph[int, int] = (*SimpleMapGraph[int, int])(nil)
	_ Graph[int, int]       = (*MultiListGraph[int, int])(nil)
	_ Graph[int, int]       = (*MultiMapGraph[int, int])(nil)
)

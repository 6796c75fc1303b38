// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Error taxonomy, edge views, graph options.
//
// Errors:
//
//	ErrNodeNotFound   - an operation referenced an absent node.
//	ErrEdgeNotFound   - an operation referenced an absent edge.
//	ErrLoop           - self-loop on a variant that forbids loops.
//	ErrDuplicateEdge  - parallel edge on a variant that forbids them.
//
// Every fallible operation returns a *GraphError whose Unwrap() is one of the
// sentinels above, so callers branch with errors.Is and recover the offending
// handles with errors.As.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that never
	// existed or was removed.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoop indicates a self-loop on a graph variant that disallows them.
	ErrLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between an already connected
	// pair on a graph variant that disallows parallel edges.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)

// ErrorKind enumerates the closed set of graph failures.
type ErrorKind uint8

const (
	KindNodeNotFound ErrorKind = iota + 1
	KindEdgeNotFound
	KindLoop
	KindDuplicateEdge
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNodeNotFound:
		return "NodeNotFound"
	case KindEdgeNotFound:
		return "EdgeNotFound"
	case KindLoop:
		return "Loop"
	case KindDuplicateEdge:
		return "DuplicateEdge"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// sentinel maps k to its package-level error value.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindNodeNotFound:
		return ErrNodeNotFound
	case KindEdgeNotFound:
		return ErrEdgeNotFound
	case KindLoop:
		return ErrLoop
	case KindDuplicateEdge:
		return ErrDuplicateEdge
	default:
		return nil
	}
}

// GraphError carries the kind of failure and the handles involved.
//
//	KindNodeNotFound:  Node
//	KindEdgeNotFound:  Edge
//	KindLoop:          Node
//	KindDuplicateEdge: Src, Dst
type GraphError struct {
	Kind ErrorKind
	Node NodeIdx
	Edge EdgeIdx
	Src  NodeIdx
	Dst  NodeIdx
}

// Error implements error.
func (e *GraphError) Error() string {
	switch e.Kind {
	case KindNodeNotFound:
		return fmt.Sprintf("%v: %s", ErrNodeNotFound, e.Node)
	case KindEdgeNotFound:
		return fmt.Sprintf("%v: %s", ErrEdgeNotFound, e.Edge)
	case KindLoop:
		return fmt.Sprintf("%v: %s", ErrLoop, e.Node)
	case KindDuplicateEdge:
		return fmt.Sprintf("%v: %s -> %s", ErrDuplicateEdge, e.Src, e.Dst)
	default:
		return "core: " + e.Kind.String()
	}
}

// Unwrap returns the sentinel matching e.Kind.
func (e *GraphError) Unwrap() error { return e.Kind.sentinel() }

func nodeNotFound(n NodeIdx) error {
	return &GraphError{Kind: KindNodeNotFound, Node: n}
}

func edgeNotFound(e EdgeIdx) error {
	return &GraphError{Kind: KindEdgeNotFound, Edge: e}
}

func loopError(n NodeIdx) error {
	return &GraphError{Kind: KindLoop, Node: n}
}

func duplicateEdge(src, dst NodeIdx) error {
	return &GraphError{Kind: KindDuplicateEdge, Src: src, Dst: dst}
}

// EdgeRef is a read-only view of an edge: its handle, resolved endpoints and
// a copy of its payload. For undirected graphs Src/Dst keep insertion order.
type EdgeRef[E any] struct {
	Idx   EdgeIdx
	Src   NodeIdx
	Dst   NodeIdx
	Value E
}

// EdgeMut is a mutable view of an edge: endpoints plus a pointer into the
// edge arena. The pointer is valid until the edge is removed or the graph
// gains new edges.
type EdgeMut[E any] struct {
	Idx   EdgeIdx
	Src   NodeIdx
	Dst   NodeIdx
	Value *E
}

// edgeRecord is what the edge arena stores.
type edgeRecord[E any] struct {
	src   NodeIdx
	dst   NodeIdx
	value E
}

// graphConfig is resolved from GraphOption values at construction time and
// is immutable afterwards.
type graphConfig struct {
	directed bool
	nodeHint int
	edgeHint int
}

// GraphOption configures a graph before creation.
type GraphOption func(cfg *graphConfig)

// WithDirected selects directed (true) or undirected (false) edges.
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithCapacity pre-sizes node and edge storage. Negative hints are ignored.
// The hint has no behavioural effect.
func WithCapacity(nodes, edges int) GraphOption {
	return func(cfg *graphConfig) {
		if nodes > 0 {
			cfg.nodeHint = nodes
		}
		if edges > 0 {
			cfg.edgeHint = edges
		}
	}
}

func resolveConfig(opts []GraphOption) graphConfig {
	var cfg graphConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

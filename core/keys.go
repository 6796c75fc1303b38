// SPDX-License-Identifier: MIT
//
// File: keys.go
// Role: Opaque, generation-stamped handles for nodes and edges.

package core

import "github.com/katalvlaran/slotgraph/arena"

// NodeIdx is an opaque handle to a node. It is only meaningful against the
// graph that issued it. Two handles are equal iff their raw values are equal.
type NodeIdx arena.Key

// EdgeIdx is an opaque handle to an edge. It is only meaningful against the
// graph that issued it.
type EdgeIdx arena.Key

// NullEdge is the "no edge" result. It never addresses a live edge and every
// lookup treats it as absent.
const NullEdge = EdgeIdx(arena.Null)

// NullNode is the zero NodeIdx. It never addresses a live node.
const NullNode = NodeIdx(arena.Null)

func (n NodeIdx) key() arena.Key { return arena.Key(n) }
func (e EdgeIdx) key() arena.Key { return arena.Key(e) }

// IsNull reports whether n is the zero handle.
func (n NodeIdx) IsNull() bool { return n == NullNode }

// IsNull reports whether e is NullEdge.
func (e EdgeIdx) IsNull() bool { return e == NullEdge }

// Raw returns the encoded handle value. Adapters use it as a stable numeric ID.
func (n NodeIdx) Raw() uint64 { return uint64(n) }

// Raw returns the encoded handle value.
func (e EdgeIdx) Raw() uint64 { return uint64(e) }

// NodeFromRaw rebuilds a handle from Raw. The result is only meaningful if the
// value came from Raw on the same graph.
func NodeFromRaw(raw uint64) NodeIdx { return NodeIdx(raw) }

// String renders n as "n<slot>v<generation>".
func (n NodeIdx) String() string { return "n" + n.key().String() }

// String renders e as "e<slot>v<generation>".
func (e EdgeIdx) String() string { return "e" + e.key().String() }

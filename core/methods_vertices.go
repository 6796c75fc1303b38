// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle (AddNode, RemoveNode) and node access.
// Determinism:
//   - Nodes() / NodesMut() follow arena slot order.
//   - RemoveNode drops incident edges in adjacency order before the node.

package core

import (
	"iter"

	"github.com/katalvlaran/slotgraph/arena"
)

// AddNode stores v and returns its handle. O(1) amortized.
func (g *base[N, E]) AddNode(v N) NodeIdx {
	n := NodeIdx(g.nodes.Insert(v))
	g.adj.addNode(n)

	return n
}

// HasNode reports whether n addresses a live node.
func (g *base[N, E]) HasNode(n NodeIdx) bool { return g.nodes.Contains(n.key()) }

// RemoveNode removes n together with every edge incident to it and returns
// the node payload. (zero, false) if n is absent.
//
// Complexity: O(deg(n)) edge removals plus one record scan per neighbour
// for the list encoding.
func (g *base[N, E]) RemoveNode(n NodeIdx) (N, bool) {
	if !g.HasNode(n) {
		var zero N
		return zero, false
	}

	// Snapshot first: unlinking mutates the records being walked.
	incident := g.adj.incident(make([]EdgeIdx, 0, g.adj.degree(n)), n)
	for _, e := range incident {
		// A self-loop appears twice; the second visit finds it gone.
		g.RemoveEdge(e)
	}
	g.adj.dropNode(n)

	return g.nodes.Remove(n.key())
}

// GetNode returns a copy of the payload of n.
func (g *base[N, E]) GetNode(n NodeIdx) (N, bool) { return g.nodes.Get(n.key()) }

// GetNodeMut returns a pointer to the payload of n. The pointer is valid
// until n is removed or the graph gains new nodes.
func (g *base[N, E]) GetNodeMut(n NodeIdx) (*N, bool) { return g.nodes.GetPtr(n.key()) }

// Nodes yields (handle, payload) for every live node.
func (g *base[N, E]) Nodes() iter.Seq2[NodeIdx, N] {
	return func(yield func(NodeIdx, N) bool) {
		for k, v := range g.nodes.All() {
			if !yield(NodeIdx(k), *v) {
				return
			}
		}
	}
}

// NodesMut yields (handle, payload pointer) for every live node.
func (g *base[N, E]) NodesMut() iter.Seq2[NodeIdx, *N] {
	return func(yield func(NodeIdx, *N) bool) {
		for k, v := range g.nodes.All() {
			if !yield(NodeIdx(k), v) {
				return
			}
		}
	}
}

// NodeIndices returns a snapshot of every live node handle in slot order.
// Unlike Nodes, the snapshot may be consumed while the graph is mutated.
func (g *base[N, E]) NodeIndices() []NodeIdx {
	return keysAs[NodeIdx](g.nodes.Keys())
}

func keysAs[H ~uint64](keys []arena.Key) []H {
	out := make([]H, len(keys))
	for i, k := range keys {
		out[i] = H(k)
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Shape queries and whole-graph resets shared by every variant.
// Concurrency:
//   - None. A graph is a plain value; callers serialize access.

package core

// IsDirected reports whether edges have an orientation.
func (g *base[N, E]) IsDirected() bool { return g.directed }

// IsMultigraph reports whether parallel edges and self-loops are allowed.
func (g *base[N, E]) IsMultigraph() bool { return g.multi }

// Encoding reports the adjacency storage encoding (List or Map).
func (g *base[N, E]) Encoding() StorageEncoding { return g.enc }

// NodeCount returns the number of live nodes. O(1).
func (g *base[N, E]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of live edges. O(1).
func (g *base[N, E]) EdgeCount() int { return g.edges.Len() }

// IsEmpty reports whether the graph has no nodes.
func (g *base[N, E]) IsEmpty() bool { return g.nodes.Len() == 0 }

// ClearEdges removes every edge. Nodes and their payloads survive; every
// previously issued EdgeIdx becomes stale.
func (g *base[N, E]) ClearEdges() {
	g.adj.reset()
	g.edges.Clear()
}

// Clear removes every node and edge. Handles issued afterwards never equal
// handles issued before, so stale handles cannot alias new elements.
func (g *base[N, E]) Clear() {
	g.adj.clear()
	g.edges.Clear()
	g.nodes.Clear()
}

// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries (EdgesOf, IncomingEdgesOf, Neighbors,
//       EdgesBetween, EdgeBetween) and degree counters.
// Neighbourhood policy:
//   - Directed: EdgesOf walks out-edges, IncomingEdgesOf walks in-edges.
//   - Undirected: both walk the single incident record; a self-loop is
//     yielded twice.
// Determinism:
//   - List encoding: insertion order.
//   - Map encoding: newest neighbour first; see adjacency_map.go.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// Degree counts edge endpoints at n (in + out for directed graphs).
// A self-loop counts twice.
func (g *base[N, E]) Degree(n NodeIdx) (int, error) {
	if !g.HasNode(n) {
		return 0, nodeNotFound(n)
	}

	return g.adj.degree(n), nil
}

// OutDegree counts edges leaving n. Equals Degree for undirected graphs.
func (g *base[N, E]) OutDegree(n NodeIdx) (int, error) {
	if !g.HasNode(n) {
		return 0, nodeNotFound(n)
	}
	if !g.directed {
		return g.adj.degree(n), nil
	}

	return g.adj.outgoing(n).size(), nil
}

// InDegree counts edges ending at n. Equals Degree for undirected graphs.
func (g *base[N, E]) InDegree(n NodeIdx) (int, error) {
	if !g.HasNode(n) {
		return 0, nodeNotFound(n)
	}
	if !g.directed {
		return g.adj.degree(n), nil
	}

	return g.adj.incoming(n).size(), nil
}

// ContainsEdgeBetween reports whether an edge src→dst exists. For
// undirected graphs the answer is symmetric. ErrNodeNotFound if either
// endpoint is absent.
func (g *base[N, E]) ContainsEdgeBetween(src, dst NodeIdx) (bool, error) {
	if !g.HasNode(src) {
		return false, nodeNotFound(src)
	}
	if !g.HasNode(dst) {
		return false, nodeNotFound(dst)
	}

	return g.adj.outgoing(src).has(dst), nil
}

// EdgesBetween returns every edge src→dst (for undirected graphs, every
// edge joining the pair), each handle once. ErrNodeNotFound only if src is
// absent; an absent dst yields an empty result.
func (g *base[N, E]) EdgesBetween(src, dst NodeIdx) ([]EdgeIdx, error) {
	if !g.HasNode(src) {
		return nil, nodeNotFound(src)
	}
	es := g.adj.outgoing(src).find(nil, dst)
	if !g.directed && src == dst {
		// An undirected self-loop sits twice in its node's record.
		es = uniqueEdges(es)
	}

	return es, nil
}

// uniqueEdges drops repeated handles in place, keeping first occurrences.
func uniqueEdges(es []EdgeIdx) []EdgeIdx {
	seen := make(map[EdgeIdx]struct{}, len(es))

	return slices.DeleteFunc(es, func(e EdgeIdx) bool {
		if _, dup := seen[e]; dup {
			return true
		}
		seen[e] = struct{}{}

		return false
	})
}

// EdgesOf yields (neighbour, edge) for the out-edges of n, or for every
// incident edge when the graph is undirected. Empty if n is absent.
func (g *base[N, E]) EdgesOf(n NodeIdx) iter.Seq2[NodeIdx, EdgeIdx] {
	return func(yield func(NodeIdx, EdgeIdx) bool) {
		if r := g.adj.outgoing(n); r != nil {
			r.each(yield)
		}
	}
}

// IncomingEdgesOf yields (source, edge) for edges ending at n. For
// undirected graphs it matches EdgesOf. Empty if n is absent.
func (g *base[N, E]) IncomingEdgesOf(n NodeIdx) iter.Seq2[NodeIdx, EdgeIdx] {
	return func(yield func(NodeIdx, EdgeIdx) bool) {
		if r := g.adj.incoming(n); r != nil {
			r.each(yield)
		}
	}
}

// Neighbors yields each node reachable over one edge from n exactly once,
// however many parallel edges lead there.
func (g *base[N, E]) Neighbors(n NodeIdx) iter.Seq[NodeIdx] {
	return func(yield func(NodeIdx) bool) {
		if r := g.adj.outgoing(n); r != nil {
			r.neighbors(yield)
		}
	}
}

// EdgeBetween returns the edge from→to. ErrNodeNotFound only if from is
// absent; an absent to or a missing edge yields (NullEdge, false, nil).
func (g *simple[N, E]) EdgeBetween(from, to NodeIdx) (EdgeIdx, bool, error) {
	if !g.HasNode(from) {
		return NullEdge, false, nodeNotFound(from)
	}
	e, ok := g.adj.outgoing(from).first(to)

	return e, ok, nil
}

// MustEdgeBetween returns the edge from→to. The caller asserts that both
// nodes and the edge exist; it panics otherwise.
func (g *simple[N, E]) MustEdgeBetween(from, to NodeIdx) EdgeIdx {
	e, ok, err := g.EdgeBetween(from, to)
	switch {
	case err != nil:
		panic(err)
	case !ok:
		panic(fmt.Sprintf("core: MustEdgeBetween: no edge %s -> %s", from, to))
	}

	return e
}

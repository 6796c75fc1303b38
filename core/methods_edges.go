// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (TryAddEdge, AddEdge, RemoveEdge) and edge access.
// Validation order in TryAddEdge:
//   1. both endpoints live          -> ErrNodeNotFound (src checked first)
//   2. simple graph and src == dst  -> ErrLoop
//   3. simple graph and pair linked -> ErrDuplicateEdge
// Determinism:
//   - Edges() / EdgesMut() follow arena slot order.

package core

import "iter"

// TryAddEdge creates an edge src→dst carrying v.
//
// Simple variants reject self-loops (ErrLoop) and a second edge between an
// already connected pair (ErrDuplicateEdge; either orientation counts for
// undirected graphs). Multigraphs accept both. The graph is unchanged on
// error.
func (g *base[N, E]) TryAddEdge(src, dst NodeIdx, v E) (EdgeIdx, error) {
	if !g.HasNode(src) {
		return NullEdge, nodeNotFound(src)
	}
	if !g.HasNode(dst) {
		return NullEdge, nodeNotFound(dst)
	}
	if !g.multi {
		if src == dst {
			return NullEdge, loopError(src)
		}
		if g.adj.linked(src, dst) {
			return NullEdge, duplicateEdge(src, dst)
		}
	}

	e := EdgeIdx(g.edges.Insert(edgeRecord[E]{src: src, dst: dst, value: v}))
	g.adj.link(src, dst, e)

	return e, nil
}

// AddEdge is TryAddEdge for callers that have already established its
// preconditions. It panics with the *GraphError on failure.
func (g *base[N, E]) AddEdge(src, dst NodeIdx, v E) EdgeIdx {
	e, err := g.TryAddEdge(src, dst, v)
	if err != nil {
		panic(err)
	}

	return e
}

// HasEdge reports whether e addresses a live edge.
func (g *base[N, E]) HasEdge(e EdgeIdx) bool { return g.edges.Contains(e.key()) }

// RemoveEdge removes e and its adjacency associations and returns the
// payload. (zero, false) if e is absent.
func (g *base[N, E]) RemoveEdge(e EdgeIdx) (E, bool) {
	rec, ok := g.edges.Remove(e.key())
	if !ok {
		var zero E
		return zero, false
	}
	g.adj.unlink(rec.src, rec.dst, e)

	return rec.value, true
}

// GetEdge returns a read-only view of e.
func (g *base[N, E]) GetEdge(e EdgeIdx) (EdgeRef[E], bool) {
	rec, ok := g.edges.GetPtr(e.key())
	if !ok {
		return EdgeRef[E]{}, false
	}

	return EdgeRef[E]{Idx: e, Src: rec.src, Dst: rec.dst, Value: rec.value}, true
}

// GetEdgeMut returns a view of e whose Value points into edge storage.
func (g *base[N, E]) GetEdgeMut(e EdgeIdx) (EdgeMut[E], bool) {
	rec, ok := g.edges.GetPtr(e.key())
	if !ok {
		return EdgeMut[E]{}, false
	}

	return EdgeMut[E]{Idx: e, Src: rec.src, Dst: rec.dst, Value: &rec.value}, true
}

// Endpoints returns the stored (src, dst) of e.
func (g *base[N, E]) Endpoints(e EdgeIdx) (NodeIdx, NodeIdx, bool) {
	rec, ok := g.edges.GetPtr(e.key())
	if !ok {
		return NullNode, NullNode, false
	}

	return rec.src, rec.dst, true
}

// Edges yields a read-only view of every live edge.
func (g *base[N, E]) Edges() iter.Seq[EdgeRef[E]] {
	return func(yield func(EdgeRef[E]) bool) {
		for k, rec := range g.edges.All() {
			ref := EdgeRef[E]{Idx: EdgeIdx(k), Src: rec.src, Dst: rec.dst, Value: rec.value}
			if !yield(ref) {
				return
			}
		}
	}
}

// EdgesMut yields a mutable view of every live edge.
func (g *base[N, E]) EdgesMut() iter.Seq[EdgeMut[E]] {
	return func(yield func(EdgeMut[E]) bool) {
		for k, rec := range g.edges.All() {
			m := EdgeMut[E]{Idx: EdgeIdx(k), Src: rec.src, Dst: rec.dst, Value: &rec.value}
			if !yield(m) {
				return
			}
		}
	}
}

// EdgeIndices returns a snapshot of every live edge handle in slot order.
func (g *base[N, E]) EdgeIndices() []EdgeIdx {
	return keysAs[EdgeIdx](g.edges.Keys())
}

// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Lazy, non-mutating views over a Graph (iterator adapters).
// Determinism:
//   - Every adapter preserves the order of its input sequence.
//   - Sources/Sinks follow arena slot order.
// Stale handles in an input sequence are skipped silently.

package core

import "iter"

// NodesByIdx maps a sequence of node handles to (handle, payload) pairs.
func NodesByIdx[N, E any](g Graph[N, E], idxs iter.Seq[NodeIdx]) iter.Seq2[NodeIdx, N] {
	return func(yield func(NodeIdx, N) bool) {
		for n := range idxs {
			v, ok := g.GetNode(n)
			if !ok {
				continue
			}
			if !yield(n, v) {
				return
			}
		}
	}
}

// EdgesByIdx maps a sequence of edge handles to read-only edge views.
func EdgesByIdx[N, E any](g Graph[N, E], idxs iter.Seq[EdgeIdx]) iter.Seq[EdgeRef[E]] {
	return func(yield func(EdgeRef[E]) bool) {
		for e := range idxs {
			ref, ok := g.GetEdge(e)
			if !ok {
				continue
			}
			if !yield(ref) {
				return
			}
		}
	}
}

// NodesByIdxMut maps a sequence of node handles to (handle, *payload)
// pairs. Writes through the pointer update the graph in place.
func NodesByIdxMut[N, E any](g Graph[N, E], idxs iter.Seq[NodeIdx]) iter.Seq2[NodeIdx, *N] {
	return func(yield func(NodeIdx, *N) bool) {
		for n := range idxs {
			p, ok := g.GetNodeMut(n)
			if !ok {
				continue
			}
			if !yield(n, p) {
				return
			}
		}
	}
}

// EdgesByIdxMut maps a sequence of edge handles to mutable edge views.
func EdgesByIdxMut[N, E any](g Graph[N, E], idxs iter.Seq[EdgeIdx]) iter.Seq[EdgeMut[E]] {
	return func(yield func(EdgeMut[E]) bool) {
		for e := range idxs {
			m, ok := g.GetEdgeMut(e)
			if !ok {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Sources yields every node with in-degree zero. For undirected graphs
// these are the isolated nodes.
func Sources[N, E any](g Graph[N, E]) iter.Seq[NodeIdx] {
	return filterByDegree(g, g.InDegree)
}

// Sinks yields every node with out-degree zero. For undirected graphs
// these are the isolated nodes.
func Sinks[N, E any](g Graph[N, E]) iter.Seq[NodeIdx] {
	return filterByDegree(g, g.OutDegree)
}

func filterByDegree[N, E any](g Graph[N, E], degree func(NodeIdx) (int, error)) iter.Seq[NodeIdx] {
	return func(yield func(NodeIdx) bool) {
		for n := range g.Nodes() {
			if d, err := degree(n); err != nil || d != 0 {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// ZipInDegree pairs each handle of idxs with its in-degree.
func ZipInDegree[N, E any](g Graph[N, E], idxs iter.Seq[NodeIdx]) iter.Seq2[NodeIdx, int] {
	return zipDegree(idxs, g.InDegree)
}

// ZipOutDegree pairs each handle of idxs with its out-degree.
func ZipOutDegree[N, E any](g Graph[N, E], idxs iter.Seq[NodeIdx]) iter.Seq2[NodeIdx, int] {
	return zipDegree(idxs, g.OutDegree)
}

func zipDegree(idxs iter.Seq[NodeIdx], degree func(NodeIdx) (int, error)) iter.Seq2[NodeIdx, int] {
	return func(yield func(NodeIdx, int) bool) {
		for n := range idxs {
			d, err := degree(n)
			if err != nil {
				continue
			}
			if !yield(n, d) {
				return
			}
		}
	}
}

// Keys drops the values of a Seq2, e.g. to feed Nodes() into NodesByIdx or
// the Zip adapters.
func Keys[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

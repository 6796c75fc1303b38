// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: List-encoded adjacency records.
// Determinism:
//   - Simple records iterate in insertion order; removal keeps the order.
//   - Multi records iterate neighbours in first-link order; the handles of
//     one neighbour are swap-removed, so their order is not stable.

package core

import "slices"

// listEntry is one (neighbour, edge) pair.
type listEntry struct {
	nbr  NodeIdx
	edge EdgeIdx
}

// listRecord is the simple-graph list encoding.
type listRecord struct {
	entries []listEntry
}

func (r *listRecord) insert(nbr NodeIdx, e EdgeIdx) {
	r.entries = append(r.entries, listEntry{nbr: nbr, edge: e})
}

func (r *listRecord) remove(nbr NodeIdx, e EdgeIdx) bool {
	for i, ent := range r.entries {
		if ent.nbr != nbr || ent.edge != e {
			continue
		}
		copy(r.entries[i:], r.entries[i+1:])
		r.entries[len(r.entries)-1] = listEntry{}
		r.entries = r.entries[:len(r.entries)-1]

		return true
	}

	return false
}

func (r *listRecord) has(nbr NodeIdx) bool {
	_, ok := r.first(nbr)
	return ok
}

func (r *listRecord) first(nbr NodeIdx) (EdgeIdx, bool) {
	for _, ent := range r.entries {
		if ent.nbr == nbr {
			return ent.edge, true
		}
	}

	return NullEdge, false
}

func (r *listRecord) find(dst []EdgeIdx, nbr NodeIdx) []EdgeIdx {
	for _, ent := range r.entries {
		if ent.nbr == nbr {
			dst = append(dst, ent.edge)
		}
	}

	return dst
}

func (r *listRecord) each(yield func(NodeIdx, EdgeIdx) bool) bool {
	for i := 0; i < len(r.entries); i++ {
		ent := r.entries[i]
		if !yield(ent.nbr, ent.edge) {
			return false
		}
	}

	return true
}

func (r *listRecord) neighbors(yield func(NodeIdx) bool) bool {
	for i := 0; i < len(r.entries); i++ {
		if !yield(r.entries[i].nbr) {
			return false
		}
	}

	return true
}

func (r *listRecord) size() int { return len(r.entries) }

func (r *listRecord) reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
}

func (r *listRecord) clone() record {
	return &listRecord{entries: slices.Clone(r.entries)}
}

// multiListEntry is one neighbour with every edge linking to it.
type multiListEntry struct {
	nbr   NodeIdx
	edges []EdgeIdx
}

// multiListRecord is the multigraph list encoding.
type multiListRecord struct {
	entries []multiListEntry
	count   int
}

func (r *multiListRecord) lookup(nbr NodeIdx) int {
	for i := range r.entries {
		if r.entries[i].nbr == nbr {
			return i
		}
	}

	return -1
}

func (r *multiListRecord) insert(nbr NodeIdx, e EdgeIdx) {
	if i := r.lookup(nbr); i >= 0 {
		r.entries[i].edges = append(r.entries[i].edges, e)
	} else {
		r.entries = append(r.entries, multiListEntry{nbr: nbr, edges: []EdgeIdx{e}})
	}
	r.count++
}

func (r *multiListRecord) remove(nbr NodeIdx, e EdgeIdx) bool {
	i := r.lookup(nbr)
	if i < 0 {
		return false
	}
	edges, ok := removeEdgeByValue(r.entries[i].edges, e)
	if !ok {
		return false
	}
	r.count--
	if len(edges) > 0 {
		r.entries[i].edges = edges
		return true
	}
	// Last edge to this neighbour: drop the whole entry.
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = multiListEntry{}
	r.entries = r.entries[:len(r.entries)-1]

	return true
}

func (r *multiListRecord) has(nbr NodeIdx) bool { return r.lookup(nbr) >= 0 }

func (r *multiListRecord) first(nbr NodeIdx) (EdgeIdx, bool) {
	i := r.lookup(nbr)
	if i < 0 {
		return NullEdge, false
	}

	return r.entries[i].edges[0], true
}

func (r *multiListRecord) find(dst []EdgeIdx, nbr NodeIdx) []EdgeIdx {
	if i := r.lookup(nbr); i >= 0 {
		dst = append(dst, r.entries[i].edges...)
	}

	return dst
}

func (r *multiListRecord) each(yield func(NodeIdx, EdgeIdx) bool) bool {
	for i := 0; i < len(r.entries); i++ {
		ent := r.entries[i]
		for _, e := range ent.edges {
			if !yield(ent.nbr, e) {
				return false
			}
		}
	}

	return true
}

func (r *multiListRecord) neighbors(yield func(NodeIdx) bool) bool {
	for i := 0; i < len(r.entries); i++ {
		if !yield(r.entries[i].nbr) {
			return false
		}
	}

	return true
}

func (r *multiListRecord) size() int { return r.count }

func (r *multiListRecord) reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
	r.count = 0
}

func (r *multiListRecord) clone() record {
	return &multiListRecord{entries: cloneMultiEntries(r.entries), count: r.count}
}

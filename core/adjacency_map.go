// SPDX-License-Identifier: MIT
//
// File: adjacency_map.go
// Role: Map-encoded adjacency records.
//
// Each record is a hash index (neighbour -> position) over a dense entry
// slice. The slice gives deterministic iteration without sorting; removal
// swaps the last entry into the hole and patches its index.
//
// Determinism:
//   - Entries are walked newest first (from the back of the dense slice).
//   - A removal moves the newest entry into the freed position, so the order
//     after removals is deterministic but not insertion order.

package core

import (
	"maps"
	"slices"
)

// mapRecord is the simple-graph map encoding.
type mapRecord struct {
	index   map[NodeIdx]int
	entries []listEntry
}

func (r *mapRecord) insert(nbr NodeIdx, e EdgeIdx) {
	if i, ok := r.index[nbr]; ok {
		r.entries[i].edge = e
		return
	}
	r.index[nbr] = len(r.entries)
	r.entries = append(r.entries, listEntry{nbr: nbr, edge: e})
}

func (r *mapRecord) remove(nbr NodeIdx, e EdgeIdx) bool {
	i, ok := r.index[nbr]
	if !ok || r.entries[i].edge != e {
		return false
	}
	last := len(r.entries) - 1
	if i != last {
		moved := r.entries[last]
		r.entries[i] = moved
		r.index[moved.nbr] = i
	}
	r.entries[last] = listEntry{}
	r.entries = r.entries[:last]
	delete(r.index, nbr)

	return true
}

func (r *mapRecord) has(nbr NodeIdx) bool {
	_, ok := r.index[nbr]
	return ok
}

func (r *mapRecord) first(nbr NodeIdx) (EdgeIdx, bool) {
	i, ok := r.index[nbr]
	if !ok {
		return NullEdge, false
	}

	return r.entries[i].edge, true
}

func (r *mapRecord) find(dst []EdgeIdx, nbr NodeIdx) []EdgeIdx {
	if e, ok := r.first(nbr); ok {
		dst = append(dst, e)
	}

	return dst
}

func (r *mapRecord) each(yield func(NodeIdx, EdgeIdx) bool) bool {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if i >= len(r.entries) {
			continue // shrunk by the caller mid-walk
		}
		ent := r.entries[i]
		if !yield(ent.nbr, ent.edge) {
			return false
		}
	}

	return true
}

func (r *mapRecord) neighbors(yield func(NodeIdx) bool) bool {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if i >= len(r.entries) {
			continue
		}
		if !yield(r.entries[i].nbr) {
			return false
		}
	}

	return true
}

func (r *mapRecord) size() int { return len(r.entries) }

func (r *mapRecord) reset() {
	clear(r.index)
	clear(r.entries)
	r.entries = r.entries[:0]
}

func (r *mapRecord) clone() record {
	return &mapRecord{index: maps.Clone(r.index), entries: slices.Clone(r.entries)}
}

// multiMapRecord is the multigraph map encoding: neighbour -> edge sequence.
type multiMapRecord struct {
	index   map[NodeIdx]int
	entries []multiListEntry
	count   int
}

func (r *multiMapRecord) insert(nbr NodeIdx, e EdgeIdx) {
	if i, ok := r.index[nbr]; ok {
		r.entries[i].edges = append(r.entries[i].edges, e)
	} else {
		r.index[nbr] = len(r.entries)
		r.entries = append(r.entries, multiListEntry{nbr: nbr, edges: []EdgeIdx{e}})
	}
	r.count++
}

func (r *multiMapRecord) remove(nbr NodeIdx, e EdgeIdx) bool {
	i, ok := r.index[nbr]
	if !ok {
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
	last := len(r.entries) - 1
	if i != last {
		moved := r.entries[last]
		r.entries[i] = moved
		r.index[moved.nbr] = i
	}
	r.entries[last] = multiListEntry{}
	r.entries = r.entries[:last]
	delete(r.index, nbr)

	return true
}

func (r *multiMapRecord) has(nbr NodeIdx) bool {
	_, ok := r.index[nbr]
	return ok
}

func (r *multiMapRecord) first(nbr NodeIdx) (EdgeIdx, bool) {
	i, ok := r.index[nbr]
	if !ok {
		return NullEdge, false
	}

	return r.entries[i].edges[0], true
}

func (r *multiMapRecord) find(dst []EdgeIdx, nbr NodeIdx) []EdgeIdx {
	if i, ok := r.index[nbr]; ok {
		dst = append(dst, r.entries[i].edges...)
	}

	return dst
}

func (r *multiMapRecord) each(yield func(NodeIdx, EdgeIdx) bool) bool {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if i >= len(r.entries) {
			continue
		}
		ent := r.entries[i]
		for _, e := range ent.edges {
			if !yield(ent.nbr, e) {
				return false
			}
		}
	}

	return true
}

func (r *multiMapRecord) neighbors(yield func(NodeIdx) bool) bool {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if i >= len(r.entries) {
			continue
		}
		if !yield(r.entries[i].nbr) {
			return false
		}
	}

	return true
}

func (r *multiMapRecord) size() int { return r.count }

func (r *multiMapRecord) reset() {
	clear(r.index)
	clear(r.entries)
	r.entries = r.entries[:0]
	r.count = 0
}

func (r *multiMapRecord) clone() record {
	return &multiMapRecord{
		index:   maps.Clone(r.index),
		entries: cloneMultiEntries(r.entries),
		count:   r.count,
	}
}

// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Per-node adjacency record contract and the StorageEncoding selector.
//
// A record maps neighbour -> edge handle(s) for one node and one direction.
// Simple records hold at most one edge per neighbour; multi records hold a
// sequence and remove a specific handle by value.

package core

import "slices"

// record is one node's adjacency index in one direction.
type record interface {
	// insert associates e with nbr.
	insert(nbr NodeIdx, e EdgeIdx)
	// remove drops the (nbr, e) association; false if it was not present.
	remove(nbr NodeIdx, e EdgeIdx) bool
	// has reports whether any edge is associated with nbr.
	has(nbr NodeIdx) bool
	// first returns one edge associated with nbr.
	first(nbr NodeIdx) (EdgeIdx, bool)
	// find appends every edge associated with nbr to dst.
	find(dst []EdgeIdx, nbr NodeIdx) []EdgeIdx
	// each yields every (neighbour, edge) association; a neighbour linked by
	// k edges is yielded k times. Returns false if yield stopped the walk.
	each(yield func(NodeIdx, EdgeIdx) bool) bool
	// neighbors yields each distinct neighbour once.
	neighbors(yield func(NodeIdx) bool) bool
	// size returns the number of associations.
	size() int
	// reset drops every association, keeping allocated storage.
	reset()
	// clone returns an independent deep copy.
	clone() record
}

// StorageEncoding selects how adjacency records are laid out. The set is
// closed: List and Map.
type StorageEncoding interface {
	// Name returns "list" or "map".
	Name() string
	newRecord(multi bool) record
}

var (
	// List stores each record as an ordered sequence of (neighbour, edge)
	// pairs. Lookup is a linear scan; iteration follows insertion order.
	List StorageEncoding = listEncoding{}

	// Map stores each record as a hash index over a dense entry slice.
	// Lookup, insert and remove are O(1) average.
	Map StorageEncoding = mapEncoding{}
)

type listEncoding struct{}

func (listEncoding) Name() string { return "list" }

func (listEncoding) newRecord(multi bool) record {
	if multi {
		return &multiListRecord{}
	}

	return &listRecord{}
}

type mapEncoding struct{}

func (mapEncoding) Name() string { return "map" }

func (mapEncoding) newRecord(multi bool) record {
	if multi {
		return &multiMapRecord{index: make(map[NodeIdx]int)}
	}

	return &mapRecord{index: make(map[NodeIdx]int)}
}

func cloneMultiEntries(src []multiListEntry) []multiListEntry {
	out := make([]multiListEntry, len(src))
	for i, ent := range src {
		out[i] = multiListEntry{nbr: ent.nbr, edges: slices.Clone(ent.edges)}
	}

	return out
}

// removeEdgeByValue swap-removes the first occurrence of e from list.
// Order of the remaining handles is not preserved.
func removeEdgeByValue(list []EdgeIdx, e EdgeIdx) ([]EdgeIdx, bool) {
	for i, cur := range list {
		if cur != e {
			continue
		}
		last := len(list) - 1
		list[i] = list[last]
		list[last] = NullEdge

		return list[:last], true
	}

	return list, false
}

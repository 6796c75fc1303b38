// Package core provides generic in-memory graphs keyed by generational
// handles, with a uniform API over four storage variants.
//
// A graph G = (V,E) stores node payloads of type N and edge payloads of type E
// in two arenas (see package arena). Callers address elements through opaque
// NodeIdx / EdgeIdx handles; a handle whose element was removed is stale and
// every lookup treats it as absent, even after its slot is reused.
//
// Variants
//
//	                 list encoding      map encoding
//	simple graph     SimpleListGraph    SimpleMapGraph
//	multigraph       MultiListGraph     MultiMapGraph
//
//   - Simple graphs reject self-loops (ErrLoop) and a second edge between an
//     already linked pair (ErrDuplicateEdge). They also implement SimpleGraph
//     (EdgeBetween, MustEdgeBetween).
//   - Multigraphs accept parallel edges and self-loops.
//   - Every variant is directed or undirected, chosen once with
//     WithDirected. Graphs are undirected by default.
//
// Adjacency
//
//	Directed graphs keep an out record and an in record per node; undirected
//	graphs keep one record per node, updated on both endpoints. A record is
//	either an ordered list of (neighbour, edge) pairs (List) or a hash index
//	over a dense entry slice (Map). Removing a node therefore costs O(degree)
//	edge removals in every variant.
//
// Degree
//
//	Degree counts edge endpoints: a self-loop contributes 2. For directed
//	graphs Degree = InDegree + OutDegree.
//
// Iteration
//
//	Nodes, Edges and their Mut forms walk arena slot order. EdgesOf and
//	Neighbors walk adjacency order: insertion order for List, newest first
//	for Map. The graph must not be mutated while a sequence is consumed;
//	NodeIndices / EdgeIndices return snapshots for that case.
//
// Errors
//
//	Fallible operations return *GraphError; errors.Is matches the sentinels
//	ErrNodeNotFound, ErrEdgeNotFound, ErrLoop and ErrDuplicateEdge, and
//	errors.As recovers the offending handles. AddEdge and MustEdgeBetween
//	panic instead, for callers that already established the preconditions.
//
// Concurrency
//
//	None. A graph is an ordinary value; callers serialize access.
//
// SPDX-License-Identifier: MIT
package core

// SPDX-License-Identifier: MIT

// Package gonumgraph exposes slotgraph graphs through the gonum graph
// interfaces so gonum's traversal, topology and path packages can run over
// them without copying.
//
// Node IDs are the raw 64-bit NodeIdx handles reinterpreted as int64; ID and
// Handle convert between the two. Views are read-only and reflect later
// mutations of the wrapped graph.
//
//	g := core.NewSimpleListGraph[string, int](core.WithDirected(true))
//	...
//	v, err := gonumgraph.NewDirected[string, int](g)
//	order, err := topo.Sort(v)
//
// Parallel edges collapse to a single gonum edge (the first in neighbour
// order); From and To list each adjacent node once.
package gonumgraph

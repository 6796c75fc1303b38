// Package slotgraph is an in-memory graph engine built on generational
// handles: nodes and edges live in slot arenas and are addressed by
// NodeIdx/EdgeIdx values that go stale, instead of dangling, once the
// element they named is removed.
//
// 🚀 What is slotgraph?
//
//	A generic, allocation-conscious graph toolkit that brings together:
//		• Arena storage: O(1) insert/lookup/remove with slot reuse
//		• Four graph variants: simple/multi × list/map adjacency
//		• Directed or undirected edges, fixed at construction
//		• Breadth-first traversal: a step iterator and a hook-driven walker
//		• Iterator adapters over Go 1.23 range-over-func sequences
//		• Topology builders: path, cycle, star, wheel, grid, complete, random
//		• gonum interop: run gonum's traverse/topo/path over any graph
//
// ✨ Why choose slotgraph?
//
//   - Safe handles – a removed node's handle never aliases its successor
//   - Generic payloads – any node type N and edge type E
//   - Predictable order – insertion order (list) or newest-first (map)
//   - Pure Go – gonum only where interop is asked for
//
// Subpackages:
//
//	arena/      - generational slot arena and 64-bit keys
//	core/       - Graph contract, the four variants, adapters
//	bfs/        - Search iterator and Walk with hooks
//	builder/    - deterministic topology constructors
//	gonumgraph/ - graph.Directed / graph.Undirected views
//
// Quick example:
//
//	g := core.NewSimpleListGraph[string, int](core.WithDirected(true))
//	a, b := g.AddNode("a"), g.AddNode("b")
//	g.AddEdge(a, b, 1)
//	for n, v := range bfs.For(g, a).All(g) { ... }
//
//	go get github.com/katalvlaran/slotgraph
package slotgraph

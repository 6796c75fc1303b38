// Package bfs provides breadth-first traversal over a core.Graph, in two
// shapes: a resumable step-wise Search and a one-shot Walk that returns
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Search: FIFO queue of node handles plus a discovered set, seeded with
//     the start node. Each Next/NextMut/NextIdx call pops one node, enqueues
//     its undiscovered neighbours (marking them first), and yields the popped
//     node. The traversal holds no graph reference; pass the graph to every
//     step. Drop the value to stop early.
//   - Walk: runs a traversal to completion and returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → distance (edges) from start
//   - Parent: node → its predecessor in the BFS tree
//   - Walk supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbours are expanded in core EdgesOf order: insertion order for the
//	List encoding, newest first for the Map encoding. For a directed
//	SimpleMapGraph with edges 0→1, 0→2, 1→2, 2→0, 2→3 a traversal from 0
//	visits 0, 2, 1, 3; the List encodings visit 0, 1, 2, 3.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Step-wise:
//	s := bfs.For(g, start)
//	for v, ok := s.Next(g); ok; v, ok = s.Next(g) {
//		// ...
//	}
//
//	// One-shot with options:
//	result, err := bfs.Walk(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr core.NodeIdx) bool { return nbr != skip }),
//	    bfs.WithOnVisit(func(n core.NodeIdx, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for an unreached node.
//   - The context error on cancellation, and wrapped OnVisit errors.
//
// Concurrency
//
//	The graph must not be mutated while a Search or Walk over it is alive.
package bfs

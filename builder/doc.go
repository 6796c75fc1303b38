// SPDX-License-Identifier: MIT

// Package builder populates slotgraph graphs with canonical topologies.
//
// A Constructor validates its parameters and writes nodes and edges through
// a Sink, which addresses nodes by dense indices in creation order. Build
// runs constructors in sequence against any core.Graph and maps those
// indices to core.NodeIdx handles:
//
//	g := core.NewSimpleListGraph[string, int]()
//	ids, err := builder.Build(g,
//		func(i int) string { return fmt.Sprint("v", i) },
//		nil, // zero edge payloads
//		nil, // no options
//		builder.Cycle(5))
//
// Constructors:
//
//   - Path(n), n ≥ 2:                 edges i-1 → i.
//   - Cycle(n), n ≥ 3:                Path plus n-1 → 0.
//   - Star(n), n ≥ 2:                 hub 0 linked to every leaf.
//   - Wheel(n), n ≥ 4:                hub 0 plus a rim cycle over 1..n-1.
//   - Complete(n), n ≥ 1:             every pair (ordered pairs when directed).
//   - CompleteBipartite(n1, n2):      every left→right pair.
//   - Grid(rows, cols):               orthogonal lattice, row-major indices.
//   - RandomSparse(n, p):             independent edge trials with probability p.
//
// On directed graphs Star, Wheel spokes and Grid emit both orientations so
// the topology stays traversable in either direction; Path, Cycle and the
// wheel rim keep a single orientation.
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): RNG for RandomSparse. Without one,
//     RandomSparse fails with ErrNeedRandSource unless p is 0 or 1.
//
// Errors are sentinel-based (ErrTooFewNodes, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) and wrapped with the method tag;
// core errors such as core.ErrLoop surface when a topology does not fit the
// target variant. Build never panics on bad parameters.
package builder

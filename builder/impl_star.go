// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - The hub is the first node of the block; leaves follow.
//   - Emits spokes hub → leaf in increasing leaf order. Directed graphs also
//     get leaf → hub so every spoke is traversable both ways.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges (undirected) or O(2n-2) (directed).

package builder

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub := s.AddNodes(n)

		return wrapEdge(MethodStar, spokes(s, hub, hub+1, n-1))
	}
}

// spokes links hub to count consecutive nodes starting at first.
func spokes(s *Sink, hub, first, count int) error {
	for i := first; i < first+count; i++ {
		if err := s.AddEdge(hub, i); err != nil {
			return err
		}
		if s.Directed() {
			if err := s.AddEdge(i, hub); err != nil {
				return err
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Undirected: emits {i,j} for i<j, i asc then j asc.
//   - Directed: emits every ordered pair (i,j), i≠j, i asc then j asc.
//   - Never emits self-loops.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) edges.

package builder

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		base := s.AddNodes(n)
		for i := 0; i < n; i++ {
			j := i + 1
			if s.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := s.AddEdge(base+i, base+j); err != nil {
					return wrapEdge(MethodComplete, err)
				}
			}
		}

		return nil
	}
}

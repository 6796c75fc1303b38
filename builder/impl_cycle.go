// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Emits i → (i+1) mod n for i=0..n-1; directed graphs get one orientation.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.

package builder

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := s.AddNodes(n)

		return wrapEdge(MethodCycle, ring(s, base, n))
	}
}

// ring links base..base+n-1 into a cycle.
func ring(s *Sink, base, n int) error {
	for i := 0; i < n; i++ {
		if err := s.AddEdge(base+i, base+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Adds n nodes in ascending index order.
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := s.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := s.AddEdge(base+i-1, base+i); err != nil {
				return wrapEdge(MethodPath, err)
			}
		}

		return nil
	}
}

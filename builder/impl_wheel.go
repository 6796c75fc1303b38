// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewNodes).
//   - W_n = hub + rim C_{n-1}. The hub is the first node of the block.
//   - Emits the rim first (as Cycle), then spokes (as Star).
//
// Complexity:
//   - Time: O(n) nodes + O(2n-2) edges (undirected).

package builder

// Wheel returns a Constructor that builds a wheel graph W_n.
func Wheel(n int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		hub := s.AddNodes(n)
		if err := ring(s, hub+1, n-1); err != nil {
			return wrapEdge(MethodWheel, err)
		}

		return wrapEdge(MethodWheel, spokes(s, hub, hub+1, n-1))
	}
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewNodes).
//   - Left part occupies the first n1 indices of the block, right part the next n2.
//   - Emits left[i] → right[j] for i asc, j asc; no edges inside a part.
//
// Complexity:
//   - Time: O(n1+n2) nodes + O(n1*n2) edges.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := s.AddNodes(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := s.AddEdge(left+i, right+j); err != nil {
					return wrapEdge(MethodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); self-loops only on multigraphs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Sink.Rand() must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. One rng draw per admissible pair.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		rng := s.Rand()
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		keep := func() bool {
			if rng == nil {
				return p == MaxProbability
			}

			return rng.Float64() < p
		}

		base := s.AddNodes(n)
		directed, loops := s.Directed(), s.Multigraph()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !keep() {
					continue
				}
				if err := s.AddEdge(base+i, base+j); err != nil {
					return wrapEdge(MethodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

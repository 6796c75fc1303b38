// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Adds nodes in row-major order: cell (r,c) has block index r*cols+c.
//   - For each (r,c) emits Right then Bottom neighbour where present.
//     Directed graphs also get the reverse arc for symmetry.
//
// Complexity:
//   - Time: O(rows*cols) nodes + O(rows*cols) edges.

package builder

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *Sink) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		base := s.AddNodes(rows * cols)
		cell := func(r, c int) int { return base + r*cols + c }

		link := func(u, v int) error {
			if err := s.AddEdge(u, v); err != nil {
				return err
			}
			if s.Directed() {
				return s.AddEdge(v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(cell(r, c), cell(r, c+1)); err != nil {
						return wrapEdge(MethodGrid, err)
					}
				}
				if r+1 < rows {
					if err := link(cell(r, c), cell(r+1, c)); err != nil {
						return wrapEdge(MethodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

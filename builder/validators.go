// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// validators.go - shared parameter checks. Every failure wraps a sentinel
// and names the method and parameter.

package builder

import "fmt"

func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewNodes)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// wrapEdge tags an edge insertion failure with the emitting method.
func wrapEdge(method string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}

// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// errors.go - sentinel errors shared by every constructor.
//
// Callers branch with errors.Is; messages carry the method tag and the
// offending parameters, e.g. "Build: Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the Build boundary
// (nil graph, nil constructor, edge endpoint out of range).
var ErrConstructFailed = errors.New("builder: construction failed")

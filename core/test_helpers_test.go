// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for slotgraph/core.
//
// Purpose:
//   - Enumerate every graph variant so contract tests run across all of them.
//   - Keep fixtures small and deterministic.

package core_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
)

// variant builds one concrete graph type behind the Graph contract.
type variant struct {
	name  string
	multi bool
	make  func(opts ...core.GraphOption) core.Graph[string, int]
}

// simpleVariant builds one simple graph type behind the SimpleGraph contract.
type simpleVariant struct {
	name string
	make func(opts ...core.GraphOption) core.SimpleGraph[string, int]
}

var simpleVariants = []simpleVariant{
	{"SimpleList", func(opts ...core.GraphOption) core.SimpleGraph[string, int] {
		return core.NewSimpleListGraph[string, int](opts...)
	}},
	{"SimpleMap", func(opts ...core.GraphOption) core.SimpleGraph[string, int] {
		return core.NewSimpleMapGraph[string, int](opts...)
	}},
}

var allVariants = []variant{
	{"SimpleList", false, func(opts ...core.GraphOption) core.Graph[string, int] {
		return core.NewSimpleListGraph[string, int](opts...)
	}},
	{"SimpleMap", false, func(opts ...core.GraphOption) core.Graph[string, int] {
		return core.NewSimpleMapGraph[string, int](opts...)
	}},
	{"MultiList", true, func(opts ...core.GraphOption) core.Graph[string, int] {
		return core.NewMultiListGraph[string, int](opts...)
	}},
	{"MultiMap", true, func(opts ...core.GraphOption) core.Graph[string, int] {
		return core.NewMultiMapGraph[string, int](opts...)
	}},
}

// directions is the orientation axis of the variant grid.
var directions = []struct {
	name     string
	directed bool
}{
	{"undirected", false},
	{"directed", true},
}

// eachVariant runs fn once per (variant, direction) pair as a subtest.
func eachVariant(t *testing.T, fn func(t *testing.T, g core.Graph[string, int])) {
	t.Helper()
	for _, v := range allVariants {
		for _, d := range directions {
			t.Run(v.name+"/"+d.name, func(t *testing.T) {
				fn(t, v.make(core.WithDirected(d.directed)))
			})
		}
	}
}

// eachSimpleVariant is eachVariant restricted to simple graphs.
func eachSimpleVariant(t *testing.T, fn func(t *testing.T, g core.SimpleGraph[string, int])) {
	t.Helper()
	for _, v := range simpleVariants {
		for _, d := range directions {
			t.Run(v.name+"/"+d.name, func(t *testing.T) {
				fn(t, v.make(core.WithDirected(d.directed)))
			})
		}
	}
}

// addNodes adds one node per payload and returns the handles in order.
func addNodes(g core.Graph[string, int], payloads ...string) []core.NodeIdx {
	out := make([]core.NodeIdx, len(payloads))
	for i, p := range payloads {
		out[i] = g.AddNode(p)
	}

	return out
}

// mustEdge adds src→dst and fails the test on error.
func mustEdge(t *testing.T, g core.Graph[string, int], src, dst core.NodeIdx, v int) core.EdgeIdx {
	t.Helper()
	e, err := g.TryAddEdge(src, dst, v)
	require.NoError(t, err)

	return e
}

// neighborSet collects Neighbors(n) sorted by raw handle for order-free checks.
func neighborSet(g core.Graph[string, int], n core.NodeIdx) []core.NodeIdx {
	out := slices.Collect(g.Neighbors(n))
	slices.SortFunc(out, func(a, b core.NodeIdx) int { return cmp.Compare(a.Raw(), b.Raw()) })

	return out
}

// payloads collects node payloads in iteration order.
func payloads(g core.Graph[string, int]) []string {
	var out []string
	for _, v := range g.Nodes() {
		out = append(out, v)
	}

	return out
}

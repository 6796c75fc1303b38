// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/core"
)

type pair [2]int

// edgePairs returns the edges of g as sorted index pairs. Undirected pairs
// are normalized to (low, high).
func edgePairs(t *testing.T, g core.Graph[int, int], ids []core.NodeIdx) []pair {
	t.Helper()
	pos := make(map[core.NodeIdx]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	var out []pair
	for e := range g.Edges() {
		u, v := pos[e.Src], pos[e.Dst]
		if !g.IsDirected() && u > v {
			u, v = v, u
		}
		out = append(out, pair{u, v})
	}
	slices.SortFunc(out, func(a, b pair) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}

		return a[1] - b[1]
	})

	return out
}

func build(t *testing.T, g core.Graph[int, int], cons ...builder.Constructor) []core.NodeIdx {
	t.Helper()
	ids, err := builder.Build[int, int](g, nil, nil, nil, cons...)
	require.NoError(t, err)

	return ids
}

func TestConstructors_Topology(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want []pair
	}{
		{"Path(4)", builder.Path(4), []pair{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(4)", builder.Cycle(4), []pair{{0, 1}, {0, 3}, {1, 2}, {2, 3}}},
		{"Star(4)", builder.Star(4), []pair{{0, 1}, {0, 2}, {0, 3}}},
		{"Wheel(5)", builder.Wheel(5), []pair{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {3, 4}}},
		{"Complete(4)", builder.Complete(4), []pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), []pair{{0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}}},
		{"Grid(2,3)", builder.Grid(2, 3), []pair{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{"RandomSparse(4,1)", builder.RandomSparse(4, 1), []pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewSimpleListGraph[int, int]()
			ids := build(t, g, tc.ctor)
			if diff := cmp.Diff(tc.want, edgePairs(t, g, ids)); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstructors_DirectedCounts(t *testing.T) {
	cases := []struct {
		name         string
		ctor         builder.Constructor
		nodes, edges int
	}{
		{"Path(5)", builder.Path(5), 5, 4},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(5)", builder.Star(5), 5, 8},
		{"Wheel(5)", builder.Wheel(5), 5, 12},
		{"Complete(4)", builder.Complete(4), 4, 12},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 14},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), 5, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewSimpleMapGraph[int, int](core.WithDirected(true))
			ids := build(t, g, tc.ctor)
			assert.Len(t, ids, tc.nodes)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestCycle_DirectedOrientation(t *testing.T) {
	g := core.NewSimpleListGraph[int, int](core.WithDirected(true))
	ids := build(t, g, builder.Cycle(3))
	want := []pair{{0, 1}, {1, 2}, {2, 0}}
	if diff := cmp.Diff(want, edgePairs(t, g, ids)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomSparse_LoopsOnMultigraphOnly(t *testing.T) {
	multi := core.NewMultiMapGraph[int, int](core.WithDirected(true))
	build(t, multi, builder.RandomSparse(3, 1))
	assert.Equal(t, 9, multi.EdgeCount(), "ordered pairs plus loops")

	simple := core.NewSimpleMapGraph[int, int](core.WithDirected(true))
	build(t, simple, builder.RandomSparse(3, 1))
	assert.Equal(t, 6, simple.EdgeCount())
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	run := func(seed int64) []pair {
		g := core.NewSimpleListGraph[int, int]()
		ids, err := builder.Build[int, int](g, nil, nil,
			[]builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)

		return edgePairs(t, g, ids)
	}
	first := run(42)
	if diff := cmp.Diff(first, run(42)); diff != "" {
		t.Errorf("same seed produced different graphs (-first +second):\n%s", diff)
	}
	assert.NotEmpty(t, first)
	assert.Less(t, len(first), 66)
}

func TestBuild_Composition(t *testing.T) {
	g := core.NewSimpleListGraph[int, int]()
	ids := build(t, g, builder.Path(3), builder.Star(3))
	require.Len(t, ids, 6)
	want := []pair{{0, 1}, {1, 2}, {3, 4}, {3, 5}}
	if diff := cmp.Diff(want, edgePairs(t, g, ids)); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Payloads(t *testing.T) {
	g := core.NewSimpleListGraph[string, int]()
	ids, err := builder.Build[string, int](g,
		func(i int) string { return fmt.Sprintf("v%d", i) },
		func(u, v int) int { return u*10 + v },
		nil, builder.Path(3))
	require.NoError(t, err)

	for i, id := range ids {
		v, ok := g.GetNode(id)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("v%d", i), v)
	}
	e, ok, err := g.EdgeBetween(ids[1], ids[2])
	require.NoError(t, err)
	require.True(t, ok)
	ref, _ := g.GetEdge(e)
	assert.Equal(t, 12, ref.Value)
}

func TestBuild_ParameterErrors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewNodes},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewNodes},
		{"Star(1)", builder.Star(1), builder.ErrTooFewNodes},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewNodes},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewNodes},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewNodes},
		{"CompleteBipartite(2,0)", builder.CompleteBipartite(2, 0), builder.ErrTooFewNodes},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewNodes},
		{"Grid(3,0)", builder.Grid(3, 0), builder.ErrTooFewNodes},
		{"RandomSparse(0,1)", builder.RandomSparse(0, 1), builder.ErrTooFewNodes},
		{"RandomSparse(3,-1)", builder.RandomSparse(3, -1), builder.ErrInvalidProbability},
		{"RandomSparse(3,2)", builder.RandomSparse(3, 2), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewSimpleListGraph[int, int]()
			_, err := builder.Build[int, int](g, nil, nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, g.NodeCount(), "validation precedes node creation")
		})
	}
}

func TestBuild_ErrorMessage(t *testing.T) {
	g := core.NewSimpleListGraph[int, int]()
	_, err := builder.Build[int, int](g, nil, nil, nil, builder.Cycle(2))
	assert.EqualError(t, err, "Build: Cycle: n=2 < min=3: builder: parameter too small")
}

func TestBuild_BoundaryErrors(t *testing.T) {
	var nilGraph core.Graph[int, int]
	_, err := builder.Build[int, int](nilGraph, nil, nil, nil, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	g := core.NewSimpleListGraph[int, int]()
	ids, err := builder.Build[int, int](g, nil, nil, nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Len(t, ids, 2, "handles created before the failure are returned")

	outOfRange := func(s *builder.Sink) error {
		s.AddNode()

		return s.AddEdge(0, 5)
	}
	_, err = builder.Build[int, int](core.NewSimpleListGraph[int, int](), nil, nil, nil, outOfRange)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_CoreErrorsSurface(t *testing.T) {
	loop := func(s *builder.Sink) error {
		i := s.AddNode()

		return s.AddEdge(i, i)
	}
	_, err := builder.Build[int, int](core.NewSimpleListGraph[int, int](), nil, nil, nil, loop)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrLoop))

	// Reverse orientation on an undirected simple graph is the same edge.
	dup := func(s *builder.Sink) error {
		a := s.AddNodes(2)
		if err := s.AddEdge(a, a+1); err != nil {
			return err
		}

		return s.AddEdge(a+1, a)
	}
	_, err = builder.Build[int, int](core.NewSimpleMapGraph[int, int](), nil, nil, nil, dup)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	// Multigraphs accept both.
	_, err = builder.Build[int, int](core.NewMultiListGraph[int, int](), nil, nil, nil, loop, dup)
	assert.NoError(t, err)
}

func TestSink_Flags(t *testing.T) {
	var seen struct{ directed, multi, rng bool }
	probe := func(s *builder.Sink) error {
		seen.directed, seen.multi, seen.rng = s.Directed(), s.Multigraph(), s.Rand() != nil
		first := s.AddNodes(3)
		assert.Equal(t, 0, first)
		assert.Equal(t, 3, s.Len())

		return nil
	}
	g := core.NewMultiMapGraph[int, int](core.WithDirected(true))
	_, err := builder.Build[int, int](g, nil, nil, []builder.Option{builder.WithSeed(1)}, probe)
	require.NoError(t, err)
	assert.True(t, seen.directed)
	assert.True(t, seen.multi)
	assert.True(t, seen.rng)
}

package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/bfs"
	"github.com/katalvlaran/slotgraph/core"
)

// chain builds an undirected simple list path over the given labels.
func chain(labels ...string) (*core.SimpleListGraph[string, int], []core.NodeIdx) {
	g := core.NewSimpleListGraph[string, int]()
	ids := make([]core.NodeIdx, len(labels))
	for i, l := range labels {
		ids[i] = g.AddNode(l)
		if i > 0 {
			g.AddEdge(ids[i-1], ids[i], 0)
		}
	}

	return g, ids
}

// labels maps handles back to payloads for readable diffs.
func labels(g core.Graph[string, int], ids []core.NodeIdx) []string {
	out := make([]string, len(ids))
	for i, n := range ids {
		out[i], _ = g.GetNode(n)
	}

	return out
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	// nil graph
	_, err := bfs.Walk[string, int](nil, core.NullNode)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	// start node not found
	g, ids := chain("A")
	_, err = bfs.Walk(g, core.NullNode)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	// negative MaxDepth is a violation
	_, err = bfs.Walk(g, ids[0], bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// stale start
	g.RemoveNode(ids[0])
	_, err = bfs.Walk(g, ids[0])
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

// TestWalk_CycleAndDepths covers a simple cycle and checks depths.
func TestWalk_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g, ids := chain("A", "B", "C", "D")
	g.AddEdge(ids[3], ids[0], 0)

	res, err := bfs.Walk(g, ids[0])
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
	assert.Equal(t, ids[0], res.Order[0])
	assert.ElementsMatch(t, []core.NodeIdx{ids[1], ids[3]}, res.Order[1:3])
	assert.Equal(t, ids[2], res.Order[3])

	want := map[core.NodeIdx]int{ids[0]: 0, ids[1]: 1, ids[3]: 1, ids[2]: 2}
	if diff := cmp.Diff(want, res.Depth); diff != "" {
		t.Errorf("Depth mismatch (-want +got):\n%s", diff)
	}
	_, hasParent := res.Parent[ids[0]]
	assert.False(t, hasParent, "start has no parent")
}

// TestWalk_Disconnected ensures Walk only explores the component of the start.
func TestWalk_Disconnected(t *testing.T) {
	g := core.NewSimpleMapGraph[string, int]()
	x, y := g.AddNode("X"), g.AddNode("Y")
	p, q := g.AddNode("P"), g.AddNode("Q")
	g.AddEdge(x, y, 0)
	g.AddEdge(p, q, 0)

	resX, err := bfs.Walk(g, x)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIdx{x, y}, resX.Order)
	resP, err := bfs.Walk(g, p)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIdx{p, q}, resP.Order)
}

// TestWalk_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestWalk_MaxDepth(t *testing.T) {
	g, ids := chain("A", "B", "C")
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.Walk(g, ids[0], bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, labels(g, res.Order), "MaxDepth=%d", tc.depth)
	}
}

// TestWalk_FilterNeighbor shows how filtering prunes certain edges.
func TestWalk_FilterNeighbor(t *testing.T) {
	g, ids := chain("A", "B", "C")
	res, err := bfs.Walk(g, ids[0],
		bfs.WithFilterNeighbor(func(curr, nbr core.NodeIdx) bool {
			return !(curr == ids[1] && nbr == ids[2])
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels(g, res.Order))
}

// TestWalk_SelfLoopAndParallelDedup ensures loops and parallel edges do not enqueue twice.
func TestWalk_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewMultiListGraph[string, int]()
	a, b := g.AddNode("A"), g.AddNode("B")
	g.AddEdge(a, a, 0)
	g.AddEdge(a, b, 0)
	g.AddEdge(a, b, 0)

	var enqueued int
	res, err := bfs.Walk(g, a, bfs.WithOnEnqueue(func(core.NodeIdx, int) { enqueued++ }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels(g, res.Order))
	assert.Equal(t, 2, enqueued)
}

// TestWalk_Hooks asserts that hooks fire in the expected sequence and count.
func TestWalk_Hooks(t *testing.T) {
	g, ids := chain("A", "B", "C")

	var enq, deq, vis []string
	entry := func(prefix string, n core.NodeIdx, d int) string {
		l, _ := g.GetNode(n)
		return prefix + ":" + l + "@" + strconv.Itoa(d)
	}
	_, err := bfs.Walk(
		g, ids[0],
		bfs.WithOnEnqueue(func(n core.NodeIdx, d int) { enq = append(enq, entry("e", n, d)) }),
		bfs.WithOnDequeue(func(n core.NodeIdx, d int) { deq = append(deq, entry("d", n, d)) }),
		bfs.WithOnVisit(func(n core.NodeIdx, d int) error { vis = append(vis, entry("v", n, d)); return nil }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"e:A@0", "e:B@1", "e:C@2"}, enq)
	assert.Equal(t, []string{"d:A@0", "d:B@1", "d:C@2"}, deq)
	assert.Equal(t, []string{"v:A@0", "v:B@1", "v:C@2"}, vis)
}

// TestWalk_OnVisitAborts checks that a hook error stops the walk and is wrapped.
func TestWalk_OnVisitAborts(t *testing.T) {
	g, ids := chain("A", "B", "C")
	stop := errors.New("stop here")

	res, err := bfs.Walk(g, ids[0], bfs.WithOnVisit(func(n core.NodeIdx, _ int) error {
		if n == ids[1] {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.True(t, strings.HasPrefix(err.Error(), "bfs: OnVisit error at "))
	assert.Equal(t, []string{"A", "B"}, labels(g, res.Order), "partial result kept")
}

// TestWalk_PathTo covers trivial, multi-hop and unreachable targets.
func TestWalk_PathTo(t *testing.T) {
	g, ids := chain("A", "B", "C")
	lone := g.AddNode("Z")

	res, err := bfs.Walk(g, ids[0])
	require.NoError(t, err)

	path, err := res.PathTo(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIdx{ids[0]}, path)

	path, err = res.PathTo(ids[2])
	require.NoError(t, err)
	assert.Equal(t, ids, path)

	_, err = res.PathTo(lone)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestWalk_Cancellation verifies that a cancelled context halts Walk promptly.
func TestWalk_Cancellation(t *testing.T) {
	g := core.NewSimpleListGraph[int, int](core.WithDirected(true))
	prev := g.AddNode(0)
	start := prev
	for i := 1; i <= 100; i++ {
		n := g.AddNode(i)
		g.AddEdge(prev, n, 0)
		prev = n
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := bfs.Walk(g, start, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestWalk_ConcurrentReaders ensures two concurrent walks over the same
// unmutated graph do not interfere.
func TestWalk_ConcurrentReaders(t *testing.T) {
	g, ids := chain("A", "B", "C")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Walk(g, ids[0]); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs)
	}
}

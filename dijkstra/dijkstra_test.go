// Package dijkstra_test validates shortest-path queries on coupling graphs:
// the worked routing examples, validation order, determinism under ties,
// thresholds, and minimality against exhaustive search.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/bfs"
	"github.com/katalvlaran/qroute/builder"
	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
)

// lineConns / lineWeights form the three-qubit chain 0-1-2 with weights 2 and 3.
var (
	lineConns   = []builder.Connection{{From: 0, To: 1}, {From: 1, To: 2}}
	lineWeights = builder.Weights{{From: 0, To: 1}: 2.0, {From: 1, To: 2}: 3.0}
)

// mustBuild wraps builder.BuildGraph for fixtures.
func mustBuild(t *testing.T, conns []builder.Connection, w builder.Weights, directed, weighted bool) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(conns, w, directed, weighted)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Worked routing examples
// ------------------------------------------------------------------------

func TestFindPath_UndirectedWeighted(t *testing.T) {
	g := mustBuild(t, lineConns, lineWeights, false, true)

	res, err := dijkstra.FindPath(g, 0, 2)
	require.NoError(t, err)

	want := &dijkstra.PathResult{Nodes: []core.Node{0, 1, 2}, Weights: []float64{2, 3}, Cost: 5}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("FindPath(0,2) mismatch (-want +got):\n%s", diff)
	}

	// the mirror makes the reverse route equally available
	back, err := dijkstra.FindPath(g, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{2, 1, 0}, back.Nodes)
	assert.Equal(t, 5.0, back.Cost)
}

func TestFindPath_DirectedAgainstCoupling(t *testing.T) {
	g := mustBuild(t, lineConns, lineWeights, true, true)

	res, err := dijkstra.FindPath(g, 2, 0)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	var np *dijkstra.NoPathError
	require.True(t, errors.As(err, &np))
	assert.Equal(t, dijkstra.NoPathError{Source: 2, Destination: 0}, *np)
	assert.EqualError(t, err, "dijkstra: no path from 2 to 0")
}

func TestFindPath_UnweightedCountsHops(t *testing.T) {
	g := mustBuild(t, lineConns, nil, false, false)

	res, err := dijkstra.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, 2, res.Hops())
	assert.Equal(t, []float64{1, 1}, res.Weights)
}

// ------------------------------------------------------------------------
// 2. Validation and edge cases
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	g := mustBuild(t, lineConns, lineWeights, false, true)

	_, err := dijkstra.FindPath(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	tests := []struct {
		name     string
		src, dst core.Node
		want     dijkstra.InvalidNodeError
	}{
		{"source absent", 99, 1, dijkstra.InvalidNodeError{Node: 99, Role: dijkstra.RoleSource}},
		{"destination absent", 0, 7, dijkstra.InvalidNodeError{Node: 7, Role: dijkstra.RoleDestination}},
		{"both absent reports source", -1, 7, dijkstra.InvalidNodeError{Node: -1, Role: dijkstra.RoleSource}},
		{"equal but absent", 5, 5, dijkstra.InvalidNodeError{Node: 5, Role: dijkstra.RoleSource}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.FindPath(g, tc.src, tc.dst)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, dijkstra.ErrInvalidNode)
			assert.NotErrorIs(t, err, dijkstra.ErrNoPath)

			var inv *dijkstra.InvalidNodeError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tc.want, *inv)
		})
	}
}

func TestFindPath_SourceEqualsDestination(t *testing.T) {
	for _, directed := range []bool{true, false} {
		// qubit 3 is isolated; qubit 2 has no outgoing coupling when directed
		g, err := builder.BuildGraph(lineConns, lineWeights, directed, true, builder.WithNodeCount(4))
		require.NoError(t, err)
		require.Equal(t, []core.Node{0, 1, 2, 3}, g.Vertices())

		for _, n := range g.Vertices() {
			res, err := dijkstra.FindPath(g, n, n)
			require.NoError(t, err, "directed=%v n=%d", directed, n)
			assert.Equal(t, []core.Node{n}, res.Nodes)
			assert.Empty(t, res.Weights)
			assert.Zero(t, res.Cost)
			assert.Zero(t, res.Hops())
		}
	}
}

func TestFindPath_CostOverflowStillReaches(t *testing.T) {
	conns := []builder.Connection{{From: 0, To: 1}, {From: 1, To: 2}}
	w := builder.Weights{{From: 0, To: 1}: 1e308, {From: 1, To: 2}: 1e308}
	g := mustBuild(t, conns, w, true, true)

	res, err := dijkstra.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2}, res.Nodes)
	assert.Equal(t, []float64{1e308, 1e308}, res.Weights)
	assert.True(t, math.IsInf(res.Cost, 1))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Equal(t, map[core.Node]core.Node{1: 0, 2: 1}, prev)

	// a finite route still beats the overflowing one
	conns = append(conns, builder.Connection{From: 0, To: 2})
	w[builder.Connection{From: 0, To: 2}] = 5
	g = mustBuild(t, conns, w, true, true)

	res, err = dijkstra.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 2}, res.Nodes)
	assert.Equal(t, 5.0, res.Cost)
}

func TestFindPath_IsolatedQubit(t *testing.T) {
	g, err := builder.BuildGraph(lineConns, lineWeights, false, true, builder.WithNodeCount(4))
	require.NoError(t, err)

	_, err = dijkstra.FindPath(g, 0, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestFindPath_ParallelCouplingsUseCheapest(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge(0, 1, 5)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 2)
	require.NoError(t, err)
	g.Seal()

	res, err := dijkstra.FindPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, res.Weights)
	assert.Equal(t, 2.0, res.Cost)
}

func TestFindPath_PrefersCheaperDetour(t *testing.T) {
	// 0-2 direct costs 10; 0-1-2 costs 4
	conns := []builder.Connection{{From: 0, To: 2}, {From: 0, To: 1}, {From: 1, To: 2}}
	w := builder.Weights{{From: 0, To: 2}: 10, {From: 0, To: 1}: 1, {From: 1, To: 2}: 3}
	g := mustBuild(t, conns, w, false, true)

	res, err := dijkstra.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2}, res.Nodes)
	assert.Equal(t, 4.0, res.Cost)
}

// ------------------------------------------------------------------------
// 3. Determinism
// ------------------------------------------------------------------------

func TestFindPath_DeterministicTieBreak(t *testing.T) {
	// square 0-1-3 and 0-2-3, all unit weight: two equal routes
	conns := []builder.Connection{{From: 0, To: 2}, {From: 2, To: 3}, {From: 0, To: 1}, {From: 1, To: 3}}
	g := mustBuild(t, conns, nil, false, false)

	first, err := dijkstra.FindPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 3}, first.Nodes, "lower qubit id is settled first")

	for i := 0; i < 20; i++ {
		again, err := dijkstra.FindPath(g, 0, 3)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Single-source Dijkstra
// ------------------------------------------------------------------------

func TestDijkstra_DistancesAndPredecessors(t *testing.T) {
	g, err := builder.BuildGraph(lineConns, lineWeights, true, true, builder.WithNodeCount(4))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist[0])
	assert.Equal(t, 2.0, dist[1])
	assert.Equal(t, 5.0, dist[2])
	assert.True(t, math.IsInf(dist[3], 1), "isolated qubit stays +Inf")
	assert.Equal(t, map[core.Node]core.Node{1: 0, 2: 1}, prev)

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_Validation(t *testing.T) {
	g := mustBuild(t, lineConns, lineWeights, false, true)

	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotSet)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(42))
	assert.ErrorIs(t, err, dijkstra.ErrInvalidNode)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := mustBuild(t, lineConns, lineWeights, false, true)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1), "cost 5 exceeds the cap")
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	conns := []builder.Connection{{From: 0, To: 2}, {From: 0, To: 1}, {From: 1, To: 2}}
	w := builder.Weights{{From: 0, To: 2}: 1, {From: 0, To: 1}: 2, {From: 1, To: 2}: 2}
	g := mustBuild(t, conns, w, false, true)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[2])

	// threshold 2 walls off both legs of the detour
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[2])
	assert.True(t, math.IsInf(dist[1], 1))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

func TestPathResult_String(t *testing.T) {
	res := &dijkstra.PathResult{Nodes: []core.Node{0, 1, 2}, Weights: []float64{2, 3.5}, Cost: 5.5}
	assert.Equal(t, "0 -(2)-> 1 -(3.5)-> 2 cost=5.5", res.String())

	single := &dijkstra.PathResult{Nodes: []core.Node{4}}
	assert.Equal(t, "4 cost=0", single.String())
}

// ------------------------------------------------------------------------
// 5. Properties on random coupling maps
// ------------------------------------------------------------------------

// bruteForceCost enumerates simple paths and returns the minimum cost, or +Inf.
func bruteForceCost(t *testing.T, g *core.Graph, src, dst core.Node) float64 {
	t.Helper()
	best := math.Inf(1)
	onPath := map[core.Node]bool{src: true}

	var walk func(u core.Node, cost float64)
	walk = func(u core.Node, cost float64) {
		if u == dst {
			best = math.Min(best, cost)
			return
		}
		edges, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, e := range edges {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, cost+e.Weight)
			onPath[e.To] = false
		}
	}
	walk(src, 0)

	return best
}

// hopExists reports whether g has a u→v edge of exactly weight w.
func hopExists(t *testing.T, g *core.Graph, u, v core.Node, w float64) bool {
	t.Helper()
	edges, err := g.Neighbors(u)
	require.NoError(t, err)
	for _, e := range edges {
		if e.To == v && e.Weight == w {
			return true
		}
	}

	return false
}

func TestFindPath_MinimalAgainstExhaustiveSearch(t *testing.T) {
	const n = 6
	rng := rand.New(rand.NewSource(20240601))

	for round := 0; round < 40; round++ {
		directed := round%2 == 1
		conns, err := builder.RandomCoupling(n, 0.35, directed, rng)
		require.NoError(t, err)
		if len(conns) == 0 {
			continue
		}
		w, err := builder.UniformWeights(conns, 0.1, 10, rng)
		require.NoError(t, err)
		g, err := builder.BuildGraph(conns, w, directed, true, builder.WithNodeCount(n))
		require.NoError(t, err)

		for src := 0; src < n; src++ {
			reach, err := bfs.BFS(g, src)
			require.NoError(t, err)

			for dst := 0; dst < n; dst++ {
				res, err := dijkstra.FindPath(g, src, dst)
				_, reached := reach.Depth[dst]
				want := bruteForceCost(t, g, src, dst)

				if math.IsInf(want, 1) {
					require.ErrorIs(t, err, dijkstra.ErrNoPath, "round %d %d→%d", round, src, dst)
					require.False(t, reached, "BFS and Dijkstra disagree on %d→%d", src, dst)
					continue
				}
				require.NoError(t, err, "round %d %d→%d", round, src, dst)
				require.True(t, reached)
				assert.InDelta(t, want, res.Cost, 1e-9, "round %d %d→%d", round, src, dst)

				// shape: endpoints, hop count, real couplings, exact cost sum
				require.Equal(t, src, res.Nodes[0])
				require.Equal(t, dst, res.Nodes[len(res.Nodes)-1])
				require.Len(t, res.Weights, len(res.Nodes)-1)
				sum := 0.0
				for i, wt := range res.Weights {
					require.True(t, hopExists(t, g, res.Nodes[i], res.Nodes[i+1], wt))
					sum += wt
				}
				assert.Equal(t, sum, res.Cost)
			}
		}
	}
}

func TestFindPath_ConcurrentReaders(t *testing.T) {
	conns, err := builder.Grid(4, 4)
	require.NoError(t, err)
	g := mustBuild(t, conns, nil, false, false)

	want, err := dijkstra.FindPath(g, 0, 15)
	require.NoError(t, err)

	const readers = 16
	errs := make(chan error, readers)
	results := make(chan *dijkstra.PathResult, readers)
	for i := 0; i < readers; i++ {
		go func() {
			res, err := dijkstra.FindPath(g, 0, 15)
			errs <- err
			results <- res
		}()
	}
	for i := 0; i < readers; i++ {
		require.NoError(t, <-errs)
		assert.Empty(t, cmp.Diff(want, <-results))
	}
}

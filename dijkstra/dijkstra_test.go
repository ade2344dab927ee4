// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate basic functionality, Unknown placeholders, MaxDistance,
// InfEdgeThreshold, and validation errors.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netfeas/core"
	"github.com/katalvlaran/netfeas/dijkstra"
)

func mustGraph(t *testing.T, n int, specs ...core.EdgeSpec) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, specs)
	require.NoError(t, err)

	return g
}

func e(u, v int, w int64) core.EdgeSpec { return core.EdgeSpec{From: u, To: v, Weight: w} }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, e(0, 1, 1))

	for _, src := range []int{-1, 2} {
		_, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.Error(t, err)
		assert.True(t, errors.Is(err, dijkstra.ErrSourceOutOfRange))
		assert.True(t, errors.Is(err, core.ErrInvalidGraph))
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithUnknownWeight(-2)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0—1(1), 1—2(2), 0—2(5)
	g := mustGraph(t, 3, e(0, 1, 1), e(1, 2, 2), e(0, 2, 5))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 3}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, res.Prev)

	path, ok := res.PathTo(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := mustGraph(t, 4, e(0, 1, 3))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
	assert.Equal(t, dijkstra.NoPredecessor, res.Prev[3])
	assert.False(t, res.Reachable(3))
	_, ok := res.PathTo(3)
	assert.False(t, ok)

	path, ok := res.PathTo(0)
	require.True(t, ok)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := mustGraph(t, 3, e(0, 1, 0), e(1, 2, 0))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)
}

// ------------------------------------------------------------------------
// 3. Unknown edges
// ------------------------------------------------------------------------

func TestDijkstra_UnknownCountsAsOne(t *testing.T) {
	g := mustGraph(t, 5,
		e(4, 1, core.Unknown),
		e(2, 0, core.Unknown),
		e(0, 3, core.Unknown),
		e(4, 3, core.Unknown),
	)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 3, 1, 1, 2}, res.Dist)
	path, ok := res.PathTo(1)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 4, 1}, path)
	assert.Equal(t, []int{0, 1, 2, 3}, g.UnknownEdges(), "graph must stay unmodified")
}

func TestDijkstra_UnknownWeightOption(t *testing.T) {
	g := mustGraph(t, 3, e(0, 1, core.Unknown), e(1, 2, 4), e(0, 2, 10))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithUnknownWeight(7))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 7, 10}, res.Dist)
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := mustGraph(t, 6,
		e(0, 1, 4), e(0, 2, 1), e(2, 1, 2), e(1, 3, 5),
		e(2, 3, 8), e(3, 4, 3), e(4, 5, core.Unknown),
	)

	first, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{0, 3, 1, 8, 11, 12}, first.Dist)
}

// ------------------------------------------------------------------------
// 4. MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := mustGraph(t, 4, e(0, 1, 1), e(1, 2, 1), e(2, 3, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(1), res.Dist[1])
	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
	assert.Equal(t, dijkstra.Infinity, res.Dist[3])
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := mustGraph(t, 3, e(0, 1, 2), e(1, 2, 4), e(0, 2, 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)

	// Only 0—2(1) remains passable.
	assert.Equal(t, []int64{0, dijkstra.Infinity, 1}, res.Dist)
}

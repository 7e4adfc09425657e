package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/metric"
)

// buildWeightedPath constructs 0—1—2—3 with weights 1, 2, 3.
func buildWeightedPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)

	return g
}

func TestBuild_NilGraph(t *testing.T) {
	_, err := metric.Build(nil)
	assert.ErrorIs(t, err, metric.ErrNilGraph)
}

func TestClosure_DistancesOnPathGraph(t *testing.T) {
	c, err := metric.Build(buildWeightedPath(t))
	require.NoError(t, err)

	// Distances accumulate along the only path.
	d, err := c.Dist(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d) // 1 + 2 + 3

	// Symmetric by construction on an undirected graph.
	back, err := c.Dist(3, 0)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	// Self-distance is zero.
	self, err := c.Dist(2, 2)
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestClosure_ShorterDetourWins(t *testing.T) {
	// Direct edge 0—2 weight 10 vs detour 0—1—2 weight 3.
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 2, 10)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)

	c, err := metric.Build(g)
	require.NoError(t, err)

	d, err := c.Dist(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	path, err := c.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestClosure_PathEndpointsAndSingleton(t *testing.T) {
	c, err := metric.Build(buildWeightedPath(t))
	require.NoError(t, err)

	path, err := c.Path(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, path)

	// Path to self is the single-vertex sequence.
	self, err := c.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, self)
}

func TestClosure_DisconnectedPairPropagatesNoPath(t *testing.T) {
	// Two components: 0—1 and 2—3.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)

	c, err := metric.Build(g)
	require.NoError(t, err) // building still succeeds

	// Lookup must surface the sentinel, never a large constant.
	_, err = c.Dist(0, 3)
	assert.ErrorIs(t, err, metric.ErrNoPath)
	_, err = c.Path(0, 3)
	assert.ErrorIs(t, err, metric.ErrNoPath)

	// Within a component queries still work.
	d, err := c.Dist(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestClosure_QueryRangeChecks(t *testing.T) {
	c, err := metric.Build(buildWeightedPath(t))
	require.NoError(t, err)

	_, err = c.Dist(0, 9)
	assert.ErrorIs(t, err, metric.ErrVertexOutOfRange)
	_, err = c.Path(-1, 2)
	assert.ErrorIs(t, err, metric.ErrVertexOutOfRange)
}

func TestClosure_ParallelEdgesUseCheapest(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 5)
	_, _ = g.AddEdge(0, 1, 2) // cheaper parallel edge

	c, err := metric.Build(g)
	require.NoError(t, err)

	d, err := c.Dist(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

package instance_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroute/instance"
	"github.com/katalvlaran/lvlroute/postman"
)

func demand(q float64) *float64 { return &q }

func sample() *instance.Instance {
	return &instance.Instance{
		Name:      "triangle",
		Dimension: 3,
		Edges: []instance.Edge{
			{U: 0, V: 1, Weight: 1},
			{U: 1, V: 2, Weight: 2, Demand: demand(3)},
			{U: 2, V: 0, Weight: 1.5},
		},
		Capacity: 10,
	}
}

func TestGraph_PreservesTypedDemandAbsence(t *testing.T) {
	g, err := sample().Graph()
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	edges := g.Edges()
	assert.False(t, edges[0].HasDemand)
	assert.True(t, edges[1].HasDemand)
	assert.Equal(t, 3.0, edges[1].Demand)
	assert.Equal(t, 3.0, g.TotalDemand())
}

func TestGraph_Validation(t *testing.T) {
	bad := sample()
	bad.Dimension = 0
	_, err := bad.Graph()
	assert.ErrorIs(t, err, instance.ErrBadDimension)

	bad = sample()
	bad.Edges[0].V = 7
	_, err = bad.Graph()
	assert.ErrorIs(t, err, instance.ErrBadEndpoint)
}

func TestReadWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inst.json")
	in := sample()
	in.Solution = instance.NewSolution(postman.SolveResult{
		Cost:  4.5,
		Exact: true,
	}, instance.SysInfo{Platform: "linux", CPU: "test", RAM: "1 GB"})

	require.NoError(t, instance.Write(path, in))

	got, err := instance.Read(path)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Edges, got.Edges)
	require.NotNil(t, got.Solution)
	assert.Equal(t, 4.5, got.Solution.Cost)
	assert.True(t, got.Solution.Exact)
	assert.Empty(t, got.Solution.Reason)
	assert.Equal(t, "linux", got.Solution.System.Platform)
}

func TestNewSolution_LabelsFailures(t *testing.T) {
	sol := instance.NewSolution(postman.SolveResult{
		Cost:   8,
		Exact:  false,
		Reason: postman.ReasonTimeout,
	}, instance.SysInfo{})

	assert.Equal(t, postman.ReasonTimeout.String(), sol.Reason)
	assert.False(t, sol.Exact)
}

func TestSolveFromRecord(t *testing.T) {
	// End-to-end: record → graph → solver.
	g, err := sample().Graph()
	require.NoError(t, err)

	res := postman.Solve(g)
	assert.True(t, res.Exact)
	assert.Positive(t, res.Cost)
}

package geodesic

import (
	"testing"

	"github.com/geomesh/geodist/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant 5: edgesYIndex[e] holds exactly the face-corner slots that
// reference e, one for a boundary edge, two for an interior edge.
func TestEdgesYIndexCounts(t *testing.T) {
	m, _, _ := gridMesh(t, 4)
	plan, err := planBFS(m, []int{0})
	require.NoError(t, err)
	geom := computeGeometry(m, plan)
	params := DefaultParameters()
	params.SourceVertices = []int{0}
	heat, err := solveHeat(m, plan, geom, &params)
	require.NoError(t, err)
	st := prepareADMM(m, plan, heat)

	for e := 0; e < st.nEdges; e++ {
		n := 0
		for _, slot := range st.edgesYIndex[e] {
			if slot >= 0 {
				n++
				f := slot / 3
				k := slot % 3
				assert.Equal(t, e, int(st.sIdx[3*f+k]))
			}
		}
		if m.Halfedge(mesh.EdgeID(e), 1) < 0 {
			assert.Equal(t, 1, n, "boundary edge %d", e)
		} else {
			assert.Equal(t, 2, n, "interior edge %d", e)
		}
	}
}

// Invariant 1: on convergence, the integrability residual Σ Q·X is
// small per face.
func TestADMMConvergesToIntegrableSolution(t *testing.T) {
	m := unitTetrahedronMesh(t)
	plan, err := planBFS(m, []int{0})
	require.NoError(t, err)
	geom := computeGeometry(m, plan)
	params := DefaultParameters()
	params.SourceVertices = []int{0}
	heat, err := solveHeat(m, plan, geom, &params)
	require.NoError(t, err)
	st := prepareADMM(m, plan, heat)

	res, err := runADMM(st, &params)
	require.NoError(t, err)
	assert.True(t, res.converged)
	assert.LessOrEqual(t, res.primalSqNorm, params.GradSolverEps*params.GradSolverEps)
}

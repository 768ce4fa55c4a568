package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLaplacianAuditMatchesCompressedRows cross-checks the BFS-ordered
// compressed lap_addr/lap_coef rows against the independently-indexed
// sparse audit matrix built during the same pass: for every
// (vertex, neighbor) pair the compressed-row weight and the audit
// matrix entry must agree, and every row must sum (including the
// diagonal, net of the vertex-area term) to the audit row sum.
func TestLaplacianAuditMatchesCompressedRows(t *testing.T) {
	m, _, _ := gridMesh(t, 4)
	plan, err := planBFS(m, []int{0})
	require.NoError(t, err)
	geom := computeGeometry(m, plan)

	for i, v := range plan.order {
		start, end := geom.lapAddr[i], geom.lapAddr[i+1]
		var offDiagSum float64
		for j := start; j < end-1; j++ {
			e := geom.lapCoef[j]
			auditW := geom.laplacianAudit.At(int(v), int(e.Neighbor)) * geom.stepLength
			assert.InDelta(t, auditW, e.Weight, 1e-9, "vertex %d neighbor %d", v, e.Neighbor)
			offDiagSum += e.Weight
		}
		diag := geom.lapCoef[end-1]
		assert.Equal(t, v, diag.Neighbor)
		assert.InDelta(t, offDiagSum+geom.vertArea[v], diag.Weight, 1e-9)

		var auditRowSum float64
		for u := range plan.order {
			auditRowSum += geom.laplacianAudit.At(int(v), u)
		}
		assert.InDelta(t, auditRowSum*geom.stepLength, offDiagSum+diag.Weight-geom.vertArea[v], 1e-9, "row sum of vertex %d", v)
	}
}

func TestFaceAreaPositive(t *testing.T) {
	m := unitTetrahedronMesh(t)
	plan, err := planBFS(m, []int{0})
	require.NoError(t, err)
	geom := computeGeometry(m, plan)
	for f, a := range geom.faceArea {
		assert.Greater(t, a, 0.0, "face %d", f)
	}
}

func TestVertexAreaPositive(t *testing.T) {
	m, _, _ := gridMesh(t, 5)
	plan, err := planBFS(m, []int{0})
	require.NoError(t, err)
	geom := computeGeometry(m, plan)
	for v, a := range geom.vertArea {
		assert.Greater(t, a, 0.0, "vertex %d", v)
	}
}

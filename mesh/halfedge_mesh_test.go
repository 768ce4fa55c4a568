package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func triangleMesh(t *testing.T) *HalfEdgeMesh {
	positions := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := [][3]int{{0, 1, 2}}
	m, err := NewTriangleMesh(positions, faces)
	assert.NoError(t, err)
	return m
}

func tetrahedronMesh(t *testing.T) *HalfEdgeMesh {
	positions := []Point{
		{0, 0, 0},
		{1, 0, 0},
		{0.5, 0.8660254037844386, 0},
		{0.5, 0.2886751345948129, 0.816496580927726},
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
	}
	m, err := NewTriangleMesh(positions, faces)
	assert.NoError(t, err)
	return m
}

func TestNewTriangleMeshSingleTriangle(t *testing.T) {
	m := triangleMesh(t)
	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 3, m.NumEdges())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 3, m.NumHalfedges())

	for e := 0; e < m.NumEdges(); e++ {
		assert.Equal(t, HalfedgeID(-1), m.Halfedge(EdgeID(e), 1), "every edge in a single triangle is a boundary edge")
	}
	for h := 0; h < m.NumHalfedges(); h++ {
		assert.Equal(t, HalfedgeID(-1), m.Opposite(HalfedgeID(h)))
	}
	assert.Equal(t, 2, m.Valence(0))
}

func TestNewTriangleMeshTetrahedron(t *testing.T) {
	m := tetrahedronMesh(t)
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 6, m.NumEdges())
	assert.Equal(t, 4, m.NumFaces())
	assert.Equal(t, 12, m.NumHalfedges())

	for e := 0; e < m.NumEdges(); e++ {
		h0 := m.Halfedge(EdgeID(e), 0)
		h1 := m.Halfedge(EdgeID(e), 1)
		assert.NotEqual(t, HalfedgeID(-1), h1, "a closed tetrahedron has no boundary edges")
		assert.Equal(t, h1, m.Opposite(h0))
		assert.Equal(t, h0, m.Opposite(h1))
		assert.Equal(t, m.From(h0), m.To(h1))
		assert.Equal(t, m.To(h0), m.From(h1))
	}
	for v := 0; v < m.NumVertices(); v++ {
		assert.Equal(t, 3, m.Valence(VertexID(v)))
	}
}

func TestNewTriangleMeshRejectsOutOfRangeVertex(t *testing.T) {
	_, err := NewTriangleMesh([]Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 5}})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrVertexIndex))
}

func TestNewTriangleMeshRejectsNonManifoldEdge(t *testing.T) {
	positions := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0.5, 0}}
	faces := [][3]int{
		{0, 1, 2},
		{1, 0, 3}, // shares directed edge 1->0/0->1 opposite of face 0, fine
		{0, 1, 3}, // re-uses edge (0,1) a third time: non-manifold
	}
	_, err := NewTriangleMesh(positions, faces)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonManifold) || errors.Is(err, ErrInconsistentWinding))
}

func TestNewTriangleMeshRejectsInconsistentWinding(t *testing.T) {
	positions := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := [][3]int{
		{0, 1, 2},
		{0, 1, 3}, // same directed edge 0->1 as face 0: inconsistent winding
	}
	_, err := NewTriangleMesh(positions, faces)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentWinding))
}

func TestHalfEdgeMeshClear(t *testing.T) {
	m := triangleMesh(t)
	m.Clear()
	assert.Equal(t, 0, m.NumVertices())
	assert.Equal(t, 0, m.NumFaces())
}

func TestFaceHalfedgesAndFace(t *testing.T) {
	m := tetrahedronMesh(t)
	for f := 0; f < m.NumFaces(); f++ {
		for _, h := range m.FaceHalfedges(FaceID(f)) {
			assert.Equal(t, FaceID(f), m.Face(h))
		}
	}
}

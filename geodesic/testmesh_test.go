package geodesic

import (
	"math"
	"testing"

	"github.com/geomesh/geodist/mesh"
	"github.com/stretchr/testify/require"
)

func singleTriangleMesh(t *testing.T) mesh.Mesh {
	positions := []mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := [][3]int{{0, 1, 2}}
	m, err := mesh.NewTriangleMesh(positions, faces)
	require.NoError(t, err)
	return m
}

func unitTetrahedronMesh(t *testing.T) mesh.Mesh {
	positions := []mesh.Point{
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
	m, err := mesh.NewTriangleMesh(positions, faces)
	require.NoError(t, err)
	return m
}

// gridMesh builds an (n+1)x(n+1)-vertex triangulation of the unit
// square [0,1]x[0,1] into n x n quads, each split into two triangles.
// Returns the mesh plus the corner vertex indices (0,0) and (1,1).
func gridMesh(t *testing.T, n int) (mesh.Mesh, int, int) {
	idx := func(i, j int) int { return i*(n+1) + j }

	positions := make([]mesh.Point, (n+1)*(n+1))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			positions[idx(i, j)] = mesh.Point{float64(j) / float64(n), float64(i) / float64(n), 0}
		}
	}

	var faces [][3]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := idx(i, j)
			b := idx(i, j+1)
			c := idx(i+1, j)
			d := idx(i+1, j+1)
			faces = append(faces, [3]int{a, b, c})
			faces = append(faces, [3]int{b, d, c})
		}
	}

	m, err := mesh.NewTriangleMesh(positions, faces)
	require.NoError(t, err)
	return m, idx(0, 0), idx(n, n)
}

// icosahedronMesh builds a regular icosahedron. Vertices 0 and 3 are
// antipodal (opposite corners).
func icosahedronMesh(t *testing.T) mesh.Mesh {
	g := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{
		{-1, g, 0}, {1, g, 0}, {-1, -g, 0}, {1, -g, 0},
		{0, -1, g}, {0, 1, g}, {0, -1, -g}, {0, 1, -g},
		{g, 0, -1}, {g, 0, 1}, {-g, 0, -1}, {-g, 0, 1},
	}
	norm := math.Sqrt(1 + g*g)
	positions := make([]mesh.Point, len(raw))
	for i, p := range raw {
		positions[i] = mesh.Point{p[0] / norm, p[1] / norm, p[2] / norm}
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	m, err := mesh.NewTriangleMesh(positions, faces)
	require.NoError(t, err)
	return m
}

func scaleMesh(t *testing.T, m mesh.Mesh, factor float64) mesh.Mesh {
	nv := m.NumVertices()
	positions := make([]mesh.Point, nv)
	for v := 0; v < nv; v++ {
		positions[v] = m.Position(mesh.VertexID(v)).Scale(factor)
	}
	var faces [][3]int
	for f := 0; f < m.NumFaces(); f++ {
		fh := m.FaceHalfedges(mesh.FaceID(f))
		faces = append(faces, [3]int{int(m.From(fh[0])), int(m.From(fh[1])), int(m.From(fh[2]))})
	}
	out, err := mesh.NewTriangleMesh(positions, faces)
	require.NoError(t, err)
	return out
}

package geodesic

import (
	"fmt"
	"math"

	"github.com/geomesh/geodist/mesh"
)

// normalizedMesh wraps a mesh.Mesh, overriding Position to report
// positions centered and rescaled into a unit-diameter bounding box.
// All other queries delegate to the wrapped mesh unchanged.
type normalizedMesh struct {
	mesh.Mesh
	center   mesh.Point
	invScale float64
}

func (n *normalizedMesh) Position(v mesh.VertexID) mesh.Point {
	return n.Mesh.Position(v).Sub(n.center).Scale(n.invScale)
}

// normalize implements C2. It returns a view of m with positions
// centered and rescaled to unit diameter, and the scale factor needed
// to recover distances in the original mesh units (C8).
func normalize(m mesh.Mesh, sources []int) (mesh.Mesh, float64, error) {
	nv, ne, nf := m.NumVertices(), m.NumEdges(), m.NumFaces()
	if nv == 0 || ne == 0 || nf == 0 {
		return nil, 0, ErrEmptyMesh
	}

	for _, s := range sources {
		if s < 0 || s >= nv {
			return nil, 0, fmt.Errorf("%w: source vertex %d out of range [0,%d)", ErrBadSource, s, nv)
		}
	}

	min := m.Position(0)
	max := min
	for v := 1; v < nv; v++ {
		p := m.Position(mesh.VertexID(v))
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}

	diag := max.Sub(min)
	scale := math.Sqrt(diag[0]*diag[0] + diag[1]*diag[1] + diag[2]*diag[2])
	center := max.Add(min).Scale(0.5)

	return &normalizedMesh{Mesh: m, center: center, invScale: 1.0 / scale}, scale, nil
}

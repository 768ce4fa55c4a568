package geodesic

import (
	"math"

	"github.com/geomesh/geodist/internal/layerpar"
	"github.com/geomesh/geodist/mesh"
	"github.com/geomesh/geodist/utils"
)

// lapEntry is one (neighbor, weight) pair of a compressed Laplacian
// row; the final entry of each row is (self, diagonal).
type lapEntry struct {
	Neighbor mesh.VertexID
	Weight   float64
}

// geometryData is the output of the geometry precomputer (C4): edge
// vectors and areas, and the BFS-ordered compressed cotangent-Laplacian
// rows consumed by the heat Gauss-Seidel solve (C5).
type geometryData struct {
	edgeVec    [][3]float64 // edgeVec[e] = pos(to(h0)) - pos(from(h0))
	faceArea   []float64
	vertArea   []float64
	stepLength float64

	lapAddr []int // len(order)+1, BFS-ordered row starts
	lapCoef []lapEntry

	// laplacianAudit is a sparse debug view of the assembled
	// (unscaled) cotangent-Laplacian, independent of BFS order;
	// retained only to let callers and tests cross-check the
	// compressed BFS-ordered rows against a conventional sparse
	// assembly (see geometry_test.go).
	laplacianAudit *utils.DOK
}

func crossVec(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normVec(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

// computeGeometry implements C4. plan must already carry the BFS order
// (C3); the per-vertex Laplacian rows are written in that order so the
// heat solver (C5) can scan them as a tight contiguous loop.
func computeGeometry(m mesh.Mesh, plan *bfsPlan) *geometryData {
	ne := m.NumEdges()
	nf := m.NumFaces()
	nv := m.NumVertices()

	edgeVec := make([][3]float64, ne)
	edgeSqLen := make([]float64, ne)

	layerpar.Range(ne, func(lo, hi int) {
		for e := lo; e < hi; e++ {
			h0 := m.Halfedge(mesh.EdgeID(e), 0)
			to := m.Position(m.To(h0))
			from := m.Position(m.From(h0))
			v := to.Sub(from)
			edgeVec[e] = [3]float64{v[0], v[1], v[2]}
			edgeSqLen[e] = v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
		}
	})

	var sumLen float64
	for e := 0; e < ne; e++ {
		sumLen += math.Sqrt(edgeSqLen[e])
	}
	h := sumLen / float64(ne)
	stepLength := h * h

	faceArea := make([]float64, nf)
	halfcot := make([]float64, m.NumHalfedges())

	layerpar.Range(nf, func(lo, hi int) {
		for f := lo; f < hi; f++ {
			fh := m.FaceHalfedges(mesh.FaceID(f))
			var feIdx [3]int
			var el2 [3]float64
			for k := 0; k < 3; k++ {
				feIdx[k] = int(m.Edge(fh[k]))
				el2[k] = edgeSqLen[feIdx[k]]
			}
			area := 0.5 * normVec(crossVec(edgeVec[feIdx[0]], edgeVec[feIdx[1]]))
			faceArea[f] = area
			for j := 0; j < 3; j++ {
				halfcot[fh[j]] = (el2[(j+1)%3] + el2[(j+2)%3] - el2[j]) / (8 * area)
			}
		}
	})

	vertArea := make([]float64, nv)
	layerpar.Range(nv, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			var a float64
			for _, heh := range m.VertexHalfedges(mesh.VertexID(v)) {
				a += faceArea[m.Face(heh)]
			}
			vertArea[v] = a / 3.0
		}
	})

	audit := utils.NewDOK(nv, nv).Named("cotangent-laplacian")
	edgeWeight := func(e int) float64 {
		h0 := int(m.Halfedge(mesh.EdgeID(e), 0))
		w := halfcot[h0]
		if h1 := m.Halfedge(mesh.EdgeID(e), 1); h1 >= 0 {
			w += halfcot[h1]
		}
		return w
	}
	for e := 0; e < ne; e++ {
		h0 := m.Halfedge(mesh.EdgeID(e), 0)
		u, v := int(m.From(h0)), int(m.To(h0))
		w := edgeWeight(e)
		audit.Set(u, v, w)
		audit.Set(v, u, w)
		audit.Add(u, u, w)
		audit.Add(v, v, w)
	}

	lapAddr := make([]int, len(plan.order)+1)
	for i, v := range plan.order {
		lapAddr[i+1] = lapAddr[i] + m.Valence(v) + 1
	}
	lapCoef := make([]lapEntry, lapAddr[len(plan.order)])

	layerpar.Range(len(plan.order), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := plan.order[i]
			k := lapAddr[i]
			var wsum float64
			for _, heh := range m.VertexHalfedges(v) {
				w := halfcot[heh]
				if opp := m.Opposite(heh); opp >= 0 {
					w += halfcot[opp]
				}
				w *= stepLength
				lapCoef[k] = lapEntry{Neighbor: m.To(heh), Weight: w}
				wsum += w
				k++

				// A boundary edge whose only halfedge enters v is not in
				// v's outgoing ring; it is the halfedge of heh's face
				// that ends at v.
				for _, in := range m.FaceHalfedges(m.Face(heh)) {
					if m.To(in) == v && m.Opposite(in) < 0 {
						bw := halfcot[in] * stepLength
						lapCoef[k] = lapEntry{Neighbor: m.From(in), Weight: bw}
						wsum += bw
						k++
					}
				}
			}
			lapCoef[k] = lapEntry{Neighbor: v, Weight: wsum + vertArea[v]}
		}
	})

	return &geometryData{
		edgeVec:        edgeVec,
		faceArea:       faceArea,
		vertArea:       vertArea,
		stepLength:     stepLength,
		lapAddr:        lapAddr,
		lapCoef:        lapCoef,
		laplacianAudit: &audit,
	}
}

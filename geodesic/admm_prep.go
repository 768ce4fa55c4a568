package geodesic

import "github.com/geomesh/geodist/mesh"

// admmState holds every array the ADMM core (C7) and tree integrator
// (C8) operate on, assembled by the ADMM preprocessor (C6).
type admmState struct {
	nEdges int
	nFaces int

	sIdx []mesh.EdgeID // S_idx[3f+k]: edge index for face-corner slot
	q    []float64     // Q[3f+k]: +1 or -1

	// edgesYIndex[e] holds the (up to two) face-corner slot indices
	// -1/-1 for absent.
	edgesYIndex [][2]int

	z []float64 // Z[3f+k]: heat-derived target difference
	x []float64 // X[e]: current per-edge scalar difference
	y []float64 // Y[3f+k]: integrability-projected auxiliary
	d []float64 // D[3f+k]: scaled dual variable

	sxPrev []float64 // SX_prev[3f+k] = X[sIdx[3f+k]]

	// transitionFrom[i] / transitionEdge[i] mirror plan.parentHalfedge
	// for positions i>=|sources|: the BFS-parent vertex and the
	// signed edge reference used by C8's integration formula.
	transitionFrom []mesh.VertexID
	transitionEdge []int // e>=0: child is halfedge-1 side; e<0: -(e'+1), child is halfedge-0 side
}

// prepareADMM implements C6. It must run while the mesh adapter still
// has position data available (before Mesh.Clear()).
func prepareADMM(m mesh.Mesh, plan *bfsPlan, heat *heatResult) *admmState {
	nFaces := m.NumFaces()
	nEdges := m.NumEdges()

	st := &admmState{
		nEdges: nEdges,
		nFaces: nFaces,
		sIdx:   make([]mesh.EdgeID, 3*nFaces),
		q:      make([]float64, 3*nFaces),
		z:      make([]float64, 3*nFaces),
	}
	st.edgesYIndex = make([][2]int, nEdges)
	for e := range st.edgesYIndex {
		st.edgesYIndex[e] = [2]int{-1, -1}
	}

	fillCount := make([]int, nEdges)
	for f := 0; f < nFaces; f++ {
		fh := m.FaceHalfedges(mesh.FaceID(f))
		for k := 0; k < 3; k++ {
			h := fh[k]
			e := m.Edge(h)
			slot := 3*f + k
			st.sIdx[slot] = e

			v := m.Position(m.From(h)).Sub(m.Position(m.To(h)))
			var q float64
			if m.Halfedge(e, 0) == h {
				q = 1
				st.z[slot] = dot(heat.initGrad[f], v)
			} else {
				q = -1
				st.z[slot] = dot(heat.initGrad[f], [3]float64{-v[0], -v[1], -v[2]})
			}
			st.q[slot] = q

			st.edgesYIndex[e][fillCount[e]] = slot
			fillCount[e]++
		}
	}

	nv := len(plan.order)
	st.transitionFrom = make([]mesh.VertexID, nv)
	st.transitionEdge = make([]int, nv)
	for i := range st.transitionFrom {
		st.transitionFrom[i] = -1
		st.transitionEdge[i] = -1
	}
	for i := 1; i < nv; i++ {
		heh := plan.parentHalfedge[i]
		if heh < 0 {
			continue
		}
		e := m.Edge(heh)
		st.transitionFrom[i] = m.From(heh)
		if m.Halfedge(e, 0) == heh {
			st.transitionEdge[i] = -int(e) - 1
		} else {
			st.transitionEdge[i] = int(e)
		}
	}

	st.x = make([]float64, nEdges)
	for e := 0; e < nEdges; e++ {
		var r float64
		var n int
		for _, slot := range st.edgesYIndex[e] {
			if slot >= 0 {
				r += st.z[slot]
				n++
			}
		}
		st.x[e] = r / float64(n)
	}

	st.y = make([]float64, 3*nFaces)
	st.d = make([]float64, 3*nFaces)
	st.sxPrev = make([]float64, 3*nFaces)
	for f := 0; f < nFaces; f++ {
		for k := 0; k < 3; k++ {
			st.sxPrev[3*f+k] = st.x[st.sIdx[3*f+k]]
		}
	}

	return st
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

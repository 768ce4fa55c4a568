package geodesic

import "github.com/geomesh/geodist/internal/layerpar"

// integrateDistances implements C8: accumulates the ADMM edge
// differences along BFS parent edges to reconstruct per-vertex
// distances, then rescales into the mesh's original units.
//
// The sign convention matches integrate_geodesic_distance: transitionEdge[i]
// >= 0 means the parent halfedge is halfedge 1 of its edge (canonical
// orientation runs child->parent, so the drop is dist[parent] + X[e]);
// negative encodes -(e+1), meaning canonical orientation runs
// parent->child (the drop is dist[parent] - X[e]).
func integrateDistances(plan *bfsPlan, st *admmState, scale float64) []float64 {
	nv := len(plan.order)
	dist := make([]float64, nv)

	nSrc := plan.layerAddr[1]
	for i := 0; i < nSrc; i++ {
		dist[plan.order[i]] = 0
	}

	for l := 1; l < plan.numLayers(); l++ {
		begin, end := plan.layerAddr[l], plan.layerAddr[l+1]
		layerpar.Range(end-begin, func(lo, hi int) {
			for i := begin + lo; i < begin+hi; i++ {
				base := dist[st.transitionFrom[i]]
				eidx := st.transitionEdge[i]
				if eidx >= 0 {
					dist[plan.order[i]] = base + st.x[eidx]
				} else {
					dist[plan.order[i]] = base - st.x[-(eidx+1)]
				}
			}
		})
	}

	for i := range dist {
		dist[i] *= scale
	}
	return dist
}

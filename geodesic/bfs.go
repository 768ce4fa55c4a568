package geodesic

import "github.com/geomesh/geodist/mesh"

// bfsPlan is the output of the BFS planner (C3): a vertex visit order
// partitioned into concentric layers, plus each non-source vertex's
// transition halfedge toward its BFS parent.
type bfsPlan struct {
	order []mesh.VertexID // permutation of V; sources occupy [0, len(sources))
	layerAddr []int        // prefix addresses into order, one per layer boundary
	// parentHalfedge[i] is the halfedge directed from the BFS parent
	// of order[i] into order[i]; -1 for source positions.
	parentHalfedge []mesh.HalfedgeID
}

// planBFS implements C3: a standard multi-source BFS rooted at
// sources, in the order given. Within a frontier expansion, a
// vertex's outgoing halfedges are scanned in ring order; the first
// halfedge to reach an unvisited vertex becomes that vertex's
// transition halfedge, and the vertex is marked visited before the
// rest of the frontier is processed (so a layer never discovers the
// same vertex twice).
func planBFS(m mesh.Mesh, sources []int) (*bfsPlan, error) {
	nv := m.NumVertices()
	visited := make([]bool, nv)
	order := make([]mesh.VertexID, 0, nv)
	parentHE := make([]mesh.HalfedgeID, nv)
	for i := range parentHE {
		parentHE[i] = -1
	}

	for _, s := range sources {
		v := mesh.VertexID(s)
		visited[v] = true
		order = append(order, v)
	}

	layerAddr := []int{0, len(order)}
	currentFront := make([]mesh.VertexID, len(order))
	copy(currentFront, order)

	for len(currentFront) > 0 {
		var nextFront []mesh.VertexID
		for _, vh := range currentFront {
			for _, heh := range m.VertexHalfedges(vh) {
				dst := m.To(heh)
				if !visited[dst] {
					nextFront = append(nextFront, dst)
					order = append(order, dst)
					parentHE[len(order)-1] = heh
				}
				visited[dst] = true
			}
		}
		if len(nextFront) == 0 {
			break
		}
		layerAddr = append(layerAddr, layerAddr[len(layerAddr)-1]+len(nextFront))
		currentFront = nextFront
	}

	if len(order) != nv {
		return nil, ErrDisconnected
	}

	return &bfsPlan{order: order, layerAddr: layerAddr, parentHalfedge: parentHE}, nil
}

// numLayers returns the number of BFS layers (len(layerAddr)-1).
func (p *bfsPlan) numLayers() int { return len(p.layerAddr) - 1 }

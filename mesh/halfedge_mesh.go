package mesh

import (
	"fmt"
	"sort"
)

// HalfEdgeMesh is a concrete, array-based half-edge mesh built from
// triangle soup (vertex positions plus per-face vertex-index triples).
// All connectivity is precomputed once at construction; queries are
// O(1) slice lookups, matching the index-table style of a CFD mesh
// adapter generalized from element/face incidence to half-edge
// incidence.
type HalfEdgeMesh struct {
	positions []Point

	heFrom      []VertexID
	heTo        []VertexID
	heEdge      []EdgeID
	heFace      []FaceID
	heOpposite  []HalfedgeID
	faceHE      [][3]HalfedgeID
	edgeHE      [][2]HalfedgeID
	vertexOutHE [][]HalfedgeID
}

// edgeKey is a canonical (min, max) vertex-index pair identifying an
// undirected edge during construction.
type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// NewTriangleMesh builds a HalfEdgeMesh from vertex positions and a
// list of triangular faces given as consistently-wound (a,b,c) vertex
// index triples. It returns an error if any face references an
// out-of-range vertex or if any undirected edge is shared by more than
// two halfedges (non-manifold) or the same directed edge appears
// twice (inconsistent winding) — behavior the reference leaves
// undefined, rejected here explicitly per spec.md's open question.
func NewTriangleMesh(positions []Point, faces [][3]int) (*HalfEdgeMesh, error) {
	nv := len(positions)
	for _, f := range faces {
		for _, v := range f {
			if v < 0 || v >= nv {
				return nil, fmt.Errorf("%w: %d (n_vertices=%d)", ErrVertexIndex, v, nv)
			}
		}
	}

	m := &HalfEdgeMesh{
		positions:   positions,
		faceHE:      make([][3]HalfedgeID, len(faces)),
		vertexOutHE: make([][]HalfedgeID, nv),
	}

	type edgeBuild struct {
		he0, he1 HalfedgeID
		seen     int
	}
	edgeOf := make(map[edgeKey]*edgeBuild)
	var edgeOrder []edgeKey

	nextHE := HalfedgeID(0)
	for fi, f := range faces {
		var faceHEs [3]HalfedgeID
		for k := 0; k < 3; k++ {
			from := f[k]
			to := f[(k+1)%3]
			h := nextHE
			nextHE++
			m.heFrom = append(m.heFrom, VertexID(from))
			m.heTo = append(m.heTo, VertexID(to))
			m.heFace = append(m.heFace, FaceID(fi))
			faceHEs[k] = h
			m.vertexOutHE[from] = append(m.vertexOutHE[from], h)

			key := makeEdgeKey(from, to)
			eb, ok := edgeOf[key]
			if !ok {
				eb = &edgeBuild{he0: h, he1: -1, seen: 1}
				edgeOf[key] = eb
				edgeOrder = append(edgeOrder, key)
			} else {
				if eb.seen >= 2 {
					return nil, fmt.Errorf("%w: between vertices %d and %d", ErrNonManifold, key.a, key.b)
				}
				if m.heFrom[eb.he0] == VertexID(from) {
					return nil, fmt.Errorf("%w: between vertices %d and %d", ErrInconsistentWinding, key.a, key.b)
				}
				eb.he1 = h
				eb.seen++
			}
		}
		m.faceHE[fi] = faceHEs
	}

	sort.Slice(edgeOrder, func(i, j int) bool {
		bi, bj := edgeOf[edgeOrder[i]], edgeOf[edgeOrder[j]]
		return bi.he0 < bj.he0
	})

	m.heEdge = make([]EdgeID, len(m.heFrom))
	m.heOpposite = make([]HalfedgeID, len(m.heFrom))
	for i := range m.heOpposite {
		m.heOpposite[i] = -1
	}
	m.edgeHE = make([][2]HalfedgeID, len(edgeOrder))
	for ei, key := range edgeOrder {
		eb := edgeOf[key]
		m.edgeHE[ei] = [2]HalfedgeID{eb.he0, eb.he1}
		m.heEdge[eb.he0] = EdgeID(ei)
		if eb.he1 >= 0 {
			m.heEdge[eb.he1] = EdgeID(ei)
			m.heOpposite[eb.he0] = eb.he1
			m.heOpposite[eb.he1] = eb.he0
		}
	}

	return m, nil
}

func (m *HalfEdgeMesh) NumVertices() int   { return len(m.positions) }
func (m *HalfEdgeMesh) NumEdges() int      { return len(m.edgeHE) }
func (m *HalfEdgeMesh) NumFaces() int      { return len(m.faceHE) }
func (m *HalfEdgeMesh) NumHalfedges() int  { return len(m.heFrom) }

func (m *HalfEdgeMesh) Position(v VertexID) Point { return m.positions[v] }

// Valence counts one edge per outgoing halfedge plus one per boundary
// edge whose only halfedge enters v. Every face around v has one
// halfedge leaving v and one entering it, so there are as many of the
// latter as there are outgoing halfedges without an opposite.
func (m *HalfEdgeMesh) Valence(v VertexID) int {
	n := len(m.vertexOutHE[v])
	for _, h := range m.vertexOutHE[v] {
		if m.heOpposite[h] < 0 {
			n++
		}
	}
	return n
}

func (m *HalfEdgeMesh) Edge(h HalfedgeID) EdgeID { return m.heEdge[h] }

func (m *HalfEdgeMesh) Opposite(h HalfedgeID) HalfedgeID { return m.heOpposite[h] }

func (m *HalfEdgeMesh) Face(h HalfedgeID) FaceID { return m.heFace[h] }

func (m *HalfEdgeMesh) To(h HalfedgeID) VertexID { return m.heTo[h] }

func (m *HalfEdgeMesh) From(h HalfedgeID) VertexID { return m.heFrom[h] }

func (m *HalfEdgeMesh) Halfedge(e EdgeID, which int) HalfedgeID {
	return m.edgeHE[e][which]
}

func (m *HalfEdgeMesh) FaceHalfedges(f FaceID) [3]HalfedgeID { return m.faceHE[f] }

func (m *HalfEdgeMesh) VertexHalfedges(v VertexID) []HalfedgeID { return m.vertexOutHE[v] }

// Clear releases all connectivity and position tables. The solver
// calls this once BFS order, geometry, and the ADMM edge/face
// incidence arrays have been extracted (after C6); nothing downstream
// queries the mesh again.
func (m *HalfEdgeMesh) Clear() {
	m.positions = nil
	m.heFrom = nil
	m.heTo = nil
	m.heEdge = nil
	m.heFace = nil
	m.heOpposite = nil
	m.faceHE = nil
	m.edgeHE = nil
	m.vertexOutHE = nil
}

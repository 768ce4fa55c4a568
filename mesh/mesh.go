// Package mesh provides read-only half-edge queries over a manifold
// triangle mesh. It is the sole interface the geodesic solver uses to
// reach mesh data; the solver never keeps pointers into a mesh, only
// the integer handles defined here.
package mesh

// VertexID, EdgeID, FaceID and HalfedgeID are opaque indices into the
// corresponding entity tables of a Mesh. Index 0 is valid; -1 denotes
// "absent" where used (e.g. a boundary edge's missing halfedge).
type (
	VertexID   int
	EdgeID     int
	FaceID     int
	HalfedgeID int
)

// Point is a 3-vector mesh position.
type Point [3]float64

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Scale returns p scaled by a.
func (p Point) Scale(a float64) Point {
	return Point{p[0] * a, p[1] * a, p[2] * a}
}

// Mesh is the read-only half-edge adapter consumed by package geodesic.
// Implementations must be manifold triangle meshes: every face is a
// triangle and every edge owns either two halfedges of opposite
// orientation (an interior edge) or one (a boundary edge); halfedge 0
// of an edge defines its canonical direction. Behavior is undefined on
// non-manifold meshes (an edge shared by more than two faces, or two
// faces disagreeing about an edge's direction).
type Mesh interface {
	NumVertices() int
	NumEdges() int
	NumFaces() int
	NumHalfedges() int

	// Position returns the 3D coordinate of vertex v.
	Position(v VertexID) Point

	// Valence returns the number of edges incident to v.
	Valence(v VertexID) int

	// Edge returns the edge owning halfedge h.
	Edge(h HalfedgeID) EdgeID

	// Opposite returns the other halfedge of h's edge.
	Opposite(h HalfedgeID) HalfedgeID

	// Face returns the face that halfedge h bounds.
	Face(h HalfedgeID) FaceID

	// To returns the vertex h points at.
	To(h HalfedgeID) VertexID

	// From returns the vertex h originates from.
	From(h HalfedgeID) VertexID

	// Halfedge returns edge e's halfedge 0 (which=0) or halfedge 1
	// (which=1). which=1 returns -1 for a boundary edge with only one
	// incident halfedge recorded.
	Halfedge(e EdgeID, which int) HalfedgeID

	// FaceHalfedges returns the three halfedges bounding face f, in
	// the face's oriented (counter-clockwise) traversal order.
	FaceHalfedges(f FaceID) [3]HalfedgeID

	// VertexHalfedges returns the outgoing halfedges around v, i.e.
	// the ring used for both Laplacian assembly and BFS expansion.
	VertexHalfedges(v VertexID) []HalfedgeID

	// Clear releases any large internal buffers the adapter no longer
	// needs once the solver has consumed them (C6 releases the mesh).
	Clear()
}

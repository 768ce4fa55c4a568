package mesh

import "errors"

// Sentinel errors returned by NewTriangleMesh's connectivity checks.
var (
	ErrVertexIndex   = errors.New("mesh: face references out-of-range vertex")
	ErrNonManifold   = errors.New("mesh: non-manifold edge")
	ErrInconsistentWinding = errors.New("mesh: inconsistent face winding")
)

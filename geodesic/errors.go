package geodesic

import "errors"

// Sentinel errors surfaced by Solve, matching the error taxonomy of
// spec.md §6-§7. Use errors.Is to test for a specific kind; Solve
// never returns a partial distance vector alongside these (the
// max-iteration "budget" case is not an error — see Result.Converged).
var (
	// ErrEmptyMesh is returned when the mesh has zero vertices, edges
	// or faces.
	ErrEmptyMesh = errors.New("geodesic: mesh has zero vertices, edges, or faces")

	// ErrBadSource is returned when a source vertex index is out of
	// range or the source list contains a duplicate.
	ErrBadSource = errors.New("geodesic: invalid source vertex")

	// ErrDisconnected is returned when BFS from the sources does not
	// reach every vertex.
	ErrDisconnected = errors.New("geodesic: mesh is not connected from the given sources")

	// ErrHeatDivergence is returned when the heat Gauss-Seidel
	// residual is non-finite or fails to decrease.
	ErrHeatDivergence = errors.New("geodesic: heat solver diverged")

	// ErrGradientDivergence is returned when the ADMM residual is
	// non-finite.
	ErrGradientDivergence = errors.New("geodesic: gradient solver diverged")
)

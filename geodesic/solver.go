// Package geodesic computes geodesic distances on a triangle mesh from
// one or more source vertices using an edge-based ADMM formulation: a
// BFS integration tree, a Gauss-Seidel heat-flow solve, an ADMM
// projection onto integrable per-edge gradients, and a final tree
// integration into per-vertex distances.
package geodesic

import (
	"time"

	"github.com/geomesh/geodist/mesh"
)

// Logger is the minimal logging surface Solve uses for ambient
// diagnostics; *log.Logger satisfies it. A nil Logger disables all
// diagnostic output.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Stats carries per-stage diagnostics from a completed solve (spec.md
// §7's "diagnostic text", made structured).
type Stats struct {
	BFSTime       time.Duration
	HeatTime      time.Duration
	ADMMTime      time.Duration
	IntegrateTime time.Duration

	HeatIterations  int
	HeatResidual    float64
	HeatConverged   bool

	ADMMIterations int
	ADMMConverged  bool
	PrimalSqNorm   float64
	DualSqNorm     float64
}

// Result is the outcome of a successful Solve: the per-vertex distance
// field plus diagnostics. Converged reports the "budget" case of
// spec.md §7 — hitting grad_solver_max_iter or heat_solver_max_iter is
// not an error, but the flag tells the caller sub-convergence occurred.
type Result struct {
	distances []float64
	Converged bool
	Stats     Stats
}

// Distances returns the length-n_v vector of geodesic distances, in
// the mesh's original coordinate units, zero at every source.
func (r *Result) Distances() []float64 { return r.distances }

// Solve runs the full four-stage pipeline of spec.md §2 on m with the
// given parameters, using logger (if non-nil) for stage-timing and
// convergence diagnostics.
func Solve(m mesh.Mesh, params Parameters, logger Logger) (*Result, error) {
	params.Defaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	logf := func(format string, v ...interface{}) {
		if logger != nil {
			logger.Printf(format, v...)
		}
	}

	logf("normalizing mesh")
	normalized, scale, err := normalize(m, params.SourceVertices)
	if err != nil {
		return nil, err
	}

	logf("planning BFS integration order")
	bfsStart := time.Now()
	plan, err := planBFS(normalized, params.SourceVertices)
	if err != nil {
		return nil, err
	}
	bfsTime := time.Since(bfsStart)

	geom := computeGeometry(normalized, plan)

	logf("solving heat Gauss-Seidel system")
	heatStart := time.Now()
	heat, err := solveHeat(normalized, plan, geom, &params)
	if err != nil {
		return nil, err
	}
	heatTime := time.Since(heatStart)
	logf("heat solve: %d iterations, residual %g, converged=%v", heat.iters, heat.finalNorm, heat.converged)

	st := prepareADMM(normalized, plan, heat)
	normalized.Clear()

	logf("running ADMM projection")
	admmStart := time.Now()
	admmRes, err := runADMM(st, &params)
	if err != nil {
		return nil, err
	}
	admmTime := time.Since(admmStart)
	logf("ADMM: %d iterations, primal^2=%g dual^2=%g converged=%v", admmRes.iters, admmRes.primalSqNorm, admmRes.dualSqNorm, admmRes.converged)

	logf("integrating distances")
	integrateStart := time.Now()
	distances := integrateDistances(plan, st, scale)
	integrateTime := time.Since(integrateStart)

	return &Result{
		distances: distances,
		Converged: heat.converged && admmRes.converged,
		Stats: Stats{
			BFSTime:        bfsTime,
			HeatTime:       heatTime,
			ADMMTime:       admmTime,
			IntegrateTime:  integrateTime,
			HeatIterations: heat.iters,
			HeatResidual:   heat.finalNorm,
			HeatConverged:  heat.converged,
			ADMMIterations: admmRes.iters,
			ADMMConverged:  admmRes.converged,
			PrimalSqNorm:   admmRes.primalSqNorm,
			DualSqNorm:     admmRes.dualSqNorm,
		},
	}, nil
}

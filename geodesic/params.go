package geodesic

import "fmt"

// Parameters holds the solver's tunable knobs (spec.md §6). It is the
// parameter record external callers build, optionally by decoding a
// YAML file with the sibling InputParameters package.
type Parameters struct {
	// SourceVertices is the non-empty list of distinct source vertex
	// indices, in [0, n_v).
	SourceVertices []int `yaml:"source_vertices"`

	HeatSolverEps                      float64 `yaml:"heat_solver_eps"`
	HeatSolverMaxIter                  int     `yaml:"heat_solver_max_iter"`
	HeatSolverConvergenceCheckFreq     int     `yaml:"heat_solver_convergence_check_frequency"`

	GradSolverEps                  float64 `yaml:"grad_solver_eps"`
	GradSolverMaxIter              int     `yaml:"grad_solver_max_iter"`
	GradSolverConvergenceCheckFreq int     `yaml:"grad_solver_convergence_check_frequency"`
	GradSolverOutputFreq           int     `yaml:"grad_solver_output_frequency"`

	// Penalty is the ADMM augmented-Lagrangian coefficient ρ. Must be > 0.
	Penalty float64 `yaml:"penalty"`

	// Progress, when non-nil, is invoked every GradSolverOutputFreq
	// ADMM iterations with the current squared primal/dual residuals
	// (mirrors the reference's periodic stdout progress report).
	Progress func(iter int, primalSqNorm, dualSqNorm float64) `yaml:"-"`
}

// DefaultParameters returns a Parameters populated with the defaults
// given in spec.md §6. SourceVertices is left empty; the caller must
// set it.
func DefaultParameters() Parameters {
	return Parameters{
		HeatSolverEps:                  1e-6,
		HeatSolverMaxIter:              1000,
		HeatSolverConvergenceCheckFreq: 10,
		GradSolverEps:                  1e-5,
		GradSolverMaxIter:              10000,
		GradSolverConvergenceCheckFreq: 10,
		GradSolverOutputFreq:           100,
		Penalty:                        1.0,
	}
}

// Defaults fills in zero-valued fields with spec.md §6 defaults,
// leaving any value the caller already set untouched.
func (p *Parameters) Defaults() {
	d := DefaultParameters()
	if p.HeatSolverEps == 0 {
		p.HeatSolverEps = d.HeatSolverEps
	}
	if p.HeatSolverMaxIter == 0 {
		p.HeatSolverMaxIter = d.HeatSolverMaxIter
	}
	if p.HeatSolverConvergenceCheckFreq == 0 {
		p.HeatSolverConvergenceCheckFreq = d.HeatSolverConvergenceCheckFreq
	}
	if p.GradSolverEps == 0 {
		p.GradSolverEps = d.GradSolverEps
	}
	if p.GradSolverMaxIter == 0 {
		p.GradSolverMaxIter = d.GradSolverMaxIter
	}
	if p.GradSolverConvergenceCheckFreq == 0 {
		p.GradSolverConvergenceCheckFreq = d.GradSolverConvergenceCheckFreq
	}
	if p.GradSolverOutputFreq == 0 {
		p.GradSolverOutputFreq = d.GradSolverOutputFreq
	}
	if p.Penalty == 0 {
		p.Penalty = d.Penalty
	}
}

// Validate performs the input-validation class of errors from
// spec.md §7 that can be checked without touching the mesh.
func (p *Parameters) Validate() error {
	if len(p.SourceVertices) == 0 {
		return fmt.Errorf("%w: source_vertices is empty", ErrBadSource)
	}
	seen := make(map[int]bool, len(p.SourceVertices))
	for _, s := range p.SourceVertices {
		if seen[s] {
			return fmt.Errorf("%w: duplicate source vertex %d", ErrBadSource, s)
		}
		seen[s] = true
	}
	if p.Penalty <= 0 {
		return fmt.Errorf("geodesic: penalty must be > 0, got %v", p.Penalty)
	}
	if p.HeatSolverMaxIter <= 0 || p.HeatSolverConvergenceCheckFreq <= 0 {
		return fmt.Errorf("geodesic: heat solver iteration/frequency parameters must be > 0")
	}
	if p.GradSolverMaxIter <= 0 || p.GradSolverConvergenceCheckFreq <= 0 || p.GradSolverOutputFreq <= 0 {
		return fmt.Errorf("geodesic: gradient solver iteration/frequency parameters must be > 0")
	}
	return nil
}

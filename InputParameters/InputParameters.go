// Package InputParameters is the YAML-decoding front door used by
// cmd/: it reads a parameter file into a plain record before handing
// the values to geodesic.Parameters, mirroring the teacher's own
// split between a thin file-decoding struct and the package that
// actually consumes the values.
package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// GeodesicParameters mirrors geodesic.Parameters' YAML schema so a
// config file can be decoded without cmd/ importing the solver's
// internal Progress-callback field.
type GeodesicParameters struct {
	SourceVertices []int `yaml:"source_vertices"`

	HeatSolverEps                  float64 `yaml:"heat_solver_eps"`
	HeatSolverMaxIter              int     `yaml:"heat_solver_max_iter"`
	HeatSolverConvergenceCheckFreq int     `yaml:"heat_solver_convergence_check_frequency"`

	GradSolverEps                  float64 `yaml:"grad_solver_eps"`
	GradSolverMaxIter              int     `yaml:"grad_solver_max_iter"`
	GradSolverConvergenceCheckFreq int     `yaml:"grad_solver_convergence_check_frequency"`
	GradSolverOutputFreq           int     `yaml:"grad_solver_output_frequency"`

	Penalty float64 `yaml:"penalty"`
}

// Parse decodes a YAML parameter file into p.
func (p *GeodesicParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

// Print writes a human-readable summary of the loaded parameters,
// matching the teacher's InputParameters2D.Print diagnostic style.
func (p *GeodesicParameters) Print() {
	fmt.Printf("%v\t\t= source_vertices\n", p.SourceVertices)
	fmt.Printf("%g\t\t= heat_solver_eps\n", p.HeatSolverEps)
	fmt.Printf("%d\t\t= heat_solver_max_iter\n", p.HeatSolverMaxIter)
	fmt.Printf("%g\t\t= grad_solver_eps\n", p.GradSolverEps)
	fmt.Printf("%d\t\t= grad_solver_max_iter\n", p.GradSolverMaxIter)
	fmt.Printf("%g\t\t= penalty\n", p.Penalty)
}

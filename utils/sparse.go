// Package utils carries the piece of the teacher's numerical support
// library the geodesic solver actually exercises: a thin wrapper over
// a dictionary-of-keys sparse matrix. The original also carried a
// raveled-index bulk-assign API (Index/Equate/IndexedAssign) built for
// CFD kernel assembly; that machinery has no counterpart here — the
// solver only ever accumulates per-edge cotangent weights one entry at
// a time — so it is trimmed down to plain Set/At/Add access.
package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix.
type DOK struct {
	M    *sparse.DOK
	name string
}

// NewDOK allocates an empty nr x nc sparse matrix.
func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		M:    sparse.NewDOK(nr, nc),
		name: "unnamed",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// Set assigns M[i][j] = v.
func (m DOK) Set(i, j int, v float64) { m.M.Set(i, j, v) }

// Add accumulates v into M[i][j].
func (m DOK) Add(i, j int, v float64) { m.M.Set(i, j, m.M.At(i, j)+v) }

// Named attaches a diagnostic label, surfaced by callers that report
// errors about this matrix.
func (m DOK) Named(name string) DOK {
	m.name = name
	return m
}

// Name returns the matrix's diagnostic label.
func (m DOK) Name() string { return m.name }

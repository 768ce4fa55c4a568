package geodesic

import (
	"math"

	"github.com/geomesh/geodist/internal/layerpar"
)

// admmResult carries ADMM (C7) convergence diagnostics.
type admmResult struct {
	iters               int
	converged           bool
	primalSqNorm        float64
	dualSqNorm          float64
}

// runADMM implements C7: alternating minimization between the
// integrability projection (Y) and the data-closeness term (X),
// followed by a scaled-dual ascent, iterated to convergence or budget.
func runADMM(st *admmState, params *Parameters) (*admmResult, error) {
	rho := params.Penalty
	primalThresh := params.GradSolverEps * params.GradSolverEps
	dualThresh := params.GradSolverEps * params.GradSolverEps

	sx := make([]float64, 3*st.nFaces) // current_SX
	prevSX := st.sxPrev                // prev_SX (owned buffer, swapped below)

	res := &admmResult{}

	for {
		// Y-update: orthogonal projection onto {y : q . y = 0} per face.
		layerpar.Range(st.nFaces, func(lo, hi int) {
			for f := lo; f < hi; f++ {
				base := 3 * f
				var y [3]float64
				var q [3]float64
				for k := 0; k < 3; k++ {
					y[k] = prevSX[base+k] - st.d[base+k]
					q[k] = st.q[base+k]
				}
				mu := (q[0]*y[0] + q[1]*y[1] + q[2]*y[2]) / 3
				for k := 0; k < 3; k++ {
					st.y[base+k] = y[k] - mu*q[k]
				}
			}
		})

		// X-update: per-edge data-closeness quadratic.
		layerpar.Range(st.nEdges, func(lo, hi int) {
			for e := lo; e < hi; e++ {
				var r float64
				var n int
				for _, slot := range st.edgesYIndex[e] {
					if slot >= 0 {
						r += rho*(st.y[slot]+st.d[slot]) + st.z[slot]
						n++
					}
				}
				st.x[e] = r / ((rho + 1) * float64(n))
			}
		})

		// Dual update.
		layerpar.Range(st.nFaces, func(lo, hi int) {
			for f := lo; f < hi; f++ {
				base := 3 * f
				for k := 0; k < 3; k++ {
					sx[base+k] = st.x[st.sIdx[base+k]]
				}
			}
		})

		res.iters++
		needCheck := res.iters%params.GradSolverConvergenceCheckFreq == 0
		needOutput := params.Progress != nil && res.iters%params.GradSolverOutputFreq == 0

		if needCheck || needOutput {
			var primalSq, dualSq float64
			for i := range st.y {
				pd := st.y[i] - sx[i]
				primalSq += pd * pd
				dd := sx[i] - prevSX[i]
				dualSq += dd * dd
			}
			dualSq *= rho * rho

			if math.IsNaN(primalSq) || math.IsInf(primalSq, 0) ||
				math.IsNaN(dualSq) || math.IsInf(dualSq, 0) {
				return nil, ErrGradientDivergence
			}

			res.primalSqNorm = primalSq
			res.dualSqNorm = dualSq

			if needOutput {
				params.Progress(res.iters, primalSq, dualSq)
			}

			if needCheck && primalSq <= primalThresh && dualSq <= dualThresh {
				res.converged = true
			}
		}

		for i := range st.d {
			st.d[i] += st.y[i] - sx[i]
		}

		sx, prevSX = prevSX, sx

		if res.converged || res.iters >= params.GradSolverMaxIter {
			break
		}
	}

	st.sxPrev = prevSX
	return res, nil
}

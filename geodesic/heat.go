package geodesic

import (
	"math"

	"github.com/geomesh/geodist/internal/layerpar"
	"github.com/geomesh/geodist/mesh"
	"gonum.org/v1/gonum/floats"
)

// heatResult is the output of the heat Gauss-Seidel solve (C5): the
// per-face normalized heat-gradient direction, plus diagnostics.
type heatResult struct {
	initGrad  [][3]float64 // per face
	iters     int
	finalNorm float64
	converged bool
}

// computeHeatResidual implements the residual of spec.md §4.4,
// indexed by BFS position (the same position space lapAddr/lapCoef
// use), not by vertex id.
func computeHeatResidual(d []float64, alpha float64, nSources int, geom *geometryData, out []float64) {
	layerpar.Range(len(out), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var res float64
			if i < nSources {
				res += alpha
			}
			start, end := geom.lapAddr[i], geom.lapAddr[i+1]
			for j := start; j < end; j++ {
				c := geom.lapCoef[j]
				if j == end-1 {
					res -= d[c.Neighbor] * c.Weight
				} else {
					res += d[c.Neighbor] * c.Weight
				}
			}
			out[i] = res
		}
	})
}

// solveHeat implements C5: a layer-parallel Gauss-Seidel sweep on the
// backward-Euler heat equation, followed by per-face gradient
// extraction.
func solveHeat(m mesh.Mesh, plan *bfsPlan, geom *geometryData, params *Parameters) (*heatResult, error) {
	nv := m.NumVertices()
	nSrc := plan.layerAddr[1] // first layer boundary = |sources|

	var totalArea, sourceArea float64
	for v := 0; v < nv; v++ {
		totalArea += geom.vertArea[v]
	}
	for i := 0; i < nSrc; i++ {
		sourceArea += geom.vertArea[plan.order[i]]
	}
	alpha := math.Sqrt(math.Min(float64(nv)/float64(nSrc), totalArea/sourceArea))

	d := make([]float64, nv)
	for i := 0; i < nSrc; i++ {
		d[plan.order[i]] = alpha
	}

	residual := make([]float64, nv)
	computeHeatResidual(d, alpha, nSrc, geom, residual)
	initNorm := floats.Norm(residual, 2)
	eps := math.Max(1e-16, initNorm*params.HeatSolverEps)

	maxLayerSize := 0
	for l := 0; l < plan.numLayers(); l++ {
		if s := plan.layerAddr[l+1] - plan.layerAddr[l]; s > maxLayerSize {
			maxLayerSize = s
		}
	}
	scratch := make([]float64, maxLayerSize)

	sweep := func() {
		for l := 0; l < plan.numLayers(); l++ {
			begin, end := plan.layerAddr[l], plan.layerAddr[l+1]
			layerpar.Range(end-begin, func(lo, hi int) {
				for i := begin + lo; i < begin+hi; i++ {
					var v float64
					if l == 0 {
						v = alpha
					}
					start, fin := geom.lapAddr[i], geom.lapAddr[i+1]
					for j := start; j < fin-1; j++ {
						c := geom.lapCoef[j]
						v += d[c.Neighbor] * c.Weight
					}
					diag := geom.lapCoef[fin-1].Weight
					scratch[i-begin] = v / diag
				}
			})
			layerpar.Range(end-begin, func(lo, hi int) {
				for i := begin + lo; i < begin+hi; i++ {
					d[plan.order[i]] = scratch[i-begin]
				}
			})
		}
	}

	iter := 0
	increasing := 0
	prevCheckedNorm := initNorm
	finalNorm := initNorm
	converged := false

	for {
		sweep()
		iter++

		needCheck := iter >= params.HeatSolverMaxIter || iter%params.HeatSolverConvergenceCheckFreq == 0
		if needCheck {
			computeHeatResidual(d, alpha, nSrc, geom, residual)
			norm := floats.Norm(residual, 2)
			if math.IsNaN(norm) || math.IsInf(norm, 0) {
				return nil, ErrHeatDivergence
			}
			if norm > prevCheckedNorm {
				increasing++
				if increasing >= 2 {
					return nil, ErrHeatDivergence
				}
			} else {
				increasing = 0
			}
			prevCheckedNorm = norm
			finalNorm = norm

			if norm <= eps {
				converged = true
				break
			}
		}
		if iter >= params.HeatSolverMaxIter {
			break
		}
	}

	initGrad := make([][3]float64, m.NumFaces())
	layerpar.Range(m.NumFaces(), func(lo, hi int) {
		for f := lo; f < hi; f++ {
			fh := m.FaceHalfedges(mesh.FaceID(f))
			var edgeVecs [3][3]float64
			var heatVals [3]float64
			for k := 0; k < 3; k++ {
				heh := fh[k]
				e := m.Edge(heh)
				ev := geom.edgeVec[e]
				if m.Halfedge(e, 0) != heh {
					ev = [3]float64{-ev[0], -ev[1], -ev[2]}
				}
				edgeVecs[k] = ev
				heatVals[k] = d[m.To(heh)]
			}

			hn := math.Sqrt(heatVals[0]*heatVals[0] + heatVals[1]*heatVals[1] + heatVals[2]*heatVals[2])
			if hn > 0 {
				heatVals[0] /= hn
				heatVals[1] /= hn
				heatVals[2] /= hn
			}
			// The reference normalizes the edge-vector matrix as a
			// whole (a single uniform scale, preserving the edges'
			// relative lengths) rather than column-by-column; since
			// grad is normalized below regardless, a uniform scale of
			// edgeVecs changes no resulting direction, so the step is
			// omitted entirely rather than reproduced.

			nrm := crossVec(edgeVecs[0], edgeVecs[1])
			if l := normVec(nrm); l > 0 {
				nrm = [3]float64{nrm[0] / l, nrm[1] / l, nrm[2] / l}
			}

			var vvec [3]float64
			for c := 0; c < 3; c++ {
				vvec[c] = edgeVecs[0][c]*heatVals[1] + edgeVecs[1][c]*heatVals[2] + edgeVecs[2][c]*heatVals[0]
			}

			grad := crossVec(vvec, nrm)
			if l := normVec(grad); l > 0 {
				grad = [3]float64{grad[0] / l, grad[1] / l, grad[2] / l}
			}
			initGrad[f] = grad
		}
	})

	return &heatResult{initGrad: initGrad, iters: iter, finalNorm: finalNorm, converged: converged}, nil
}

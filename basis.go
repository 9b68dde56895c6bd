package ramp

import "math"

// Basis spline algorithm adapted from
// https://github.com/d3/d3-interpolate/blob/master/src/basis.js

// basis evaluates the uniform cubic B-spline basis blend of four control
// values at local parameter t1 in [0, 1].
func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

// basisEvaluator blends stops with a uniform cubic B-spline. The stop
// values act as control points: away from the endpoints the curve only
// approximates the stop colors. Boundary segments borrow the same phantom
// extrapolation as the Catmull-Rom kernel.
type basisEvaluator struct {
	values      [][4]float64
	positions   []float64
	dmin, dmax  float64
	mode        BlendMode
	first, last Color
}

func newBasisEvaluator(colors []Color, positions []float64, mode BlendMode) *basisEvaluator {
	return &basisEvaluator{
		values:    convertColors(colors, mode),
		positions: positions,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (e *basisEvaluator) At(t float64) Color {
	if t <= e.dmin {
		return e.first
	}
	if t >= e.dmax {
		return e.last
	}
	if math.IsNaN(t) {
		return Black
	}

	n := len(e.positions) - 1
	low := segmentIndex(e.positions, t)
	i := low - 1
	p0, p1 := e.positions[i], e.positions[low]
	u := (t - p0) / (p1 - p0)
	val1, val2 := e.values[i], e.values[low]

	var v [4]float64
	for ch := 0; ch < 4; ch++ {
		v1, v2 := val1[ch], val2[ch]
		v0 := 2*v1 - v2
		if i > 0 {
			v0 = e.values[i-1][ch]
		}
		v3 := 2*v2 - v1
		if i < n-1 {
			v3 = e.values[i+2][ch]
		}
		v[ch] = basis(u, v0, v1, v2, v3)
	}
	return fromComponents(v, e.mode)
}

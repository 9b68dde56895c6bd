package ramp

import "math"

// smoothstepEvaluator blends each segment with the cubic ease 3t²−2t³
// instead of a straight lerp, flattening the curve at every stop. Shares
// the linear kernel's converted-stop layout and lookup.
type smoothstepEvaluator struct {
	positions   []float64
	values      [][4]float64
	mode        BlendMode
	dmin, dmax  float64
	first, last Color
}

func newSmoothstepEvaluator(colors []Color, positions []float64, mode BlendMode) *smoothstepEvaluator {
	return &smoothstepEvaluator{
		positions: positions,
		values:    convertColors(colors, mode),
		mode:      mode,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (e *smoothstepEvaluator) At(t float64) Color {
	if t <= e.dmin {
		return e.first
	}
	if t >= e.dmax {
		return e.last
	}
	if math.IsNaN(t) {
		return Black
	}

	i := segmentIndex(e.positions, t)
	p0, p1 := e.positions[i-1], e.positions[i]
	u := smoothstepUnit((t - p0) / (p1 - p0))
	return blendComponents(e.values[i-1], e.values[i], u, e.mode)
}

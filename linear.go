package ramp

import "math"

// linearEvaluator blends each segment linearly in the converted color
// space. Stop values are converted once at construction; evaluation is a
// binary search plus one lerp.
type linearEvaluator struct {
	positions   []float64
	values      [][4]float64
	mode        BlendMode
	dmin, dmax  float64
	first, last Color
}

func newLinearEvaluator(colors []Color, positions []float64, mode BlendMode) *linearEvaluator {
	return &linearEvaluator{
		positions: positions,
		values:    convertColors(colors, mode),
		mode:      mode,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

func (e *linearEvaluator) At(t float64) Color {
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
	u := (t - p0) / (p1 - p0)
	return blendComponents(e.values[i-1], e.values[i], u, e.mode)
}

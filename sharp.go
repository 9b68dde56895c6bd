package ramp

import "math"

// sharpEvaluator is a stepwise re-quantization of sampled colors: each
// sample becomes a flat band, produced by duplicating the sample into a
// pair of adjacent stops. With smoothness > 0 the pair positions are
// nudged inward, turning the instantaneous step between bands into a
// smoothstep ramp. Bands always blend in RGB regardless of the source
// gradient's mode.
type sharpEvaluator struct {
	positions   []float64
	values      [][4]float64
	dmin, dmax  float64
	first, last Color
}

func newSharpEvaluator(colors []Color, dmin, dmax, smoothness float64) *sharpEvaluator {
	n := len(colors)

	doubled := make([]Color, 0, n*2)
	for _, c := range colors {
		doubled = append(doubled, c, c)
	}

	off := clamp(smoothness, 0, 1) * (dmax - dmin) / float64(n) / 4
	edges := linspace(dmin, dmax, n+1)
	positions := make([]float64, 0, n*2)
	j := 0
	for i := 0; i < n; i++ {
		positions = append(positions, edges[i])
		if j > 0 {
			positions[j] += off
		}
		j++
		positions = append(positions, edges[i+1])
		if j < len(doubled)-1 {
			positions[j] -= off
		}
		j++
	}

	return &sharpEvaluator{
		positions: positions,
		values:    convertColors(doubled, BlendRGB),
		dmin:      dmin,
		dmax:      dmax,
		first:     colors[0],
		last:      colors[n-1],
	}
}

func (e *sharpEvaluator) At(t float64) Color {
	if t <= e.dmin {
		return e.first
	}
	if t >= e.dmax {
		return e.last
	}
	if math.IsNaN(t) {
		return Black
	}

	low := segmentIndex(e.positions, t)
	i := low - 1
	v0 := e.values[i]

	// Even segments are flat bands; odd segments are the transition
	// between two bands.
	if i&1 == 0 {
		return Color{R: v0[0], G: v0[1], B: v0[2], A: v0[3]}
	}

	p0, p1 := e.positions[i], e.positions[low]
	u := smoothstepUnit((t - p0) / (p1 - p0))
	v := interpLinear(v0, e.values[low], u)
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

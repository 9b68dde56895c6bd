package ramp

import "math"

// catmullRomEvaluator fits a centripetal Catmull-Rom spline (alpha 0.5,
// tension 0) through the converted stop values, one spline per channel.
// Per-segment cubic coefficients are derived once at construction from the
// non-uniform chord-length parametrization, so evaluation is a binary
// search plus a cubic per channel.
//
// Spline derivation adapted from
// https://qroph.github.io/2018/07/30/smooth-paths-using-catmull-rom-splines.html
type catmullRomEvaluator struct {
	// segments[i][ch] holds the cubic coefficients [a, b, c, d] of
	// channel ch over [positions[i], positions[i+1]].
	segments    [][4][4]float64
	positions   []float64
	dmin, dmax  float64
	mode        BlendMode
	first, last Color
}

func newCatmullRomEvaluator(colors []Color, positions []float64, mode BlendMode) *catmullRomEvaluator {
	values := convertColors(colors, mode)
	n := len(values)

	channels := [4][]float64{}
	for ch := 0; ch < 4; ch++ {
		channels[ch] = make([]float64, n)
		for i, v := range values {
			channels[ch][i] = v[ch]
		}
	}

	segments := make([][4][4]float64, n-1)
	for ch := 0; ch < 4; ch++ {
		for i, coef := range catmullSegments(channels[ch]) {
			segments[i][ch] = coef
		}
	}

	return &catmullRomEvaluator{
		segments:  segments,
		positions: positions,
		dmin:      positions[0],
		dmax:      positions[len(positions)-1],
		mode:      mode,
		first:     colors[0],
		last:      colors[len(colors)-1],
	}
}

// catmullSegments computes per-segment cubic coefficients for one channel.
// The spline is extended with phantom endpoints 2·v0−v1 and
// 2·v(n−1)−v(n−2) so the boundary segments are well defined without
// branching at evaluation time.
func catmullSegments(values []float64) [][4]float64 {
	const (
		alpha   = 0.5
		tension = 0.0
	)
	n := len(values)

	vals := make([]float64, 0, n+2)
	vals = append(vals, 2*values[0]-values[1])
	vals = append(vals, values...)
	vals = append(vals, 2*values[n-1]-values[n-2])

	segments := make([][4]float64, 0, n-1)
	for i := 1; i < len(vals)-2; i++ {
		v0 := vals[i-1]
		v1 := vals[i]
		v2 := vals[i+1]
		v3 := vals[i+2]

		t0 := 0.0
		t1 := t0 + math.Pow(math.Abs(v0-v1), alpha)
		t2 := t1 + math.Pow(math.Abs(v1-v2), alpha)
		t3 := t2 + math.Pow(math.Abs(v2-v3), alpha)

		m1 := (1 - tension) * (t2 - t1) *
			((v0-v1)/(t0-t1) - (v0-v2)/(t0-t2) + (v1-v2)/(t1-t2))
		m2 := (1 - tension) * (t2 - t1) *
			((v1-v2)/(t1-t2) - (v1-v3)/(t1-t3) + (v2-v3)/(t2-t3))
		// Degenerate chord lengths divide 0/0; coerce to a flat tangent.
		if math.IsNaN(m1) {
			m1 = 0
		}
		if math.IsNaN(m2) {
			m2 = 0
		}

		segments = append(segments, [4]float64{
			2*v1 - 2*v2 + m1 + m2,
			-3*v1 + 3*v2 - 2*m1 - m2,
			m1,
			v1,
		})
	}
	return segments
}

func (e *catmullRomEvaluator) At(t float64) Color {
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
	t1 := (t - p0) / (p1 - p0)
	t2 := t1 * t1
	t3 := t2 * t1

	seg := e.segments[i-1]
	var v [4]float64
	for ch := 0; ch < 4; ch++ {
		c := seg[ch]
		v[ch] = c[0]*t3 + c[1]*t2 + c[2]*t1 + c[3]
	}
	return fromComponents(v, e.mode)
}

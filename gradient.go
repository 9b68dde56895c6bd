package ramp

import (
	"math"
	"sort"
)

// BlendMode selects the color space in which stop colors are interpolated.
type BlendMode int

const (
	// BlendRGB interpolates raw sRGB channels.
	BlendRGB BlendMode = iota
	// BlendLinearRGB interpolates in linear (gamma-decoded) RGB.
	BlendLinearRGB
	// BlendOklab interpolates in the perceptual Oklab space.
	BlendOklab
	// BlendLab interpolates in CIE L*a*b*.
	BlendLab
	// BlendHSV interpolates in HSV; the hue channel follows the shortest
	// circular arc.
	BlendHSV
)

// String returns the lowercase name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendRGB:
		return "rgb"
	case BlendLinearRGB:
		return "linear-rgb"
	case BlendOklab:
		return "oklab"
	case BlendLab:
		return "lab"
	case BlendHSV:
		return "hsv"
	}
	return "unknown"
}

// Interpolation selects the kernel used to blend between stops.
type Interpolation int

const (
	// InterpolationLinear blends each segment linearly.
	InterpolationLinear Interpolation = iota
	// InterpolationCatmullRom fits a centripetal Catmull-Rom spline
	// through the stops.
	InterpolationCatmullRom
	// InterpolationBasis fits a uniform cubic B-spline; the curve only
	// approximates the stop colors away from the endpoints.
	InterpolationBasis
	// InterpolationSmoothstep blends each segment with a cubic ease.
	InterpolationSmoothstep
)

// String returns the lowercase name of the interpolation kernel.
func (i Interpolation) String() string {
	switch i {
	case InterpolationLinear:
		return "linear"
	case InterpolationCatmullRom:
		return "catmull-rom"
	case InterpolationBasis:
		return "basis"
	case InterpolationSmoothstep:
		return "smoothstep"
	}
	return "unknown"
}

// Evaluator is the minimal capability a gradient implementation provides:
// a total color function of position. Implementations must handle every t,
// including NaN and out-of-domain values.
type Evaluator interface {
	At(t float64) Color
}

// Gradient is an immutable, evaluable color gradient over a [min, max]
// domain. The zero Gradient evaluates to opaque black everywhere.
//
// Gradient is a small value; copies share the underlying immutable stop
// data and are safe for concurrent readers.
type Gradient struct {
	eval       Evaluator
	dmin, dmax float64
}

// NewGradient wraps an Evaluator into a Gradient with the given domain.
// A degenerate domain (dmin >= dmax) falls back to [0, 1].
func NewGradient(eval Evaluator, dmin, dmax float64) Gradient {
	if !(dmin < dmax) {
		dmin, dmax = 0, 1
	}
	return Gradient{eval: eval, dmin: dmin, dmax: dmax}
}

// At returns the color at position t. Positions outside the domain clamp
// to the endpoint colors; NaN evaluates to opaque black.
func (g Gradient) At(t float64) Color {
	if g.eval == nil {
		return Black
	}
	return g.eval.At(t)
}

// Domain returns the gradient's position range.
func (g Gradient) Domain() (min, max float64) {
	if g.eval == nil {
		return 0, 1
	}
	return g.dmin, g.dmax
}

// RepeatAt returns the color at t with the domain tiled periodically.
func (g Gradient) RepeatAt(t float64) Color {
	dmin, dmax := g.Domain()
	u := norm(t, dmin, dmax)
	return g.At(dmin + modulo(u, 1)*(dmax-dmin))
}

// ReflectAt returns the color at t with the domain mirrored at both
// boundaries (ping-pong).
func (g Gradient) ReflectAt(t float64) Color {
	dmin, dmax := g.Domain()
	u := norm(t, dmin, dmax)
	return g.At(dmin + math.Abs(modulo(1+u, 2)-1)*(dmax-dmin))
}

// Colors returns n colors evenly spaced across the domain.
func (g Gradient) Colors(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	dmin, dmax := g.Domain()
	if n == 1 {
		out[0] = g.At(dmin)
		return out
	}
	d := dmax - dmin
	l := float64(n - 1)
	for i := range out {
		out[i] = g.At(dmin + float64(i)*d/l)
	}
	return out
}

// Sharp returns a hard-edged gradient with the given number of flat color
// bands sampled evenly from g. smoothness in [0, 1] widens the transition
// between adjacent bands from an instantaneous step to a smoothstep ramp.
func (g Gradient) Sharp(segments int, smoothness float64) Gradient {
	dmin, dmax := g.Domain()
	var colors []Color
	if segments > 1 {
		colors = make([]Color, 0, segments)
		for _, t := range linspace(dmin, dmax, segments) {
			colors = append(colors, g.At(t))
		}
	} else {
		colors = []Color{g.At(dmin), g.At(dmin)}
	}
	return Gradient{
		eval: newSharpEvaluator(colors, dmin, dmax, smoothness),
		dmin: dmin,
		dmax: dmax,
	}
}

// Inverse returns a gradient evaluating g right-to-left: the color at the
// domain minimum becomes the color at the maximum and vice versa. The
// domain itself is unchanged.
func (g Gradient) Inverse() Gradient {
	dmin, dmax := g.Domain()
	return Gradient{eval: inverseEvaluator{inner: g}, dmin: dmin, dmax: dmax}
}

// segmentIndex returns the index i >= 1 such that t lies in the segment
// [positions[i-1], positions[i]]. The caller guarantees
// positions[0] < t < positions[len-1].
func segmentIndex(positions []float64, t float64) int {
	i := sort.SearchFloat64s(positions, t)
	if i == 0 {
		i = 1
	}
	if i > len(positions)-1 {
		i = len(positions) - 1
	}
	return i
}

// linspace returns n evenly spaced values over [min, max], the first
// exactly min and the last exactly max.
func linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	d := max - min
	l := float64(n - 1)
	for i := range out {
		out[i] = min + float64(i)*d/l
	}
	return out
}

// modulo is the positive remainder of x/y.
func modulo(x, y float64) float64 {
	return math.Mod(math.Mod(x, y)+y, y)
}

// norm maps t from [a, b] to [0, 1].
func norm(t, a, b float64) float64 {
	return (t - a) * (1 / (b - a))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

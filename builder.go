package ramp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Builder errors. Wrapped errors carry the specific offending input; test
// with errors.Is.
var (
	// ErrInvalidColors reports color tokens that failed to parse. All bad
	// tokens are collected and reported together.
	ErrInvalidColors = errors.New("ramp: invalid colors")
	// ErrInvalidCSSGradient reports a malformed CSS gradient stop list.
	ErrInvalidCSSGradient = errors.New("ramp: invalid css gradient")
	// ErrWrongDomainCount reports a Domain call whose length is neither
	// 2 nor the number of colors.
	ErrWrongDomainCount = errors.New("ramp: wrong domain count")
	// ErrWrongDomain reports decreasing or degenerate positions.
	ErrWrongDomain = errors.New("ramp: wrong domain")
	// ErrTooFewStops reports a stop table that collapsed below two
	// distinct stops after coalescing.
	ErrTooFewStops = errors.New("ramp: too few stops after coalescing")
)

// coalesceEpsilon is the position gap below which neighboring stops are
// considered degenerate and coalesced.
const coalesceEpsilon = 1e-7

// GradientBuilder assembles colors, positions, and a blend mode into a
// Gradient. Methods chain; Build validates the accumulated state and may
// be called multiple times with different kernels.
//
//	g, err := ramp.NewGradientBuilder().
//		HTMLColors("gold", "#1e90ff").
//		Domain(0, 100).
//		Mode(ramp.BlendOklab).
//		Build(ramp.InterpolationLinear)
type GradientBuilder struct {
	colors        []Color
	positions     []float64
	mode          BlendMode
	invalidColors []string
	invalidCSS    bool
}

// NewGradientBuilder returns a builder with no stops, the [0, 1] domain,
// and RGB blending.
func NewGradientBuilder() *GradientBuilder {
	return &GradientBuilder{mode: BlendRGB}
}

// Colors appends gradient stop colors.
func (b *GradientBuilder) Colors(colors ...Color) *GradientBuilder {
	b.colors = append(b.colors, colors...)
	return b
}

// HTMLColors appends stop colors given in CSS color formats (see
// ParseColor). Invalid tokens are collected and surface as
// ErrInvalidColors from Build.
func (b *GradientBuilder) HTMLColors(tokens ...string) *GradientBuilder {
	for _, s := range tokens {
		c, err := ParseColor(s)
		if err != nil {
			b.invalidColors = append(b.invalidColors, s)
			continue
		}
		b.colors = append(b.colors, c)
	}
	return b
}

// Domain sets the stop positions. Two values set an evenly spaced domain
// for all colors; one value per color positions each stop explicitly.
func (b *GradientBuilder) Domain(positions ...float64) *GradientBuilder {
	b.positions = append(b.positions[:0], positions...)
	return b
}

// Mode sets the color blending mode. When combined with CSS, call Mode
// first so implicit mid-colors blend in the requested space.
func (b *GradientBuilder) Mode(mode BlendMode) *GradientBuilder {
	b.mode = mode
	return b
}

// CSS replaces the builder's colors and positions with the result of
// parsing a CSS gradient stop list, e.g. "gold, 30%, tomato 60%, #223".
// Positions are resolved against the [0, 1] domain.
func (b *GradientBuilder) CSS(s string) *GradientBuilder {
	colors, positions, ok := parseCSSGradient(s, 0, 1, b.mode)
	if !ok {
		b.invalidCSS = true
		return b
	}
	b.invalidCSS = false
	b.colors = colors
	b.positions = positions
	return b
}

// Build validates the accumulated stops and constructs a gradient with
// the given interpolation kernel.
func (b *GradientBuilder) Build(interp Interpolation) (Gradient, error) {
	colors, positions, err := b.normalize()
	if err != nil {
		return Gradient{}, err
	}

	var eval Evaluator
	switch interp {
	case InterpolationCatmullRom:
		eval = newCatmullRomEvaluator(colors, positions, b.mode)
	case InterpolationBasis:
		eval = newBasisEvaluator(colors, positions, b.mode)
	case InterpolationSmoothstep:
		eval = newSmoothstepEvaluator(colors, positions, b.mode)
	default:
		eval = newLinearEvaluator(colors, positions, b.mode)
	}

	Logger().Debug("ramp: gradient built",
		slog.Int("stops", len(colors)),
		slog.String("interpolation", interp.String()),
		slog.String("mode", b.mode.String()))

	return Gradient{
		eval: eval,
		dmin: positions[0],
		dmax: positions[len(positions)-1],
	}, nil
}

// normalize turns the raw builder state into a sorted, coalesced,
// validated stop table. It does not mutate the builder; Build may be
// called repeatedly.
func (b *GradientBuilder) normalize() ([]Color, []float64, error) {
	if len(b.invalidColors) > 0 {
		return nil, nil, fmt.Errorf("%w: %s",
			ErrInvalidColors, strings.Join(b.invalidColors, ", "))
	}
	if b.invalidCSS {
		return nil, nil, ErrInvalidCSSGradient
	}

	var colors []Color
	switch len(b.colors) {
	case 0:
		colors = []Color{Black, White}
	case 1:
		colors = []Color{b.colors[0], b.colors[0]}
	default:
		colors = append(colors, b.colors...)
	}

	var positions []float64
	switch {
	case len(b.positions) == 0:
		positions = linspace(0, 1, len(colors))
	case len(b.positions) == len(colors):
		for i := 0; i < len(b.positions)-1; i++ {
			if b.positions[i] > b.positions[i+1] {
				return nil, nil, fmt.Errorf("%w: positions must be non-decreasing", ErrWrongDomain)
			}
		}
		positions = append(positions, b.positions...)
	case len(b.positions) == 2:
		if b.positions[0] >= b.positions[1] {
			return nil, nil, fmt.Errorf("%w: min must be below max", ErrWrongDomain)
		}
		positions = linspace(b.positions[0], b.positions[1], len(colors))
	default:
		return nil, nil, fmt.Errorf("%w: got %d positions for %d colors",
			ErrWrongDomainCount, len(b.positions), len(colors))
	}

	colors, positions = coalesceStops(colors, positions)

	if len(positions) < 2 || !(positions[0] < positions[len(positions)-1]) {
		return nil, nil, ErrTooFewStops
	}
	return colors, positions, nil
}

// coalesceStops drops interior stops whose combined distance to both
// neighbors is below coalesceEpsilon, keeping the earliest stop of each
// collapsed run with its color. Double stops that define hard edges keep
// both members because one of their gaps is wide.
func coalesceStops(colors []Color, positions []float64) ([]Color, []float64) {
	n := len(positions)
	if n < 3 {
		return colors, positions
	}
	outC := colors[:0]
	outP := positions[:0]
	for i := 0; i < n; i++ {
		if i > 0 && i < n-1 && positions[i+1]-positions[i-1] < coalesceEpsilon {
			continue
		}
		outC = append(outC, colors[i])
		outP = append(outP, positions[i])
	}
	return outC, outP
}

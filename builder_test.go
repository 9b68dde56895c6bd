package ramp

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder(), InterpolationLinear)

	if dmin, dmax := g.Domain(); dmin != 0 || dmax != 1 {
		t.Errorf("Domain() = (%v, %v), want (0, 1)", dmin, dmax)
	}
	checkHex(t, g.At(0), "#000000")
	checkHex(t, g.At(0.5), "#808080")
	checkHex(t, g.At(1), "#ffffff")
}

func TestBuilderSingleColor(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0)), InterpolationLinear)

	for _, tt := range []float64{-1, 0, 0.33, 1, 2} {
		checkHex(t, g.At(tt), "#ff0000")
	}
}

func TestBuilderDomain(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 0, 1)).
		Domain(-100, 100), InterpolationLinear)

	checkHex(t, g.At(-100), "#ff0000")
	checkHex(t, g.At(0), "#800080")
	checkHex(t, g.At(100), "#0000ff")

	// Out-of-domain positions clamp to the endpoint colors.
	checkHex(t, g.At(-500), "#ff0000")
	checkHex(t, g.At(500), "#0000ff")
}

func TestBuilderPositionPerColor(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		HTMLColors("red", "lime", "blue").
		Domain(0, 0.75, 1), InterpolationLinear)

	checkHex(t, g.At(0), "#ff0000")
	checkHex(t, g.At(0.75), "#00ff00")
	checkHex(t, g.At(1), "#0000ff")
}

func TestBuilderHTMLColors(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		HTMLColors("#00f", "hsv(120, 100%, 100%)", "gold"), InterpolationLinear)

	checkHex(t, g.At(0), "#0000ff")
	checkHex(t, g.At(0.5), "#00ff00")
	checkHex(t, g.At(1), "#ffd700")
}

func TestBuilderInvalidColors(t *testing.T) {
	_, err := NewGradientBuilder().
		HTMLColors("red", "#zzz", "bloo").
		Build(InterpolationLinear)
	if !errors.Is(err, ErrInvalidColors) {
		t.Fatalf("got %v, want ErrInvalidColors", err)
	}
	// All offending tokens are reported.
	for _, tok := range []string{"#zzz", "bloo"} {
		if !strings.Contains(err.Error(), tok) {
			t.Errorf("error %q does not mention %q", err, tok)
		}
	}
}

func TestBuilderDomainErrors(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		want      error
	}{
		{"decreasing pair", []float64{1, 0}, ErrWrongDomain},
		{"degenerate pair", []float64{0.5, 0.5}, ErrTooFewStops},
		{"wrong count", []float64{0, 0.5, 1}, ErrWrongDomainCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradientBuilder().
				Colors(RGB(1, 0, 0), RGB(0, 0, 1)).
				Domain(tt.positions...).
				Build(InterpolationLinear)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	// Non-decreasing check on the per-color form.
	_, err := NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)).
		Domain(0, 0.8, 0.5).
		Build(InterpolationLinear)
	if !errors.Is(err, ErrWrongDomain) {
		t.Errorf("got %v, want ErrWrongDomain", err)
	}

	// A degenerate evenly spaced domain for three colors.
	_, err = NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)).
		Domain(2, 2).
		Build(InterpolationLinear)
	if !errors.Is(err, ErrWrongDomain) {
		t.Errorf("got %v, want ErrWrongDomain", err)
	}
}

func TestBuilderCoalescing(t *testing.T) {
	// All stops at the same position collapse below two distinct stops.
	_, err := NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)).
		Domain(0.5, 0.5, 0.5).
		Build(InterpolationLinear)
	if !errors.Is(err, ErrTooFewStops) {
		t.Fatalf("got %v, want ErrTooFewStops", err)
	}

	// An interior run at one position coalesces but the gradient survives.
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1), White, Black).
		Domain(0, 0.5, 0.5, 0.5, 1), InterpolationLinear)
	checkHex(t, g.At(0), "#ff0000")
	checkHex(t, g.At(0.75), "#808080")
	checkHex(t, g.At(1), "#000000")

	// Hard-edge double stops are preserved.
	g = mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(1, 0, 0), RGB(0, 0, 1), RGB(0, 0, 1)).
		Domain(0, 0.5, 0.5, 1), InterpolationLinear)
	checkHex(t, g.At(0.49), "#ff0000")
	checkHex(t, g.At(0.51), "#0000ff")
}

func TestBuilderCSS(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		CSS("#f00, #00f 75%, #0f0"), InterpolationLinear)

	checkHex(t, g.At(0), "#ff0000")
	checkHex(t, g.At(0.75), "#0000ff")
	checkHex(t, g.At(1), "#00ff00")
}

func TestBuilderCSSInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"red, not-a-color, blue",
		"red, 30%, 70%, blue", // adjacent colorless stops
	} {
		_, err := NewGradientBuilder().CSS(s).Build(InterpolationLinear)
		if !errors.Is(err, ErrInvalidCSSGradient) {
			t.Errorf("CSS(%q): got %v, want ErrInvalidCSSGradient", s, err)
		}
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewGradientBuilder().Colors(RGB(1, 0, 0), RGB(0, 0, 1))

	lin := mustBuild(t, b, InterpolationLinear)
	cat := mustBuild(t, b, InterpolationCatmullRom)

	checkHex(t, lin.At(0), "#ff0000")
	checkHex(t, cat.At(0), "#ff0000")
	checkHex(t, lin.At(1), "#0000ff")
	checkHex(t, cat.At(1), "#0000ff")
}

func TestBuilderHSVMode(t *testing.T) {
	// Red to blue in HSV takes the short hue arc through magenta.
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 0, 1)).
		Mode(BlendHSV), InterpolationLinear)
	checkHex(t, g.At(0.5), "#ff00ff")

	// Magenta to yellow wraps through red.
	g = mustBuild(t, NewGradientBuilder().
		HTMLColors("#ff00ff", "#ffff00").
		Mode(BlendHSV), InterpolationLinear)
	checkHex(t, g.At(0.5), "#ff0000")
}

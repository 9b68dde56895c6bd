package ramp

import (
	"math"
	"testing"
)

func TestSharpBands(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		HTMLColors("red", "lime", "blue"), InterpolationLinear)
	s := g.Sharp(3, 0)

	tests := []struct {
		t    float64
		want string
	}{
		{0, "#ff0000"},
		{0.1, "#ff0000"},
		{0.25, "#ff0000"},
		{0.4, "#00ff00"},
		{0.5, "#00ff00"},
		{0.6, "#00ff00"},
		{0.75, "#0000ff"},
		{0.9, "#0000ff"},
		{1, "#0000ff"},
	}
	for _, tt := range tests {
		if got := s.At(tt.t).HexString(); got != tt.want {
			t.Errorf("At(%v) = %s, want %s", tt.t, got, tt.want)
		}
	}

	checkHex(t, s.At(-1), "#ff0000")
	checkHex(t, s.At(2), "#0000ff")
	checkHex(t, s.At(math.NaN()), "#000000")
}

func TestSharpDomain(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 0, 1)).
		Domain(-1, 1), InterpolationLinear)
	s := g.Sharp(2, 0)

	if dmin, dmax := s.Domain(); dmin != -1 || dmax != 1 {
		t.Errorf("Domain() = (%v, %v), want (-1, 1)", dmin, dmax)
	}
	checkHex(t, s.At(-0.5), "#ff0000")
	checkHex(t, s.At(0.5), "#0000ff")
}

func TestSharpDegenerateSegments(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 0, 1)), InterpolationLinear)

	// Fewer than two bands collapse to the first color.
	for _, n := range []int{0, 1} {
		s := g.Sharp(n, 0)
		for _, tt := range []float64{0, 0.3, 0.7, 1} {
			checkHex(t, s.At(tt), "#ff0000")
		}
	}
}

func TestSharpSmoothness(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		HTMLColors("red", "lime", "blue"), InterpolationLinear)
	s := g.Sharp(3, 0.1)

	// Away from the band edges the colors stay flat.
	checkHex(t, s.At(0.1), "#ff0000")
	checkHex(t, s.At(0.3), "#ff0000")
	checkHex(t, s.At(0.5), "#00ff00")
	checkHex(t, s.At(0.9), "#0000ff")

	// The edge itself is the halfway blend of the adjacent bands.
	if got := s.At(1.0 / 3); !colorsEqual(got, RGB(0.5, 0.5, 0), 1e-9) {
		t.Errorf("At(1/3) = %+v, want halfway red/green", got)
	}
	if got := s.At(2.0 / 3); !colorsEqual(got, RGB(0, 0.5, 0.5), 1e-9) {
		t.Errorf("At(2/3) = %+v, want halfway green/blue", got)
	}
}

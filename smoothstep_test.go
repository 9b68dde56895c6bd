package ramp

import (
	"math"
	"testing"
)

func TestSmoothstepMidpoint(t *testing.T) {
	// The ease is symmetric, so the midpoint matches the linear kernel.
	g := mustBuild(t, NewGradientBuilder(), InterpolationSmoothstep)

	checkHex(t, g.At(0), "#000000")
	checkHex(t, g.At(0.5), "#808080")
	checkHex(t, g.At(1), "#ffffff")
}

func TestSmoothstepEase(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder(), InterpolationSmoothstep)

	// 3t²−2t³ at t=0.25 is 0.15625.
	want := smoothstepUnit(0.25)
	if math.Abs(want-0.15625) > 1e-12 {
		t.Fatalf("smoothstepUnit(0.25) = %v, want 0.15625", want)
	}
	if got := g.At(0.25); math.Abs(got.R-want) > 1e-12 {
		t.Errorf("At(0.25).R = %v, want %v", got.R, want)
	}

	// The curve eases in below and out above the straight line.
	if got := g.At(0.25); got.R >= 0.25 {
		t.Errorf("At(0.25).R = %v, want < 0.25", got.R)
	}
	if got := g.At(0.75); got.R <= 0.75 {
		t.Errorf("At(0.75).R = %v, want > 0.75", got.R)
	}
}

func TestSmoothstepStopsAndClamp(t *testing.T) {
	g := mustBuild(t, NewGradientBuilder().
		Colors(RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)).
		Domain(0, 0.25, 1), InterpolationSmoothstep)

	checkHex(t, g.At(0.25), "#00ff00")
	checkHex(t, g.At(-1), "#ff0000")
	checkHex(t, g.At(2), "#0000ff")
	checkHex(t, g.At(math.NaN()), "#000000")
}

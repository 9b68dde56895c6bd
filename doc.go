// Package ramp provides color gradients for Go.
//
// # Overview
//
// ramp builds continuous color functions from discrete color stops and
// evaluates them at arbitrary positions. It is designed for data
// visualization, heatmaps, charts, generative art, and anywhere else a
// color needs to be computed per pixel: evaluation is deterministic,
// allocation-free, and O(log n) in the number of stops.
//
// # Quick Start
//
//	import "github.com/gogpu/ramp"
//
//	g, err := ramp.NewGradientBuilder().
//		HTMLColors("deeppink", "gold", "seagreen").
//		Build(ramp.InterpolationLinear)
//	if err != nil {
//		// invalid colors, domain, or stop table
//	}
//
//	c := g.At(0.5)
//	fmt.Println(c.HexString())
//
// # Gradients
//
// A Gradient is built once and is immutable afterwards; concurrent readers
// need no locking. Stops may be interpolated with four kernels
// (linear, centripetal Catmull-Rom, uniform cubic B-spline "basis", and
// smoothstep) in five color spaces (RGB, linear RGB, Oklab, CIE Lab, HSV).
// Out-of-domain positions clamp to the endpoint colors; RepeatAt and
// ReflectAt tile or mirror the domain instead. NaN positions evaluate to
// opaque black.
//
// Gradients can also be loaded from a CSS gradient stop list
// (GradientBuilder.CSS), from a GIMP gradient file (ParseGGR), or taken
// from the preset collection (Viridis, Turbo, Rainbow, ...). Any gradient
// can be re-quantized into hard-edged bands (Sharp), reversed (Inverse),
// or approximated by a minimal piecewise-linear gradient (Linearize).
//
// # Logging
//
// ramp produces no log output by default. Call SetLogger to enable
// diagnostics from the builder and the linearizer.
package ramp

// Command rampdemo renders a gradient to a PNG strip.
//
// Examples:
//
//	rampdemo -preset viridis -output viridis.png
//	rampdemo -css "deeppink, gold, seagreen" -mode oklab -output ramp.png
//	rampdemo -ggr Sunrise.ggr -output sunrise.png
//	rampdemo -preset rainbow -sharp 11 -output bands.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/gogpu/ramp"
)

func main() {
	var (
		css           = flag.String("css", "", "CSS gradient stop list, e.g. \"red, gold 50%, blue\"")
		ggr           = flag.String("ggr", "", "GIMP gradient (.ggr) file")
		preset        = flag.String("preset", "", "preset gradient name (viridis, turbo, ...)")
		mode          = flag.String("mode", "rgb", "blend mode: rgb, linear-rgb, oklab, lab, hsv")
		interpolation = flag.String("interpolation", "linear", "kernel: linear, catmull-rom, basis, smoothstep")
		sharp         = flag.Int("sharp", 0, "re-quantize into n hard-edged bands")
		smoothness    = flag.Float64("smoothness", 0, "transition band smoothness in [0, 1] for -sharp")
		width         = flag.Int("width", 800, "image width")
		height        = flag.Int("height", 60, "image height")
		output        = flag.String("output", "gradient.png", "output file")
	)
	flag.Parse()

	g, err := buildGradient(*css, *ggr, *preset, *mode, *interpolation)
	if err != nil {
		log.Fatalf("rampdemo: %v", err)
	}
	if *sharp > 0 {
		g = g.Sharp(*sharp, *smoothness)
	}

	if err := writeStrip(g, *width, *height, *output); err != nil {
		log.Fatalf("rampdemo: %v", err)
	}
	log.Printf("gradient saved to %s (%dx%d)", *output, *width, *height)
}

func buildGradient(css, ggr, preset, mode, interpolation string) (ramp.Gradient, error) {
	switch {
	case preset != "":
		g, ok := ramp.Preset(preset)
		if !ok {
			return ramp.Gradient{}, fmt.Errorf("unknown preset %q (have: %s)",
				preset, strings.Join(ramp.PresetNames(), ", "))
		}
		return g, nil

	case ggr != "":
		f, err := os.Open(ggr)
		if err != nil {
			return ramp.Gradient{}, err
		}
		defer f.Close()
		g, name, err := ramp.ParseGGR(f, ramp.Black, ramp.White)
		if err != nil {
			return ramp.Gradient{}, err
		}
		log.Printf("loaded GIMP gradient %q", name)
		return g, nil

	case css != "":
		m, err := parseMode(mode)
		if err != nil {
			return ramp.Gradient{}, err
		}
		i, err := parseInterpolation(interpolation)
		if err != nil {
			return ramp.Gradient{}, err
		}
		return ramp.NewGradientBuilder().Mode(m).CSS(css).Build(i)
	}
	return ramp.Gradient{}, fmt.Errorf("one of -css, -ggr, or -preset is required")
}

func parseMode(s string) (ramp.BlendMode, error) {
	for _, m := range []ramp.BlendMode{
		ramp.BlendRGB, ramp.BlendLinearRGB, ramp.BlendOklab, ramp.BlendLab, ramp.BlendHSV,
	} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", s)
}

func parseInterpolation(s string) (ramp.Interpolation, error) {
	for _, i := range []ramp.Interpolation{
		ramp.InterpolationLinear, ramp.InterpolationCatmullRom,
		ramp.InterpolationBasis, ramp.InterpolationSmoothstep,
	} {
		if i.String() == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

func writeStrip(g ramp.Gradient, width, height int, path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	dmin, dmax := g.Domain()
	for x := 0; x < width; x++ {
		t := dmin + (dmax-dmin)*float64(x)/float64(width-1)
		c := g.At(t).NRGBA()
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

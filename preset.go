package ramp

import (
	"math"
	"sort"
)

// Preset gradients. All presets have the domain [0, 1]. The functional
// presets (Sinebow, Turbo, Cividis, the cubehelix family) evaluate a
// closed-form color curve; the color-scheme presets (Viridis, Spectral,
// Blues, ...) run a basis spline through fixed color tables.

// evalFunc adapts a plain function to the Evaluator interface.
type evalFunc func(t float64) Color

func (f evalFunc) At(t float64) Color { return f(t) }

// Sinebow returns the sinebow rainbow gradient.
func Sinebow() Gradient {
	return NewGradient(evalFunc(func(t float64) Color {
		t = (0.5 - t) * math.Pi
		r := math.Sin(t)
		g := math.Sin(t + math.Pi/3)
		b := math.Sin(t + 2*math.Pi/3)
		return RGB(clamp(r*r, 0, 1), clamp(g*g, 0, 1), clamp(b*b, 0, 1))
	}), 0, 1)
}

// Turbo returns Google's Turbo colormap, a perceptually smoother
// replacement for Jet.
func Turbo() Gradient {
	return NewGradient(evalFunc(func(t float64) Color {
		t = clamp(t, 0, 1)
		r := math.Round(34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05)))))
		g := math.Round(23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56)))))
		b := math.Round(27.2 + t*(3211.1-t*(15327.97-t*(27814.0-t*(22569.18-t*6838.66)))))
		return RGB(clamp(r/255, 0, 1), clamp(g/255, 0, 1), clamp(b/255, 0, 1))
	}), 0, 1)
}

// Cividis returns the cividis colormap, optimized for color vision
// deficiency.
func Cividis() Gradient {
	return NewGradient(evalFunc(func(t float64) Color {
		t = clamp(t, 0, 1)
		r := math.Round(-4.54 - t*(35.34-t*(2381.73-t*(6402.7-t*(7024.72-t*2710.57)))))
		g := math.Round(32.49 + t*(170.73+t*(52.82-t*(131.46-t*(176.58-t*67.37)))))
		b := math.Round(81.24 + t*(442.36-t*(2482.43-t*(6167.24-t*(6614.94-t*2475.67)))))
		return RGB(clamp(r/255, 0, 1), clamp(g/255, 0, 1), clamp(b/255, 0, 1))
	}), 0, 1)
}

// cubehelix is Dave Green's color scheme: a helix around the diagonal of
// the RGB cube, parameterized by hue (degrees), saturation and lightness.
type cubehelix struct {
	h, s, l float64
}

func (c cubehelix) toColor() Color {
	h := (c.h + 120) * (math.Pi / 180)
	l := c.l
	a := c.s * l * (1 - l)

	cosh := math.Cos(h)
	sinh := math.Sin(h)

	r := l - a*(0.14861*cosh-1.78277*sinh)
	g := l - a*(0.29227*cosh+0.90649*sinh)
	b := l + a*(1.97294*cosh)
	return RGB(clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1))
}

func (c cubehelix) interpolate(other cubehelix, t float64) cubehelix {
	return cubehelix{
		h: c.h + t*(other.h-c.h),
		s: c.s + t*(other.s-c.s),
		l: c.l + t*(other.l-c.l),
	}
}

func cubehelixGradient(start, end cubehelix) Gradient {
	return NewGradient(evalFunc(func(t float64) Color {
		return start.interpolate(end, clamp(t, 0, 1)).toColor()
	}), 0, 1)
}

// CubehelixDefault returns the default cubehelix gradient, black to white
// through a full hue rotation.
func CubehelixDefault() Gradient {
	return cubehelixGradient(
		cubehelix{h: 300, s: 0.5, l: 0},
		cubehelix{h: -240, s: 0.5, l: 1})
}

// Warm returns a warm-hued cubehelix gradient.
func Warm() Gradient {
	return cubehelixGradient(
		cubehelix{h: -100, s: 0.75, l: 0.35},
		cubehelix{h: 80, s: 1.5, l: 0.8})
}

// Cool returns a cool-hued cubehelix gradient.
func Cool() Gradient {
	return cubehelixGradient(
		cubehelix{h: 260, s: 0.75, l: 0.35},
		cubehelix{h: 80, s: 1.5, l: 0.8})
}

// Rainbow returns the cubehelix-based rainbow, a less saturated
// alternative to Sinebow.
func Rainbow() Gradient {
	return NewGradient(evalFunc(func(t float64) Color {
		t = clamp(t, 0, 1)
		ts := math.Abs(t - 0.5)
		return cubehelix{
			h: 360*t - 100,
			s: 1.5 - 1.5*ts,
			l: 0.8 - 0.9*ts,
		}.toColor()
	}), 0, 1)
}

// buildPreset runs a basis spline through a packed 0xRRGGBB color table.
func buildPreset(table []uint32) Gradient {
	colors := make([]Color, len(table))
	for i, v := range table {
		colors[i] = FromRGBA8(uint8(v>>16), uint8(v>>8), uint8(v), 255)
	}
	positions := linspace(0, 1, len(colors))
	return Gradient{
		eval: newBasisEvaluator(colors, positions, BlendRGB),
		dmin: 0,
		dmax: 1,
	}
}

// Diverging color schemes (ColorBrewer).

func BrBG() Gradient {
	return buildPreset([]uint32{0x543005, 0x8c510a, 0xbf812d, 0xdfc27d, 0xf6e8c3, 0xf5f5f5, 0xc7eae5, 0x80cdc1, 0x35978f, 0x01665e, 0x003c30})
}

func PRGn() Gradient {
	return buildPreset([]uint32{0x40004b, 0x762a83, 0x9970ab, 0xc2a5cf, 0xe7d4e8, 0xf7f7f7, 0xd9f0d3, 0xa6dba0, 0x5aae61, 0x1b7837, 0x00441b})
}

func PiYG() Gradient {
	return buildPreset([]uint32{0x8e0152, 0xc51b7d, 0xde77ae, 0xf1b6da, 0xfde0ef, 0xf7f7f7, 0xe6f5d0, 0xb8e186, 0x7fbc41, 0x4d9221, 0x276419})
}

func PuOr() Gradient {
	return buildPreset([]uint32{0x2d004b, 0x542788, 0x8073ac, 0xb2abd2, 0xd8daeb, 0xf7f7f7, 0xfee0b6, 0xfdb863, 0xe08214, 0xb35806, 0x7f3b08})
}

func RdBu() Gradient {
	return buildPreset([]uint32{0x67001f, 0xb2182b, 0xd6604d, 0xf4a582, 0xfddbc7, 0xf7f7f7, 0xd1e5f0, 0x92c5de, 0x4393c3, 0x2166ac, 0x053061})
}

func RdGy() Gradient {
	return buildPreset([]uint32{0x67001f, 0xb2182b, 0xd6604d, 0xf4a582, 0xfddbc7, 0xffffff, 0xe0e0e0, 0xbababa, 0x878787, 0x4d4d4d, 0x1a1a1a})
}

func RdYlBu() Gradient {
	return buildPreset([]uint32{0xa50026, 0xd73027, 0xf46d43, 0xfdae61, 0xfee090, 0xffffbf, 0xe0f3f8, 0xabd9e9, 0x74add1, 0x4575b4, 0x313695})
}

func RdYlGn() Gradient {
	return buildPreset([]uint32{0xa50026, 0xd73027, 0xf46d43, 0xfdae61, 0xfee08b, 0xffffbf, 0xd9ef8b, 0xa6d96a, 0x66bd63, 0x1a9850, 0x006837})
}

func Spectral() Gradient {
	return buildPreset([]uint32{0x9e0142, 0xd53e4f, 0xf46d43, 0xfdae61, 0xfee08b, 0xffffbf, 0xe6f598, 0xabdda4, 0x66c2a5, 0x3288bd, 0x5e4fa2})
}

// Sequential, single hue (ColorBrewer).

func Blues() Gradient {
	return buildPreset([]uint32{0xf7fbff, 0xdeebf7, 0xc6dbef, 0x9ecae1, 0x6baed6, 0x4292c6, 0x2171b5, 0x08519c, 0x08306b})
}

func Greens() Gradient {
	return buildPreset([]uint32{0xf7fcf5, 0xe5f5e0, 0xc7e9c0, 0xa1d99b, 0x74c476, 0x41ab5d, 0x238b45, 0x006d2c, 0x00441b})
}

func Greys() Gradient {
	return buildPreset([]uint32{0xffffff, 0xf0f0f0, 0xd9d9d9, 0xbdbdbd, 0x969696, 0x737373, 0x525252, 0x252525, 0x000000})
}

func Oranges() Gradient {
	return buildPreset([]uint32{0xfff5eb, 0xfee6ce, 0xfdd0a2, 0xfdae6b, 0xfd8d3c, 0xf16913, 0xd94801, 0xa63603, 0x7f2704})
}

func Purples() Gradient {
	return buildPreset([]uint32{0xfcfbfd, 0xefedf5, 0xdadaeb, 0xbcbddc, 0x9e9ac8, 0x807dba, 0x6a51a3, 0x54278f, 0x3f007d})
}

func Reds() Gradient {
	return buildPreset([]uint32{0xfff5f0, 0xfee0d2, 0xfcbba1, 0xfc9272, 0xfb6a4a, 0xef3b2c, 0xcb181d, 0xa50f15, 0x67000d})
}

// Sequential, multi-hue.

func Viridis() Gradient {
	return buildPreset([]uint32{0x440154, 0x482777, 0x3f4a8a, 0x31678e, 0x26838f, 0x1f9d8a, 0x6cce5a, 0xb6de2b, 0xfee825})
}

func Inferno() Gradient {
	return buildPreset([]uint32{0x000004, 0x170b3a, 0x420a68, 0x6b176e, 0x932667, 0xbb3654, 0xdd513a, 0xf3771a, 0xfca50a, 0xf6d644, 0xfcffa4})
}

func Magma() Gradient {
	return buildPreset([]uint32{0x000004, 0x140e37, 0x3b0f70, 0x641a80, 0x8c2981, 0xb63679, 0xde4968, 0xf66f5c, 0xfe9f6d, 0xfece91, 0xfcfdbf})
}

func Plasma() Gradient {
	return buildPreset([]uint32{0x0d0887, 0x42039d, 0x6a00a8, 0x900da3, 0xb12a90, 0xcb4678, 0xe16462, 0xf1834b, 0xfca636, 0xfccd25, 0xf0f921})
}

func BuGn() Gradient {
	return buildPreset([]uint32{0xf7fcfd, 0xe5f5f9, 0xccece6, 0x99d8c9, 0x66c2a4, 0x41ae76, 0x238b45, 0x006d2c, 0x00441b})
}

func BuPu() Gradient {
	return buildPreset([]uint32{0xf7fcfd, 0xe0ecf4, 0xbfd3e6, 0x9ebcda, 0x8c96c6, 0x8c6bb1, 0x88419d, 0x810f7c, 0x4d004b})
}

func GnBu() Gradient {
	return buildPreset([]uint32{0xf7fcf0, 0xe0f3db, 0xccebc5, 0xa8ddb5, 0x7bccc4, 0x4eb3d3, 0x2b8cbe, 0x0868ac, 0x084081})
}

func OrRd() Gradient {
	return buildPreset([]uint32{0xfff7ec, 0xfee8c8, 0xfdd49e, 0xfdbb84, 0xfc8d59, 0xef6548, 0xd7301f, 0xb30000, 0x7f0000})
}

func PuBuGn() Gradient {
	return buildPreset([]uint32{0xfff7fb, 0xece2f0, 0xd0d1e6, 0xa6bddb, 0x67a9cf, 0x3690c0, 0x02818a, 0x016c59, 0x014636})
}

func PuBu() Gradient {
	return buildPreset([]uint32{0xfff7fb, 0xece7f2, 0xd0d1e6, 0xa6bddb, 0x74a9cf, 0x3690c0, 0x0570b0, 0x045a8d, 0x023858})
}

func PuRd() Gradient {
	return buildPreset([]uint32{0xf7f4f9, 0xe7e1ef, 0xd4b9da, 0xc994c7, 0xdf65b0, 0xe7298a, 0xce1256, 0x980043, 0x67001f})
}

func RdPu() Gradient {
	return buildPreset([]uint32{0xfff7f3, 0xfde0dd, 0xfcc5c0, 0xfa9fb5, 0xf768a1, 0xdd3497, 0xae017e, 0x7a0177, 0x49006a})
}

func YlGnBu() Gradient {
	return buildPreset([]uint32{0xffffd9, 0xedf8b1, 0xc7e9b4, 0x7fcdbb, 0x41b6c4, 0x1d91c0, 0x225ea8, 0x253494, 0x081d58})
}

func YlGn() Gradient {
	return buildPreset([]uint32{0xffffe5, 0xf7fcb9, 0xd9f0a3, 0xaddd8e, 0x78c679, 0x41ab5d, 0x238443, 0x006837, 0x004529})
}

func YlOrBr() Gradient {
	return buildPreset([]uint32{0xffffe5, 0xfff7bc, 0xfee391, 0xfec44f, 0xfe9929, 0xec7014, 0xcc4c02, 0x993404, 0x662506})
}

func YlOrRd() Gradient {
	return buildPreset([]uint32{0xffffcc, 0xffeda0, 0xfed976, 0xfeb24c, 0xfd8d3c, 0xfc4e2a, 0xe31a1c, 0xbd0026, 0x800026})
}

// presets maps lowercase preset names to their constructors, for lookup
// by name (CLI tools, config files).
var presets = map[string]func() Gradient{
	"sinebow":   Sinebow,
	"turbo":     Turbo,
	"cividis":   Cividis,
	"cubehelix": CubehelixDefault,
	"warm":      Warm,
	"cool":      Cool,
	"rainbow":   Rainbow,
	"brbg":      BrBG,
	"prgn":      PRGn,
	"piyg":      PiYG,
	"puor":      PuOr,
	"rdbu":      RdBu,
	"rdgy":      RdGy,
	"rdylbu":    RdYlBu,
	"rdylgn":    RdYlGn,
	"spectral":  Spectral,
	"blues":     Blues,
	"greens":    Greens,
	"greys":     Greys,
	"oranges":   Oranges,
	"purples":   Purples,
	"reds":      Reds,
	"viridis":   Viridis,
	"inferno":   Inferno,
	"magma":     Magma,
	"plasma":    Plasma,
	"bugn":      BuGn,
	"bupu":      BuPu,
	"gnbu":      GnBu,
	"orrd":      OrRd,
	"pubugn":    PuBuGn,
	"pubu":      PuBu,
	"purd":      PuRd,
	"rdpu":      RdPu,
	"ylgnbu":    YlGnBu,
	"ylgn":      YlGn,
	"ylorbr":    YlOrBr,
	"ylorrd":    YlOrRd,
}

// Preset returns the named preset gradient. Names are lowercase, e.g.
// "viridis", "turbo", "rdylbu".
func Preset(name string) (Gradient, bool) {
	f, ok := presets[name]
	if !ok {
		return Gradient{}, false
	}
	return f(), true
}

// PresetNames returns the sorted names of all preset gradients.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package ramp

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]; interpolation may
// produce values slightly outside that range, which are clamped only when
// the color is converted for display (RGBA8, HexString, NRGBA).
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGBA8 creates a color from 8-bit RGBA components.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// RGBA() returns alpha-premultiplied channels.
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// NRGBA converts the color to a standard non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// RGBA8 returns the color as 8-bit [r, g, b, a] values.
func (c Color) RGBA8() [4]uint8 {
	n := c.NRGBA()
	return [4]uint8{n.R, n.G, n.B, n.A}
}

// HexString returns the color as a CSS hex string, "#rrggbb" for opaque
// colors and "#rrggbbaa" otherwise.
func (c Color) HexString() string {
	v := c.RGBA8()
	if v[3] == 255 {
		return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", v[0], v[1], v[2], v[3])
}

// col returns the RGB part as a colorful.Color for color space conversions.
func (c Color) col() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// HSV returns the hue (degrees in [0, 360)), saturation and value of the
// color. The alpha component is unaffected by HSV conversions.
func (c Color) HSV() (h, s, v float64) {
	return c.col().Hsv()
}

// FromHSV creates a color from hue (degrees), saturation, value and alpha.
func FromHSV(h, s, v, a float64) Color {
	cc := colorful.Hsv(modulo(h, 360), s, v)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: a}
}

func (c Color) linearRGB() (r, g, b float64) {
	return c.col().LinearRgb()
}

func fromLinearRGB(r, g, b, a float64) Color {
	cc := colorful.LinearRgb(r, g, b)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: a}
}

func (c Color) lab() (l, a, b float64) {
	return c.col().Lab()
}

func fromLab(l, labA, labB, alpha float64) Color {
	cc := colorful.Lab(l, labA, labB)
	return Color{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}

// Oklab conversion after Björn Ottosson. go-colorful (v1.2.0) predates
// Oklab, so the two matrix products are carried here.

func (c Color) oklab() (l, a, b float64) {
	lr, lg, lb := c.linearRGB()

	l_ := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m_ := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s_ := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	l = 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_
	a = 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_
	b = 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_
	return l, a, b
}

func fromOklab(l, a, b, alpha float64) Color {
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	lr := 4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	lg := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	lb := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_
	return fromLinearRGB(lr, lg, lb, alpha)
}

// ParseColor parses a CSS color string. Supported formats:
//
//   - named colors ("red", "seagreen", "transparent")
//   - hex: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - rgb(), rgba() with 0-255 values or percentages
//   - hsl(), hsla()
//   - hsv() (not in the CSS standard)
//   - hwb()
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}

	if s == "transparent" {
		return Color{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return FromRGBA8(c.R, c.G, c.B, c.A), nil
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}
	fn := strings.TrimSpace(s[:open])
	args := splitArgs(s[open+1 : len(s)-1])

	switch fn {
	case "rgb", "rgba":
		return parseRGBFunc(s, args)
	case "hsl", "hsla":
		return parseHueFunc(s, args, func(h, x, y, a float64) Color {
			cc := colorful.Hsl(modulo(h, 360), x, y)
			return Color{R: cc.R, G: cc.G, B: cc.B, A: a}
		})
	case "hsv":
		return parseHueFunc(s, args, FromHSV)
	case "hwb":
		return parseHueFunc(s, args, fromHWB)
	}
	return Color{}, fmt.Errorf("ramp: invalid color %q", s)
}

func parseHexColor(hex string) (Color, error) {
	var v [4]uint64
	v[3] = 255

	digits := func(lo, hi int) (uint64, bool) {
		n, err := strconv.ParseUint(hex[lo:hi], 16, 32)
		return n, err == nil
	}

	ok := true
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, valid := digits(i, i+1)
			ok = ok && valid
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			n, valid := digits(i*2, i*2+2)
			ok = ok && valid
			v[i] = n
		}
	default:
		ok = false
	}
	if !ok {
		return Color{}, fmt.Errorf("ramp: invalid color %q", "#"+hex)
	}
	return FromRGBA8(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3])), nil
}

func parseRGBFunc(s string, args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}
	var ch [4]float64
	ch[3] = 1
	for i, arg := range args {
		var (
			v  float64
			ok bool
		)
		if i == 3 {
			v, ok = parseUnitValue(arg)
		} else {
			v, ok = parseByteValue(arg)
		}
		if !ok {
			return Color{}, fmt.Errorf("ramp: invalid color %q", s)
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parseHueFunc parses hsl()/hsv()/hwb() style functions: a hue in degrees,
// two percentage (or unit) components, and an optional alpha.
func parseHueFunc(s string, args []string, make func(h, x, y, a float64) Color) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}
	x, okX := parseUnitValue(args[1])
	y, okY := parseUnitValue(args[2])
	a, okA := 1.0, true
	if len(args) == 4 {
		a, okA = parseUnitValue(args[3])
	}
	if !okX || !okY || !okA {
		return Color{}, fmt.Errorf("ramp: invalid color %q", s)
	}
	return make(h, x, y, a), nil
}

func fromHWB(h, w, b, a float64) Color {
	if w+b >= 1 {
		g := w / (w + b)
		return Color{R: g, G: g, B: g, A: a}
	}
	v := 1 - b
	s := 1 - w/v
	return FromHSV(h, s, v, a)
}

// parseByteValue parses an rgb() channel: 0-255 or a percentage, scaled
// to [0, 1].
func parseByteValue(s string) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v / 255, err == nil
}

// parseUnitValue parses a [0, 1] value given as a number or a percentage.
func parseUnitValue(s string) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// splitArgs splits function arguments on commas, slashes, or whitespace.
func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)

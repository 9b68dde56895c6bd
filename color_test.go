package ramp

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  [4]uint8
	}{
		{"red", [4]uint8{255, 0, 0, 255}},
		{"Lime", [4]uint8{0, 255, 0, 255}},
		{" gold ", [4]uint8{255, 215, 0, 255}},
		{"seagreen", [4]uint8{46, 139, 87, 255}},
		{"transparent", [4]uint8{0, 0, 0, 0}},
		{"#ff0", [4]uint8{255, 255, 0, 255}},
		{"#ff00", [4]uint8{255, 255, 0, 0}},
		{"#1e90ff", [4]uint8{30, 144, 255, 255}},
		{"#ff000080", [4]uint8{255, 0, 0, 128}},
		{"rgb(255, 0, 0)", [4]uint8{255, 0, 0, 255}},
		{"rgb(100%, 0%, 50%)", [4]uint8{255, 0, 128, 255}},
		{"rgba(255, 0, 0, 0.5)", [4]uint8{255, 0, 0, 128}},
		{"rgb(255 0 0)", [4]uint8{255, 0, 0, 255}},
		{"hsl(120, 100%, 50%)", [4]uint8{0, 255, 0, 255}},
		{"hsla(120, 100%, 50%, 0.5)", [4]uint8{0, 255, 0, 128}},
		{"hsv(120, 100%, 100%)", [4]uint8{0, 255, 0, 255}},
		{"hsv(120deg, 100%, 100%)", [4]uint8{0, 255, 0, 255}},
		{"hwb(120, 0%, 0%)", [4]uint8{0, 255, 0, 255}},
		{"hwb(0, 100%, 100%)", [4]uint8{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.input, err)
			}
			if got := c.RGBA8(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	tests := []string{
		"",
		"#",
		"#12345",
		"#ggg",
		"bloodymary",
		"rgb(255, 0)",
		"rgb(255, 0, 0",
		"hsl(x, 100%, 50%)",
		"cmyk(0, 0, 0, 0)",
	}
	for _, s := range tests {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q) should fail", s)
		}
	}
}

func TestHexString(t *testing.T) {
	if got := FromRGBA8(127, 0, 5, 255).HexString(); got != "#7f0005" {
		t.Errorf("got %s, want #7f0005", got)
	}
	if got := FromRGBA8(255, 0, 0, 128).HexString(); got != "#ff000080" {
		t.Errorf("got %s, want #ff000080", got)
	}
}

func TestNRGBAClamp(t *testing.T) {
	c := Color{R: 1.5, G: -0.2, B: 0.5, A: 2}
	if got := c.NRGBA(); got != (color.NRGBA{R: 255, G: 0, B: 128, A: 255}) {
		t.Errorf("NRGBA() = %+v", got)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	checkHex(t, c, "#ff0000")

	// Premultiplied input is unpremultiplied.
	c = FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.A-0.5) > 0.01 {
		t.Errorf("FromColor premultiplied = %+v", c)
	}

	// Fully transparent input carries no color.
	if got := FromColor(color.RGBA{}); got != (Color{}) {
		t.Errorf("FromColor(transparent) = %+v", got)
	}
}

func TestOklabRoundtrip(t *testing.T) {
	colors := []Color{
		RGB(1, 0, 0),
		RGB(0, 0, 1),
		RGB(0.1, 0.7, 0.3),
		White,
		RGBA(0.25, 0.5, 0.75, 0.5),
	}
	for _, c := range colors {
		l, a, b := c.oklab()
		got := fromOklab(l, a, b, c.A)
		if !colorsEqual(got, c, 1e-6) {
			t.Errorf("oklab roundtrip of %+v = %+v", c, got)
		}
	}
}

func TestOklabWhite(t *testing.T) {
	// White is the Oklab reference point: L=1, a=b=0.
	l, a, b := White.oklab()
	if math.Abs(l-1) > 1e-3 || math.Abs(a) > 1e-3 || math.Abs(b) > 1e-3 {
		t.Errorf("White.oklab() = (%v, %v, %v), want (1, 0, 0)", l, a, b)
	}
}

func TestHSV(t *testing.T) {
	h, s, v := RGB(1, 0, 0).HSV()
	if h != 0 || s != 1 || v != 1 {
		t.Errorf("red HSV = (%v, %v, %v), want (0, 1, 1)", h, s, v)
	}

	checkHex(t, FromHSV(300, 1, 1, 1), "#ff00ff")
	// Hue wraps in both directions.
	checkHex(t, FromHSV(-60, 1, 1, 1), "#ff00ff")
	checkHex(t, FromHSV(420, 1, 1, 1), "#ffff00")
}

package ramp

// Blend-mode conversions between Color and the 4-component representation
// interpolation arithmetic runs in. The component layout per mode:
//
//	BlendRGB        [r, g, b, a]
//	BlendLinearRGB  [r, g, b, a] (linear)
//	BlendOklab      [l, a, b, alpha]
//	BlendLab        [l, a, b, alpha]
//	BlendHSV        [h, s, v, alpha] (h in degrees)

func toComponents(c Color, mode BlendMode) [4]float64 {
	switch mode {
	case BlendLinearRGB:
		r, g, b := c.linearRGB()
		return [4]float64{r, g, b, c.A}
	case BlendOklab:
		l, a, b := c.oklab()
		return [4]float64{l, a, b, c.A}
	case BlendLab:
		l, a, b := c.lab()
		return [4]float64{l, a, b, c.A}
	case BlendHSV:
		h, s, v := c.HSV()
		return [4]float64{h, s, v, c.A}
	}
	return [4]float64{c.R, c.G, c.B, c.A}
}

func fromComponents(v [4]float64, mode BlendMode) Color {
	switch mode {
	case BlendLinearRGB:
		return fromLinearRGB(v[0], v[1], v[2], v[3])
	case BlendOklab:
		return fromOklab(v[0], v[1], v[2], v[3])
	case BlendLab:
		return fromLab(v[0], v[1], v[2], v[3])
	case BlendHSV:
		return FromHSV(v[0], v[1], v[2], v[3])
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func convertColors(colors []Color, mode BlendMode) [][4]float64 {
	out := make([][4]float64, len(colors))
	for i, c := range colors {
		out[i] = toComponents(c, mode)
	}
	return out
}

func interpLinear(a, b [4]float64, t float64) [4]float64 {
	return [4]float64{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
		a[3] + t*(b[3]-a[3]),
	}
}

// interpAngle interpolates between two angles in degrees along the
// shortest arc, wrapping at 360.
func interpAngle(a0, a1, t float64) float64 {
	delta := modulo(a1-a0+540, 360) - 180
	return modulo(a0+t*delta, 360)
}

// blendComponents interpolates two converted stop values, routing the hue
// channel through the circular arc in HSV mode.
func blendComponents(c0, c1 [4]float64, t float64, mode BlendMode) Color {
	v := interpLinear(c0, c1, t)
	if mode == BlendHSV {
		v[0] = interpAngle(c0[0], c1[0], t)
	}
	return fromComponents(v, mode)
}

// blend interpolates two colors at t in the given blend mode.
func blend(a, b Color, t float64, mode BlendMode) Color {
	return blendComponents(toComponents(a, mode), toComponents(b, mode), t, mode)
}

// blendRGB is the plain RGB channel lerp, the cheap path used by the
// linearizer and the GIMP segment evaluator.
func blendRGB(a, b Color, t float64) Color {
	return Color{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

// smoothstepUnit maps t in [0, 1] through the cubic ease 3t²−2t³.
func smoothstepUnit(t float64) float64 {
	return t * t * (3 - 2*t)
}

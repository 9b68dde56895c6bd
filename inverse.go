package ramp

// inverseEvaluator projects t to the mirrored position dmax − t + dmin
// before delegating, so the inner gradient reads right-to-left. The
// domain passes through unchanged, which makes Inverse an involution:
// g.Inverse().Inverse() evaluates identically to g.
type inverseEvaluator struct {
	inner Gradient
}

func (e inverseEvaluator) At(t float64) Color {
	dmin, dmax := e.inner.Domain()
	return e.inner.At(dmax - t + dmin)
}

package ramp

import (
	"log/slog"
	"math"
	"sort"
)

const (
	// linearizeSeeds is the number of evenly spaced samples the adaptive
	// subdivision starts from.
	linearizeSeeds = 17
	// linearizeMaxDepth bounds the recursive bisection, guaranteeing
	// termination on discontinuous gradients.
	linearizeMaxDepth = 7
	// linearizeDedupEpsilon merges positions produced by overlapping
	// subdivisions.
	linearizeDedupEpsilon = 1e-6
)

// Linearize approximates g with a piecewise-linear RGB gradient whose
// channel error against g stays within threshold. The threshold is a
// per-sample RGBA channel distance, clamped to [0.005, 0.1]: smaller
// values yield more stops. Intervals where g already blends linearly
// produce no extra stops, and a pruning pass removes stops whose color is
// predicted by their neighbors, so the result is close to minimal.
func Linearize(g Gradient, threshold float64) Gradient {
	dmin, dmax := g.Domain()
	threshSq := math.Pow(clamp(threshold, 0.005, 0.1), 2)

	seeds := linspace(dmin, dmax, linearizeSeeds)
	positions := make([]float64, 0, linearizeSeeds)

	// Adaptive sampling: bisect every seed interval where the midpoint
	// color strays from the linear blend of the endpoints.
	for i := 0; i < len(seeds)-1; i++ {
		positions = append(positions, seeds[i])
		subdivide(g, seeds[i], seeds[i+1], threshSq, 0, &positions)
	}
	positions = append(positions, dmax)

	sort.Float64s(positions)
	positions = dedupPositions(positions, linearizeDedupEpsilon)
	raw := len(positions)
	positions = removeRedundant(g, positions, threshSq)

	colors := make([]Color, len(positions))
	for i, t := range positions {
		colors[i] = g.At(t)
	}

	Logger().Debug("ramp: gradient linearized",
		slog.Int("sampled", raw),
		slog.Int("stops", len(positions)))

	return Gradient{
		eval: newLinearEvaluator(colors, positions, BlendRGB),
		dmin: dmin,
		dmax: dmax,
	}
}

func subdivide(g Gradient, t0, t1, threshSq float64, depth int, out *[]float64) {
	if depth >= linearizeMaxDepth {
		return
	}
	mid := (t0 + t1) / 2
	predicted := blendRGB(g.At(t0), g.At(t1), 0.5)
	if colorDistSq(g.At(mid), predicted) > threshSq {
		subdivide(g, t0, mid, threshSq, depth+1, out)
		*out = append(*out, mid)
		subdivide(g, mid, t1, threshSq, depth+1, out)
	}
}

func dedupPositions(pos []float64, eps float64) []float64 {
	out := pos[:1]
	for _, p := range pos[1:] {
		if p-out[len(out)-1] < eps {
			continue
		}
		out = append(out, p)
	}
	return out
}

// removeRedundant drops interior stops whose color is already predicted
// within threshold by linearly interpolating the surviving neighbors.
// The bisection terminates per interval, so it oversamples around sharp
// features; this backward pass bounds the final table size.
func removeRedundant(g Gradient, pos []float64, threshSq float64) []float64 {
	if len(pos) <= 2 {
		return pos
	}
	out := []float64{pos[0]}
	last := 0
	for i := 1; i < len(pos)-1; i++ {
		tPrev, tCurr, tNext := pos[last], pos[i], pos[i+1]
		u := (tCurr - tPrev) / (tNext - tPrev)
		predicted := blendRGB(g.At(tPrev), g.At(tNext), u)
		if colorDistSq(g.At(tCurr), predicted) > threshSq {
			out = append(out, tCurr)
			last = i
		}
	}
	return append(out, pos[len(pos)-1])
}

// colorDistSq is the squared RGBA channel distance between two colors.
func colorDistSq(a, b Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	da := a.A - b.A
	return dr*dr + dg*dg + db*db + da*da
}

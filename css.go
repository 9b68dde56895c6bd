package ramp

import (
	"strconv"
	"strings"
)

// CSS gradient stop-list parsing: "red, 30%, #00f 60%, gold 80% 100%".
// Each comma-separated stop is a color, a bare position, or a color with
// one or two positions. Percentages resolve against the target domain;
// bare numbers are absolute. Missing positions are inferred by even
// spacing between known neighbors; a position-only stop takes the
// midpoint blend of its neighbor colors in the active blend mode. Any
// malformed stop fails the whole parse.

type cssStop struct {
	color    Color
	pos      float64
	hasColor bool
	hasPos   bool
}

type cssParser struct {
	dmin, dmax float64
	mode       BlendMode
	stops      []cssStop
}

// parseCSSGradient parses a CSS gradient stop list into parallel color
// and position slices over [dmin, dmax]. ok is false on any malformed
// stop or an unresolvable stop list.
func parseCSSGradient(s string, dmin, dmax float64, mode BlendMode) (colors []Color, positions []float64, ok bool) {
	p := cssParser{dmin: dmin, dmax: dmax, mode: mode}
	return p.parse(s)
}

func (p *cssParser) parse(s string) ([]Color, []float64, bool) {
	if p.dmin >= p.dmax {
		return nil, nil, false
	}

	for _, field := range splitByComma(s) {
		if !p.parseStop(field) {
			return nil, nil, false
		}
	}

	stops := p.stops
	if len(stops) == 0 || !stops[0].hasColor {
		return nil, nil, false
	}

	if !stops[0].hasPos {
		stops[0].pos = p.dmin
		stops[0].hasPos = true
	}

	// Fill in implicit colors: a position-only stop blends the midpoint
	// of its immediate neighbors. Two adjacent colorless stops are
	// unresolvable.
	for i := range stops {
		if i == len(stops)-1 {
			if !stops[i].hasPos {
				stops[i].pos = p.dmax
				stops[i].hasPos = true
			}
			break
		}
		if !stops[i].hasColor {
			if !stops[i+1].hasColor {
				return nil, nil, false
			}
			stops[i].color = blend(stops[i-1].color, stops[i+1].color, 0.5, p.mode)
			stops[i].hasColor = true
		}
	}

	// Pin the ends of the domain, duplicating the boundary colors when
	// the explicit stops start late or end early.
	if stops[0].pos > p.dmin {
		first := cssStop{color: stops[0].color, pos: p.dmin, hasColor: true, hasPos: true}
		stops = append([]cssStop{first}, stops...)
	}
	if stops[len(stops)-1].pos < p.dmax {
		last := stops[len(stops)-1]
		last.pos = p.dmax
		stops = append(stops, last)
	}

	// Fill in implicit positions by even spacing up to the next known
	// position, then force monotonicity.
	for i := range stops {
		if !stops[i].hasPos {
			for j := i + 1; j < len(stops); j++ {
				if stops[j].hasPos {
					prev := stops[i-1].pos
					stops[i].pos = prev + (stops[j].pos-prev)/float64(j-i+1)
					stops[i].hasPos = true
					break
				}
			}
		}
		if i > 0 && stops[i].pos < stops[i-1].pos {
			stops[i].pos = stops[i-1].pos
		}
	}

	colors := make([]Color, len(stops))
	positions := make([]float64, len(stops))
	for i, st := range stops {
		if !st.hasColor || !st.hasPos {
			return nil, nil, false
		}
		colors[i] = st.color
		positions[i] = st.pos
	}
	return colors, positions, true
}

func (p *cssParser) parseStop(s string) bool {
	fields := splitBySpace(s)
	switch len(fields) {
	case 1:
		if c, err := ParseColor(fields[0]); err == nil {
			p.stops = append(p.stops, cssStop{color: c, hasColor: true})
			return true
		}
		if pos, ok := p.parsePos(fields[0]); ok {
			p.stops = append(p.stops, cssStop{pos: pos, hasPos: true})
			return true
		}
	case 2:
		c, err := ParseColor(fields[0])
		pos, ok := p.parsePos(fields[1])
		if err != nil || !ok {
			return false
		}
		p.stops = append(p.stops, cssStop{color: c, pos: pos, hasColor: true, hasPos: true})
		return true
	case 3:
		// Double-position stop: the color spans a flat band.
		c, err := ParseColor(fields[0])
		pos1, ok1 := p.parsePos(fields[1])
		pos2, ok2 := p.parsePos(fields[2])
		if err != nil || !ok1 || !ok2 {
			return false
		}
		p.stops = append(p.stops,
			cssStop{color: c, pos: pos1, hasColor: true, hasPos: true},
			cssStop{color: c, pos: pos2, hasColor: true, hasPos: true})
		return true
	}
	return false
}

// parsePos parses a stop position: a percentage relative to the domain or
// an absolute number.
func (p *cssParser) parsePos(s string) (float64, bool) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return v/100*(p.dmax-p.dmin) + p.dmin, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// splitByComma splits on commas outside parentheses, so function colors
// like rgb(255, 0, 0) survive.
func splitByComma(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// splitBySpace splits on spaces outside parentheses.
func splitBySpace(s string) []string {
	var out []string
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case (c == ' ' || c == '\t') && depth == 0:
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

package comet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPosition is returned for position strings that cannot be parsed.
var ErrBadPosition = errors.New("comet: bad position")

// Edge is an offset along one axis of a box: Frac of the box's size plus Px
// pixels. "top" is {0, 0}, "center" {0.5, 0}, "bottom" {1, 0}, "85%"
// {0.85, 0}, "120px" {0, 120}.
type Edge struct {
	Frac float64
	Px   float64
}

// resolve returns the edge's offset within a box of the given size.
func (e Edge) resolve(size float64) float64 {
	return e.Frac*size + e.Px
}

// Position describes a scroll position by where an element edge meets a
// viewport edge, e.g. "top 85%": the element's top reaches 85% of the way
// down the viewport. A relative position ("+=150%") is instead an offset
// from another position, measured in viewport heights or pixels.
type Position struct {
	Element  Edge
	Viewport Edge
	Relative bool
	Offset   Edge
}

// ParsePosition parses "<element-edge> <viewport-edge>" or a relative
// "+=<amount>" / "-=<amount>" form. Edges are top, center, bottom, N% or
// Npx (a bare number is pixels).
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		amount, err := parseEdge(s[2:])
		if err != nil {
			return Position{}, fmt.Errorf("%w %q: %v", ErrBadPosition, s, err)
		}
		if s[0] == '-' {
			amount.Frac, amount.Px = -amount.Frac, -amount.Px
		}
		return Position{Relative: true, Offset: amount}, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("%w %q: want \"<element> <viewport>\"", ErrBadPosition, s)
	}
	el, err := parseEdge(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("%w %q: %v", ErrBadPosition, s, err)
	}
	vp, err := parseEdge(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("%w %q: %v", ErrBadPosition, s, err)
	}
	return Position{Element: el, Viewport: vp}, nil
}

// MustParsePosition is like ParsePosition but panics on error. Use it for
// positions written as literals.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseEdge(tok string) (Edge, error) {
	switch tok {
	case "top", "left":
		return Edge{}, nil
	case "center":
		return Edge{Frac: 0.5}, nil
	case "bottom", "right":
		return Edge{Frac: 1}, nil
	}
	switch {
	case strings.HasSuffix(tok, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return Edge{}, fmt.Errorf("percentage %q", tok)
		}
		return Edge{Frac: v / 100}, nil
	case strings.HasSuffix(tok, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
		if err != nil {
			return Edge{}, fmt.Errorf("pixels %q", tok)
		}
		return Edge{Px: v}, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q", tok)
	}
	return Edge{Px: v}, nil
}

// ScrollFor returns the document scroll offset at which this position is
// reached for an element occupying [elTop, elTop+elHeight] in a viewport of
// the given height. Relative positions resolve against base instead.
func (p Position) ScrollFor(elTop, elHeight, viewportHeight, base float64) float64 {
	if p.Relative {
		return base + p.Offset.resolve(viewportHeight)
	}
	return elTop + p.Element.resolve(elHeight) - p.Viewport.resolve(viewportHeight)
}

// String formats the position back into its notation.
func (p Position) String() string {
	if p.Relative {
		sign := "+="
		off := p.Offset
		if off.Frac < 0 || (off.Frac == 0 && off.Px < 0) {
			sign = "-="
			off.Frac, off.Px = -off.Frac, -off.Px
		}
		return sign + formatAmount(off)
	}
	return formatEdge(p.Element) + " " + formatEdge(p.Viewport)
}

func formatEdge(e Edge) string {
	switch {
	case e.Px == 0 && e.Frac == 0:
		return "top"
	case e.Px == 0 && e.Frac == 0.5:
		return "center"
	case e.Px == 0 && e.Frac == 1:
		return "bottom"
	}
	return formatAmount(e)
}

func formatAmount(e Edge) string {
	switch {
	case e.Px == 0:
		return strconv.FormatFloat(e.Frac*100, 'f', -1, 64) + "%"
	case e.Frac == 0:
		return strconv.FormatFloat(e.Px, 'f', -1, 64) + "px"
	}
	return strconv.FormatFloat(e.Frac*100, 'f', -1, 64) + "%+" + strconv.FormatFloat(e.Px, 'f', -1, 64) + "px"
}

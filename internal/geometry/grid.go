package geometry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidPosition is returned when a position request matches no
// shortcut and is not a valid pair of axis specifications.
var ErrInvalidPosition = errors.New("invalid position")

// Grid places a window on a monitor divided into Divisions cells. Cell is
// the 0-based cell holding the window's top-left corner and Span is the
// number of cells the window covers on each axis.
type Grid struct {
	Divisions Size
	Cell      Point
	Span      Size
}

// Resolve maps the grid onto monitor and returns the window rectangle in
// root coordinates. Division truncates; there is no rounding correction.
func (g Grid) Resolve(monitor Rect) Rect {
	return Rect{
		Width:  monitor.Width * g.Span.Width / g.Divisions.Width,
		Height: monitor.Height * g.Span.Height / g.Divisions.Height,
		X:      monitor.Width*g.Cell.X/g.Divisions.Width + monitor.X,
		Y:      monitor.Height*g.Cell.Y/g.Divisions.Height + monitor.Y,
	}
}

// Validate checks that the grid can be resolved.
func (g Grid) Validate() error {
	if g.Divisions.Width <= 0 || g.Divisions.Height <= 0 {
		return fmt.Errorf("%w: grid divisions must be positive, got %dx%d",
			ErrInvalidPosition, g.Divisions.Width, g.Divisions.Height)
	}
	if g.Span.Width <= 0 || g.Span.Height <= 0 {
		return fmt.Errorf("%w: span must be positive, got %dx%d",
			ErrInvalidPosition, g.Span.Width, g.Span.Height)
	}
	return nil
}

func cell(cols, rows, x, y int) Grid {
	return Grid{
		Divisions: Size{Width: cols, Height: rows},
		Cell:      Point{X: x, Y: y},
		Span:      Size{Width: 1, Height: 1},
	}
}

var shortcuts = map[string]Grid{
	"top":         cell(1, 2, 0, 0),
	"bottom":      cell(1, 2, 0, 1),
	"left":        cell(2, 1, 0, 0),
	"right":       cell(2, 1, 1, 0),
	"topleft":     cell(2, 2, 0, 0),
	"topright":    cell(2, 2, 1, 0),
	"bottomleft":  cell(2, 2, 0, 1),
	"bottomright": cell(2, 2, 1, 1),
}

// Shortcut returns the built-in grid for name.
func Shortcut(name string) (Grid, bool) {
	g, ok := shortcuts[name]
	return g, ok
}

// ShortcutNames lists the built-in shortcut names in sorted order.
func ShortcutNames() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAxis parses one axis specification of the form
// num[/denom[:span]]. Numbers accept the same base prefixes as Go integer
// literals. Without a denominator the axis covers the whole extent
// (1/1:1); without a span the span is 1. The numerator is returned as
// written, 1-based.
func ParseAxis(s string) (numerator, denominator, span int, err error) {
	numStr, rest, hasDenom := strings.Cut(s, "/")
	numerator, err = parseInt(numStr)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: axis %q: %v", ErrInvalidPosition, s, err)
	}
	if !hasDenom {
		return 1, 1, 1, nil
	}

	denomStr, spanStr, hasSpan := strings.Cut(rest, ":")
	denominator, err = parseInt(denomStr)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: axis %q: denominator: %v", ErrInvalidPosition, s, err)
	}
	if denominator <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: axis %q: denominator must be positive", ErrInvalidPosition, s)
	}

	span = 1
	if hasSpan {
		span, err = parseInt(spanStr)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: axis %q: span: %v", ErrInvalidPosition, s, err)
		}
		if span <= 0 {
			return 0, 0, 0, fmt.Errorf("%w: axis %q: span must be positive", ErrInvalidPosition, s)
		}
	}
	return numerator, denominator, span, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return int(v), nil
}

// ParseGrid parses a pair of axis specifications into a grid. The 1-based
// numerators of the external syntax become 0-based cells.
func ParseGrid(xaxis, yaxis string) (Grid, error) {
	nx, dx, sx, err := ParseAxis(xaxis)
	if err != nil {
		return Grid{}, err
	}
	ny, dy, sy, err := ParseAxis(yaxis)
	if err != nil {
		return Grid{}, err
	}
	return Grid{
		Divisions: Size{Width: dx, Height: dy},
		Cell:      Point{X: nx - 1, Y: ny - 1},
		Span:      Size{Width: sx, Height: sy},
	}, nil
}

// ParsePosition turns command line arguments into a grid. A single argument
// names a shortcut, looked up in extra before the built-ins; two arguments
// are the x and y axis specifications.
func ParsePosition(args []string, extra map[string]Grid) (Grid, error) {
	switch len(args) {
	case 1:
		if g, ok := extra[args[0]]; ok {
			return g, nil
		}
		if g, ok := Shortcut(args[0]); ok {
			return g, nil
		}
		return Grid{}, fmt.Errorf("%w: unknown shortcut %q", ErrInvalidPosition, args[0])
	case 2:
		return ParseGrid(args[0], args[1])
	default:
		return Grid{}, fmt.Errorf("%w: expected a shortcut or two axis specifications, got %d arguments",
			ErrInvalidPosition, len(args))
	}
}

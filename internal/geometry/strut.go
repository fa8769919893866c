package geometry

// Interval is a span along one axis of the root window.
type Interval struct {
	Start int
	End   int
}

// Empty reports whether the interval declares no span at all.
func (i Interval) Empty() bool {
	return i.Start == i.End
}

// Aligned reports whether the interval overlaps [origin, origin+extent].
// An empty interval never aligns.
func (i Interval) Aligned(origin, extent int) bool {
	return !i.Empty() && i.Start <= origin+extent && i.End >= origin
}

// Strut is the space a window reserves along the edges of the root window,
// as declared by _NET_WM_STRUT_PARTIAL. Left and right spans run along the
// Y axis, top and bottom spans along the X axis.
type Strut struct {
	Left   int
	Right  int
	Top    int
	Bottom int

	LeftSpan   Interval
	RightSpan  Interval
	TopSpan    Interval
	BottomSpan Interval
}

// FullStrut expands a plain _NET_WM_STRUT reservation into a strut whose
// spans cover the whole root edge.
func FullStrut(left, right, top, bottom int, root Size) Strut {
	return Strut{
		Left:       left,
		Right:      right,
		Top:        top,
		Bottom:     bottom,
		LeftSpan:   Interval{Start: 0, End: root.Height - 1},
		RightSpan:  Interval{Start: 0, End: root.Height - 1},
		TopSpan:    Interval{Start: 0, End: root.Width - 1},
		BottomSpan: Interval{Start: 0, End: root.Width - 1},
	}
}

// Box pushes r off the edges reserved by s. The edges are handled top, left,
// bottom, right; each step sees the rectangle produced by the one before.
func (s Strut) Box(r Rect, root Size) Rect {
	r = s.boxTop(r)
	r = s.boxLeft(r)
	r = s.boxBottom(r, root)
	return s.boxRight(r, root)
}

func (s Strut) boxTop(r Rect) Rect {
	if s.TopSpan.Aligned(r.X, r.Width) && s.Top > r.Y {
		r.Height += s.Top - r.Y
		r.Y = s.Top
	}
	return r
}

func (s Strut) boxLeft(r Rect) Rect {
	if s.LeftSpan.Aligned(r.Y, r.Height) && s.Left > r.X {
		r.Width += s.Left - r.X
		r.X = s.Left
	}
	return r
}

func (s Strut) boxBottom(r Rect, root Size) Rect {
	end := r.Y + r.Height
	limit := root.Height - s.Bottom
	if s.BottomSpan.Aligned(r.X, r.Width) && limit < end {
		r.Height += limit - end
	}
	return r
}

func (s Strut) boxRight(r Rect, root Size) Rect {
	end := r.X + r.Width
	limit := root.Width - s.Right
	if s.RightSpan.Aligned(r.Y, r.Height) && limit < end {
		r.Width += limit - end
	}
	return r
}

// ApplyStruts boxes r against every strut in order and returns the result.
func ApplyStruts(r Rect, struts []Strut, root Size) Rect {
	for _, s := range struts {
		r = s.Box(r, root)
	}
	return r
}

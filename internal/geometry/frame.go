package geometry

// FrameExtents is the thickness of the window manager decoration on each
// side of a client window, as reported by _NET_FRAME_EXTENTS.
type FrameExtents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Client converts the rectangle a frame should occupy into the rectangle
// for the client window inside it, leaving border pixels of extra space on
// every side. It assumes the frame keeps its current extents after the
// move.
func (f FrameExtents) Client(frame Rect, border int) Rect {
	return Rect{
		Width:  frame.Width - (f.Left + f.Right + 2*border),
		Height: frame.Height - (f.Top + f.Bottom + 2*border),
		X:      frame.X + f.Left + border,
		Y:      frame.Y + f.Top + border,
	}
}

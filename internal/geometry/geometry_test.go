package geometry

import (
	"errors"
	"testing"
)

func TestIntervalAligned(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		origin   int
		extent   int
		want     bool
	}{
		{"overlap", Interval{10, 20}, 15, 10, true},
		{"past end", Interval{10, 20}, 25, 5, false},
		{"touching start", Interval{10, 20}, 0, 10, true},
		{"touching end", Interval{10, 20}, 20, 5, true},
		{"before start", Interval{10, 20}, 0, 9, false},
		{"covers interval", Interval{10, 20}, 0, 100, true},
		{"empty inside", Interval{15, 15}, 0, 100, false},
		{"empty zero", Interval{}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.interval.Aligned(tt.origin, tt.extent); got != tt.want {
				t.Fatalf("Aligned(%d, %d) on %+v = %v, want %v", tt.origin, tt.extent, tt.interval, got, tt.want)
			}
		})
	}
}

func TestEmptyIntervalNeverAligns(t *testing.T) {
	for _, start := range []int{-100, 0, 7, 1920} {
		iv := Interval{Start: start, End: start}
		for _, origin := range []int{-50, 0, start, 5000} {
			if iv.Aligned(origin, 10000) {
				t.Fatalf("empty interval %+v aligned at origin %d", iv, origin)
			}
		}
	}
}

func TestStrutBox_NonAlignedLeavesRectUnchanged(t *testing.T) {
	root := Size{Width: 1920, Height: 1080}
	r := Rect{X: 100, Y: 100, Width: 800, Height: 600}
	struts := []Strut{
		{},
		// Panel on a different part of the top edge.
		{Top: 300, TopSpan: Interval{Start: 1000, End: 1900}},
		// Left dock that only spans rows below the window.
		{Left: 400, LeftSpan: Interval{Start: 800, End: 1000}},
	}
	got := ApplyStruts(r, struts, root)
	if got != r {
		t.Fatalf("expected %v unchanged, got %v", r, got)
	}
}

func TestStrutBox_TopPanel(t *testing.T) {
	root := Size{Width: 1920, Height: 1080}
	s := Strut{Top: 30, TopSpan: Interval{Start: 0, End: 1919}}

	got := s.Box(Rect{X: 0, Y: 0, Width: 1920, Height: 540}, root)
	want := Rect{X: 0, Y: 30, Width: 1920, Height: 570}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStrutBox_BottomPanelShrinksHeight(t *testing.T) {
	root := Size{Width: 1920, Height: 1080}
	s := Strut{Bottom: 40, BottomSpan: Interval{Start: 0, End: 1919}}

	got := s.Box(Rect{X: 0, Y: 540, Width: 1920, Height: 540}, root)
	want := Rect{X: 0, Y: 540, Width: 1920, Height: 500}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStrutBox_LeftAndRightDocks(t *testing.T) {
	root := Size{Width: 1920, Height: 1080}
	s := Strut{
		Left:      64,
		LeftSpan:  Interval{Start: 0, End: 1079},
		Right:     100,
		RightSpan: Interval{Start: 0, End: 1079},
	}

	left := s.Box(Rect{X: 0, Y: 0, Width: 960, Height: 1080}, root)
	if want := (Rect{X: 64, Y: 0, Width: 1024, Height: 1080}); left != want {
		t.Fatalf("left half: expected %v, got %v", want, left)
	}

	right := s.Box(Rect{X: 960, Y: 0, Width: 960, Height: 1080}, root)
	if want := (Rect{X: 960, Y: 0, Width: 860, Height: 1080}); right != want {
		t.Fatalf("right half: expected %v, got %v", want, right)
	}
}

func TestStrutBox_LeftTestSeesAdjustedHeight(t *testing.T) {
	root := Size{Width: 1920, Height: 1080}
	// The left span starts below the window's original bottom edge but
	// within the height it has after the top step.
	s := Strut{
		Top:      100,
		TopSpan:  Interval{Start: 0, End: 1919},
		Left:     50,
		LeftSpan: Interval{Start: 250, End: 400},
	}
	r := Rect{X: 0, Y: 0, Width: 500, Height: 200}

	got := s.Box(r, root)
	want := Rect{X: 50, Y: 100, Width: 550, Height: 300}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestApplyStruts_Accumulates(t *testing.T) {
	root := Size{Width: 1000, Height: 1000}
	struts := []Strut{
		{Bottom: 50, BottomSpan: Interval{Start: 0, End: 999}},
		{Bottom: 100, BottomSpan: Interval{Start: 0, End: 499}},
	}
	got := ApplyStruts(Rect{X: 0, Y: 500, Width: 500, Height: 500}, struts, root)
	want := Rect{X: 0, Y: 500, Width: 500, Height: 400}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFullStrutSpansWholeEdge(t *testing.T) {
	s := FullStrut(0, 0, 0, 32, Size{Width: 1920, Height: 1080})
	got := s.Box(Rect{X: 1500, Y: 540, Width: 420, Height: 540}, Size{Width: 1920, Height: 1080})
	if got.Height != 508 {
		t.Fatalf("expected height 508, got %d", got.Height)
	}
}

func TestShortcutResolve(t *testing.T) {
	monitor := Rect{Width: 1920, Height: 1080}
	tests := []struct {
		name string
		want Rect
	}{
		{"topleft", Rect{X: 0, Y: 0, Width: 960, Height: 540}},
		{"topright", Rect{X: 960, Y: 0, Width: 960, Height: 540}},
		{"bottomleft", Rect{X: 0, Y: 540, Width: 960, Height: 540}},
		{"bottomright", Rect{X: 960, Y: 540, Width: 960, Height: 540}},
		{"top", Rect{X: 0, Y: 0, Width: 1920, Height: 540}},
		{"bottom", Rect{X: 0, Y: 540, Width: 1920, Height: 540}},
		{"left", Rect{X: 0, Y: 0, Width: 960, Height: 1080}},
		{"right", Rect{X: 960, Y: 0, Width: 960, Height: 1080}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Shortcut(tt.name)
			if !ok {
				t.Fatalf("missing shortcut %q", tt.name)
			}
			if got := g.Resolve(monitor); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
	if n := len(ShortcutNames()); n != 8 {
		t.Fatalf("expected 8 shortcuts, got %d", n)
	}
}

func TestGridResolve_TranslatesToMonitorOrigin(t *testing.T) {
	g, _ := Shortcut("bottomright")
	got := g.Resolve(Rect{X: 1920, Y: 200, Width: 1280, Height: 1024})
	want := Rect{X: 2560, Y: 712, Width: 640, Height: 512}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGridResolve_Truncates(t *testing.T) {
	g := Grid{Divisions: Size{Width: 3, Height: 3}, Cell: Point{X: 1, Y: 2}, Span: Size{Width: 1, Height: 1}}
	got := g.Resolve(Rect{Width: 1000, Height: 1000})
	want := Rect{X: 333, Y: 666, Width: 333, Height: 333}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseGrid_FreeForm(t *testing.T) {
	g, err := ParsePosition([]string{"2/4:1", "3/4:1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := g.Resolve(Rect{Width: 1920, Height: 1080})
	want := Rect{X: 480, Y: 540, Width: 480, Height: 270}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in               string
		num, denom, span int
	}{
		{"2/4:1", 2, 4, 1},
		{"3/4", 3, 4, 1},
		{"1/3:2", 1, 3, 2},
		{"0x2/0x4", 2, 4, 1},
		{"5", 1, 1, 1},
		{"-1/2", -1, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			num, denom, span, err := ParseAxis(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if num != tt.num || denom != tt.denom || span != tt.span {
				t.Fatalf("ParseAxis(%q) = %d/%d:%d, want %d/%d:%d", tt.in, num, denom, span, tt.num, tt.denom, tt.span)
			}
		})
	}
}

func TestParseAxis_RejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "a", "1/", "1/0", "1/-2", "1/2:", "1/2:0", "1/2:x", "1/2:3:4", "1x"} {
		t.Run(in, func(t *testing.T) {
			if _, _, _, err := ParseAxis(in); !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("ParseAxis(%q): expected ErrInvalidPosition, got %v", in, err)
			}
		})
	}
}

func TestParseGrid_WholeExtentAxis(t *testing.T) {
	g, err := ParseGrid("7", "1/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Grid{Divisions: Size{Width: 1, Height: 2}, Cell: Point{X: 0, Y: 0}, Span: Size{Width: 1, Height: 1}}
	if g != want {
		t.Fatalf("expected %+v, got %+v", want, g)
	}
}

func TestParsePosition_Errors(t *testing.T) {
	cases := [][]string{
		nil,
		{"middle"},
		{"1/2", "1/2", "1/2"},
		{"1/0", "1/2"},
	}
	for _, args := range cases {
		if _, err := ParsePosition(args, nil); !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("ParsePosition(%q): expected ErrInvalidPosition, got %v", args, err)
		}
	}
}

func TestParsePosition_ExtraShortcuts(t *testing.T) {
	center := Grid{Divisions: Size{Width: 4, Height: 4}, Cell: Point{X: 1, Y: 1}, Span: Size{Width: 2, Height: 2}}
	g, err := ParsePosition([]string{"center"}, map[string]Grid{"center": center})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != center {
		t.Fatalf("expected %+v, got %+v", center, g)
	}
}

func TestSelectMonitor(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, Width: 800, Height: 600},
		{X: 800, Y: 0, Width: 800, Height: 600},
	}
	tests := []struct {
		p    Point
		want int
	}{
		{Point{100, 100}, 0},
		{Point{900, 100}, 1},
		{Point{800, 0}, 1},
		{Point{-50, -50}, 0},
		{Point{1600, 100}, 0},
		{Point{100, 600}, 0},
	}
	for _, tt := range tests {
		if got := SelectMonitor(monitors, tt.p); got != tt.want {
			t.Fatalf("SelectMonitor(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	got := Rect{X: 10, Y: 20, Width: 101, Height: 51}.Center()
	if got != (Point{X: 60, Y: 45}) {
		t.Fatalf("unexpected center %v", got)
	}
}

func TestFrameExtentsClient(t *testing.T) {
	f := FrameExtents{Left: 5, Right: 5, Top: 30, Bottom: 5}
	got := f.Client(Rect{X: 100, Y: 100, Width: 500, Height: 400}, 2)
	want := Rect{X: 107, Y: 132, Width: 486, Height: 361}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

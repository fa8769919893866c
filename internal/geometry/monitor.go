package geometry

// SelectMonitor returns the index of the first monitor containing p.
// When no monitor contains p, for example when a window straddles a gap
// between monitors, it falls back to 0.
//
// TODO: rank monitors by overlap area with the whole window instead of
// testing the centroid alone.
func SelectMonitor(monitors []Rect, p Point) int {
	for i, mon := range monitors {
		if mon.Contains(p) {
			return i
		}
	}
	return 0
}

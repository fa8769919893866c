package x11

import (
	"errors"
	"fmt"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/BurntSushi/xgb"
)

// ErrMalformedProperty is returned when a property's format or length does
// not match what its EWMH definition requires.
var ErrMalformedProperty = errors.New("malformed property")

// Item counts of the CARDINAL[] properties fling reads.
const (
	strutPartialItems = 12
	strutItems        = 4
	frameExtentsItems = 4
)

// DecodeCardinals decodes a format-32 property value holding exactly want
// items.
func DecodeCardinals(format byte, value []byte, want int) ([]uint32, error) {
	if format != 32 {
		return nil, fmt.Errorf("%w: format %d, want 32", ErrMalformedProperty, format)
	}
	if len(value) != want*4 {
		return nil, fmt.Errorf("%w: %d bytes, want %d items", ErrMalformedProperty, len(value), want)
	}
	out := make([]uint32, want)
	for i := range out {
		out[i] = xgb.Get32(value[i*4:])
	}
	return out, nil
}

// DecodeStrutPartial decodes a _NET_WM_STRUT_PARTIAL value: left, right,
// top, bottom, then start/end pairs for the left, right, top and bottom
// edges.
func DecodeStrutPartial(format byte, value []byte) (geometry.Strut, error) {
	v, err := DecodeCardinals(format, value, strutPartialItems)
	if err != nil {
		return geometry.Strut{}, err
	}
	return geometry.Strut{
		Left:       int(v[0]),
		Right:      int(v[1]),
		Top:        int(v[2]),
		Bottom:     int(v[3]),
		LeftSpan:   geometry.Interval{Start: int(v[4]), End: int(v[5])},
		RightSpan:  geometry.Interval{Start: int(v[6]), End: int(v[7])},
		TopSpan:    geometry.Interval{Start: int(v[8]), End: int(v[9])},
		BottomSpan: geometry.Interval{Start: int(v[10]), End: int(v[11])},
	}, nil
}

// DecodeStrut decodes a legacy _NET_WM_STRUT value, which reserves whole
// edges of the root window.
func DecodeStrut(format byte, value []byte, root geometry.Size) (geometry.Strut, error) {
	v, err := DecodeCardinals(format, value, strutItems)
	if err != nil {
		return geometry.Strut{}, err
	}
	return geometry.FullStrut(int(v[0]), int(v[1]), int(v[2]), int(v[3]), root), nil
}

// DecodeFrameExtents decodes a _NET_FRAME_EXTENTS value.
func DecodeFrameExtents(format byte, value []byte) (geometry.FrameExtents, error) {
	v, err := DecodeCardinals(format, value, frameExtentsItems)
	if err != nil {
		return geometry.FrameExtents{}, err
	}
	return geometry.FrameExtents{
		Left:   int(v[0]),
		Right:  int(v[1]),
		Top:    int(v[2]),
		Bottom: int(v[3]),
	}, nil
}

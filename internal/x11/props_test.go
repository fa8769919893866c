package x11

import (
	"errors"
	"testing"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/BurntSushi/xgb"
)

func cardinals(vals ...uint32) []byte {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		xgb.Put32(buf[i*4:], v)
	}
	return buf
}

func TestDecodeStrutPartial(t *testing.T) {
	value := cardinals(0, 0, 0, 32, 0, 0, 0, 0, 0, 0, 0, 1919)
	got, err := DecodeStrutPartial(32, value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geometry.Strut{
		Bottom:     32,
		BottomSpan: geometry.Interval{Start: 0, End: 1919},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDecodeStrutPartial_FieldOrder(t *testing.T) {
	value := cardinals(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	got, err := DecodeStrutPartial(32, value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geometry.Strut{
		Left: 1, Right: 2, Top: 3, Bottom: 4,
		LeftSpan:   geometry.Interval{Start: 5, End: 6},
		RightSpan:  geometry.Interval{Start: 7, End: 8},
		TopSpan:    geometry.Interval{Start: 9, End: 10},
		BottomSpan: geometry.Interval{Start: 11, End: 12},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDecodeStrutPartial_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		format byte
		value  []byte
	}{
		{"wrong format", 8, cardinals(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)},
		{"too short", 32, cardinals(1, 2, 3, 4)},
		{"too long", 32, cardinals(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)},
		{"ragged", 32, cardinals(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)[:47]},
		{"empty", 32, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeStrutPartial(tt.format, tt.value); !errors.Is(err, ErrMalformedProperty) {
				t.Fatalf("expected ErrMalformedProperty, got %v", err)
			}
		})
	}
}

func TestDecodeStrut_ExpandsToFullEdges(t *testing.T) {
	root := geometry.Size{Width: 1920, Height: 1080}
	got, err := DecodeStrut(32, cardinals(0, 0, 24, 0), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Top != 24 {
		t.Fatalf("expected top 24, got %d", got.Top)
	}
	if got.TopSpan != (geometry.Interval{Start: 0, End: 1919}) {
		t.Fatalf("unexpected top span %+v", got.TopSpan)
	}
	if got.LeftSpan != (geometry.Interval{Start: 0, End: 1079}) {
		t.Fatalf("unexpected left span %+v", got.LeftSpan)
	}
}

func TestDecodeFrameExtents(t *testing.T) {
	got, err := DecodeFrameExtents(32, cardinals(5, 5, 30, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geometry.FrameExtents{Left: 5, Right: 5, Top: 30, Bottom: 5}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if _, err := DecodeFrameExtents(32, cardinals(5, 5, 30)); !errors.Is(err, ErrMalformedProperty) {
		t.Fatalf("expected ErrMalformedProperty for 3 items, got %v", err)
	}
}

package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/platform"
)

type stubBackend struct {
	displays []platform.Display
	moved    map[platform.WindowID]geometry.Rect
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		displays: []platform.Display{
			{Index: 0, Name: "DP-1", Bounds: geometry.Rect{Width: 1920, Height: 1080}},
			{Index: 1, Name: "HDMI-1", Bounds: geometry.Rect{X: 1920, Width: 1280, Height: 1024}},
		},
		moved: map[platform.WindowID]geometry.Rect{},
	}
}

func (b *stubBackend) RootGeometry() (geometry.Rect, error) {
	return geometry.Rect{Width: 3200, Height: 1080}, nil
}

func (b *stubBackend) Displays() ([]platform.Display, error) { return b.displays, nil }

func (b *stubBackend) ActiveWindow() (platform.WindowID, error) { return 0x1200003, nil }

func (b *stubBackend) WindowGeometry(platform.WindowID) (geometry.Rect, error) {
	return geometry.Rect{X: 2000, Y: 100, Width: 400, Height: 300}, nil
}

func (b *stubBackend) FrameExtents(id platform.WindowID) (geometry.FrameExtents, error) {
	if id == 0xdead {
		return geometry.FrameExtents{}, platform.ErrNoFrameExtents
	}
	return geometry.FrameExtents{Top: 20}, nil
}

func (b *stubBackend) Struts(geometry.Size) ([]geometry.Strut, error) { return nil, nil }

func (b *stubBackend) MoveResize(id platform.WindowID, r geometry.Rect) error {
	b.moved[id] = r
	return nil
}

func newTestServer(b platform.Backend) *Server {
	return NewServer(config.DefaultConfig(), b, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intPtr(v int) *int { return &v }

func TestHandlePlaceWindow_ActiveWindowFollowsMonitor(t *testing.T) {
	b := newStubBackend()
	s := newTestServer(b)

	_, out, err := s.handlePlaceWindow(context.Background(), nil, PlaceWindowInput{Position: []string{"left"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Window != 0x1200003 || out.Monitor != 1 || !out.Moved {
		t.Fatalf("unexpected output: %+v", out)
	}
	want := Rect{X: 1922, Y: 22, Width: 636, Height: 1000}
	if out.Client != want {
		t.Fatalf("expected client %+v, got %+v", want, out.Client)
	}
	if got := b.moved[0x1200003]; got != (geometry.Rect{X: 1922, Y: 22, Width: 636, Height: 1000}) {
		t.Fatalf("unexpected move %v", got)
	}
}

func TestHandlePlaceWindow_OverridesAndDryRun(t *testing.T) {
	b := newStubBackend()
	s := newTestServer(b)

	_, out, err := s.handlePlaceWindow(context.Background(), nil, PlaceWindowInput{
		Position: []string{"1/2", "2/2"},
		Window:   42,
		Screen:   intPtr(0),
		Border:   intPtr(0),
		DryRun:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Moved || len(b.moved) != 0 {
		t.Fatalf("dry run should not move: %+v", out)
	}
	if want := (Rect{X: 0, Y: 560, Width: 960, Height: 520}); out.Client != want {
		t.Fatalf("expected client %+v, got %+v", want, out.Client)
	}
}

func TestHandlePlaceWindow_Errors(t *testing.T) {
	s := newTestServer(newStubBackend())

	_, _, err := s.handlePlaceWindow(context.Background(), nil, PlaceWindowInput{Position: []string{"middle"}})
	if !errors.Is(err, geometry.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}

	_, _, err = s.handlePlaceWindow(context.Background(), nil, PlaceWindowInput{Position: []string{"top"}, Window: 0xdead})
	if !errors.Is(err, platform.ErrNoFrameExtents) {
		t.Fatalf("expected ErrNoFrameExtents, got %v", err)
	}

	_, _, err = s.handlePlaceWindow(context.Background(), nil, PlaceWindowInput{Position: []string{"top"}, Border: intPtr(-1)})
	if err == nil {
		t.Fatalf("expected error for negative border")
	}
}

func TestHandleListMonitors(t *testing.T) {
	s := newTestServer(newStubBackend())

	_, out, err := s.handleListMonitors(context.Background(), nil, ListMonitorsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(out.Monitors))
	}
	if out.Monitors[1].Name != "HDMI-1" || out.Monitors[1].Bounds.X != 1920 {
		t.Fatalf("unexpected monitor %+v", out.Monitors[1])
	}
}

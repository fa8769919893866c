// Package placement turns a grid request into the rectangle a client
// window should occupy, given a snapshot of the screen it lives on.
package placement

import (
	"errors"
	"fmt"

	"github.com/1broseidon/fling/internal/geometry"
)

var (
	// ErrNoSuchMonitor is returned when a request names a monitor index
	// that was not detected.
	ErrNoSuchMonitor = errors.New("no such monitor")
	// ErrDegenerate is returned when struts, frame extents and border
	// leave no room for the client window.
	ErrDegenerate = errors.New("no usable space for window")
)

// FollowWindow as Request.Screen selects the monitor under the window.
const FollowWindow = -1

// Snapshot holds everything resolution reads, captured once per
// invocation.
type Snapshot struct {
	Root     geometry.Rect
	Monitors []geometry.Rect
	// Struts are ordered newest window first.
	Struts []geometry.Strut
	Frame  geometry.FrameExtents
	// Window is the target's current geometry; only meaningful when
	// WindowKnown is set.
	Window      geometry.Rect
	WindowKnown bool
}

// Request describes where the caller wants the window.
type Request struct {
	Grid   geometry.Grid
	Screen int
	Border int
}

// Result is a resolved placement.
type Result struct {
	Monitor int
	// Frame is the area the decorated window should cover.
	Frame geometry.Rect
	// Client is the geometry to send to the window manager.
	Client geometry.Rect
}

// Resolve computes the placement for req on snapshot s.
func Resolve(s Snapshot, req Request) (Result, error) {
	if err := req.Grid.Validate(); err != nil {
		return Result{}, err
	}

	monitors := s.Monitors
	if len(monitors) == 0 {
		monitors = []geometry.Rect{s.Root}
	}

	index, err := chooseMonitor(monitors, s, req.Screen)
	if err != nil {
		return Result{}, err
	}

	frame := req.Grid.Resolve(monitors[index])
	frame = geometry.ApplyStruts(frame, s.Struts, s.Root.Size())
	client := s.Frame.Client(frame, req.Border)

	if client.Width <= 0 || client.Height <= 0 {
		return Result{}, fmt.Errorf("%w: client would be %dx%d (frame %v)",
			ErrDegenerate, client.Width, client.Height, frame)
	}

	return Result{Monitor: index, Frame: frame, Client: client}, nil
}

func chooseMonitor(monitors []geometry.Rect, s Snapshot, screen int) (int, error) {
	switch {
	case screen == FollowWindow:
		if !s.WindowKnown {
			return 0, nil
		}
		return geometry.SelectMonitor(monitors, s.Window.Center()), nil
	case screen < 0 || screen >= len(monitors):
		return 0, fmt.Errorf("%w: screen %d (have %d)", ErrNoSuchMonitor, screen, len(monitors))
	default:
		return screen, nil
	}
}

package platform

import (
	"errors"

	"github.com/1broseidon/fling/internal/geometry"
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// ErrNoFrameExtents is returned by FrameExtents when the window manager
// does not report decoration sizes for a window.
var ErrNoFrameExtents = errors.New("frame extents unavailable")

// Display describes a physical display.
type Display struct {
	Index  int
	Name   string
	Bounds geometry.Rect
}

// Backend abstracts the window-system queries and requests placement needs.
type Backend interface {
	// RootGeometry returns the size of the whole root window.
	RootGeometry() (geometry.Rect, error)
	// Displays returns the monitors in detection order. Backends degrade to
	// a single display covering the root window.
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	// WindowGeometry returns the window's rectangle in root coordinates.
	WindowGeometry(windowID WindowID) (geometry.Rect, error)
	FrameExtents(windowID WindowID) (geometry.FrameExtents, error)
	// Struts returns the reservations of all client windows, newest first.
	// Windows without readable struts are omitted.
	Struts(root geometry.Size) ([]geometry.Strut, error)
	MoveResize(windowID WindowID, client geometry.Rect) error
}

package x11

import (
	"errors"
	"fmt"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

// moveResizeFlags is data.l[0] of _NET_MOVERESIZE_WINDOW: static gravity
// (10) with x, y, width and height all present (bits 8-11), source 0.
const moveResizeFlags = 0xf0a

// ErrNoActiveWindow is returned when the window manager reports no active
// window.
var ErrNoActiveWindow = errors.New("no active window")

func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoActiveWindow, err)
	}
	if win == 0 {
		return 0, ErrNoActiveWindow
	}
	return win, nil
}

// WindowGeometry returns the window's rectangle translated to root
// coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (geometry.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get geometry of window 0x%x: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to translate coordinates of window 0x%x: %w", windowID, err)
	}

	return geometry.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// FrameExtents returns the window decoration sizes. Unlike a missing strut,
// a missing or malformed _NET_FRAME_EXTENTS is an error.
func (c *Connection) FrameExtents(windowID xproto.Window) (geometry.FrameExtents, error) {
	reply, err := xprop.GetProperty(c.XUtil, windowID, "_NET_FRAME_EXTENTS")
	if err != nil {
		return geometry.FrameExtents{}, err
	}
	return DecodeFrameExtents(reply.Format, reply.Value)
}

// MoveResizeWindow asks the window manager to place the client window at r
// via _NET_MOVERESIZE_WINDOW.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, r geometry.Rect) error {
	data := [5]uint32{
		moveResizeFlags,
		uint32(int32(r.X)),
		uint32(int32(r.Y)),
		uint32(r.Width),
		uint32(r.Height),
	}
	if err := c.sendRootMessage(windowID, "_NET_MOVERESIZE_WINDOW", data); err != nil {
		return fmt.Errorf("failed to move window 0x%x: %w", windowID, err)
	}
	return nil
}

package x11

import (
	"fmt"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Struts collects the edge reservations of every managed client window.
// The client list is walked from the newest window to the oldest. Windows
// with no strut, or with one that does not decode, are skipped.
func (c *Connection) Struts(root geometry.Size) ([]geometry.Strut, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients for strut processing: %w", err)
	}

	var struts []geometry.Strut
	for i := len(clients) - 1; i >= 0; i-- {
		win := clients[i]
		s, ok := c.windowStrut(win, root)
		if !ok {
			continue
		}
		struts = append(struts, s)
	}
	return struts, nil
}

func (c *Connection) windowStrut(win xproto.Window, root geometry.Size) (geometry.Strut, bool) {
	if reply, err := xprop.GetProperty(c.XUtil, win, "_NET_WM_STRUT_PARTIAL"); err == nil {
		s, err := DecodeStrutPartial(reply.Format, reply.Value)
		if err != nil {
			c.logger.Debug("ignoring partial strut", "window", fmt.Sprintf("0x%x", win), "err", err)
			return geometry.Strut{}, false
		}
		c.logger.Debug("window has partial struts", "window", fmt.Sprintf("0x%x", win),
			"left", s.Left, "right", s.Right, "top", s.Top, "bottom", s.Bottom)
		return s, true
	}

	// Some docks only set _NET_WM_STRUT (no partial ranges).
	reply, err := xprop.GetProperty(c.XUtil, win, "_NET_WM_STRUT")
	if err != nil {
		return geometry.Strut{}, false
	}
	s, err := DecodeStrut(reply.Format, reply.Value, root)
	if err != nil {
		c.logger.Debug("ignoring strut", "window", fmt.Sprintf("0x%x", win), "err", err)
		return geometry.Strut{}, false
	}
	c.logger.Debug("window has struts", "window", fmt.Sprintf("0x%x", win),
		"left", s.Left, "right", s.Right, "top", s.Top, "bottom", s.Bottom)
	return s, true
}

package x11

import (
	"fmt"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents a physical display
type Monitor struct {
	Name   string
	Bounds geometry.Rect
}

// RootGeometry returns the geometry of the root window.
func (c *Connection) RootGeometry() (geometry.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get root window geometry: %w", err)
	}
	return geometry.Rect{
		X:      int(geom.X),
		Y:      int(geom.Y),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// Monitors detects the physical displays. Xinerama is preferred since its
// screen order is what users pass to -s; RandR is tried next, and when
// neither reports anything the whole root window is the only monitor.
func (c *Connection) Monitors() ([]Monitor, error) {
	monitors, err := c.xineramaMonitors()
	if err == nil && len(monitors) > 0 {
		c.logger.Debug("monitors detected", "source", "xinerama", "count", len(monitors))
		return monitors, nil
	}
	if err != nil {
		c.logger.Debug("xinerama unavailable", "err", err)
	}

	monitors, err = c.randrMonitors()
	if err == nil && len(monitors) > 0 {
		c.logger.Debug("monitors detected", "source", "randr", "count", len(monitors))
		return monitors, nil
	}
	if err != nil {
		c.logger.Debug("randr unavailable", "err", err)
	}

	root, err := c.RootGeometry()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("monitors detected", "source", "root", "count", 1)
	return []Monitor{{Name: "root", Bounds: root}}, nil
}

func (c *Connection) xineramaMonitors() ([]Monitor, error) {
	if err := xinerama.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("xinerama init failed: %w", err)
	}
	active, err := xinerama.IsActive(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("xinerama query failed: %w", err)
	}
	if active.State == 0 {
		return nil, nil
	}

	reply, err := xinerama.QueryScreens(c.XUtil.Conn()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query xinerama screens: %w", err)
	}

	monitors := make([]Monitor, 0, len(reply.ScreenInfo))
	for i, s := range reply.ScreenInfo {
		monitors = append(monitors, Monitor{
			Name: fmt.Sprintf("xinerama-%d", i),
			Bounds: geometry.Rect{
				X:      int(s.XOrg),
				Y:      int(s.YOrg),
				Width:  int(s.Width),
				Height: int(s.Height),
			},
		})
	}
	return monitors, nil
}

func (c *Connection) randrMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			Name: outputName,
			Bounds: geometry.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	return monitors, nil
}

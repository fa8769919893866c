package placement

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/platform"
)

// Placer captures snapshots from a backend and applies resolved placements.
type Placer struct {
	backend platform.Backend
	logger  *slog.Logger
}

// NewPlacer creates a placer. A nil logger uses slog.Default.
func NewPlacer(backend platform.Backend, logger *slog.Logger) *Placer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Placer{backend: backend, logger: logger}
}

// Capture reads everything resolution needs for window win. Missing frame
// extents are fatal; monitor, strut and window geometry failures degrade.
func (p *Placer) Capture(win platform.WindowID) (Snapshot, error) {
	frame, err := p.backend.FrameExtents(win)
	if err != nil {
		return Snapshot{}, err
	}

	root, err := p.backend.RootGeometry()
	if err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{Root: root, Frame: frame}

	displays, err := p.backend.Displays()
	if err != nil {
		p.logger.Debug("monitor detection failed, using root window", "err", err)
	}
	for _, d := range displays {
		s.Monitors = append(s.Monitors, d.Bounds)
	}
	if len(s.Monitors) == 0 {
		s.Monitors = []geometry.Rect{root}
	}

	struts, err := p.backend.Struts(root.Size())
	if err != nil {
		p.logger.Warn("can't list clients to do strut processing", "err", err)
	}
	s.Struts = struts

	if geom, err := p.backend.WindowGeometry(win); err != nil {
		p.logger.Warn("can't get window geometry, using first monitor", "window", fmt.Sprintf("0x%x", uint32(win)), "err", err)
	} else {
		s.Window = geom
		s.WindowKnown = true
	}

	return s, nil
}

// Place resolves req for win and, unless dryRun is set, asks the backend to
// move the window. A zero win targets the active window.
func (p *Placer) Place(win platform.WindowID, req Request, dryRun bool) (platform.WindowID, Result, error) {
	if win == 0 {
		active, err := p.backend.ActiveWindow()
		if err != nil {
			return 0, Result{}, fmt.Errorf("can't find active window: %w", err)
		}
		win = active
	}

	snap, err := p.Capture(win)
	if err != nil {
		return win, Result{}, err
	}

	res, err := Resolve(snap, req)
	if err != nil {
		return win, Result{}, err
	}

	p.logger.Debug("resolved placement",
		"window", fmt.Sprintf("0x%x", uint32(win)),
		"monitor", res.Monitor,
		"frame", res.Frame.String(),
		"client", res.Client.String(),
		"struts", len(snap.Struts),
	)

	if dryRun {
		return win, res, nil
	}
	if err := p.backend.MoveResize(win, res.Client); err != nil {
		return win, res, err
	}
	return win, res, nil
}

package mcp

import "github.com/1broseidon/fling/internal/geometry"

// PlaceWindowInput is the input for the place_window tool.
type PlaceWindowInput struct {
	Position []string `json:"position" jsonschema:"required,Either one shortcut name (top, bottom, left, right, topleft, topright, bottomleft, bottomright, or a configured shortcut) or two axis specifications of the form num[/denom[:span]], x first"`
	Window   uint32   `json:"window,omitempty" jsonschema:"X11 window id to place (default: the active window)"`
	Screen   *int     `json:"screen,omitempty" jsonschema:"Monitor index to place the window on (default: config screen, -1 follows the window)"`
	Border   *int     `json:"border,omitempty" jsonschema:"Pixels left between the frame and the grid cell (default: config border)"`
	DryRun   bool     `json:"dry_run,omitempty" jsonschema:"When true, resolve the geometry without moving the window"`
}

// Rect is a rectangle in root window coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func rectFromGeometry(r geometry.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// PlaceWindowOutput is the output for the place_window tool.
type PlaceWindowOutput struct {
	Window  uint32 `json:"window"`
	Monitor int    `json:"monitor"`
	Frame   Rect   `json:"frame"`
	Client  Rect   `json:"client"`
	Moved   bool   `json:"moved"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// MonitorInfo describes one detected monitor.
type MonitorInfo struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Bounds Rect   `json:"bounds"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

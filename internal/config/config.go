package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/1broseidon/fling/internal/geometry"
)

const (
	// DefaultBorder is the gap left between the frame and the grid cell edge.
	DefaultBorder = 2
	// ScreenFollowWindow selects the monitor under the window's centre.
	ScreenFollowWindow = -1
)

// Config is the effective fling configuration.
type Config struct {
	// Border is added inside the frame on every side, in pixels.
	Border int `yaml:"border"`
	// Screen is the monitor index to place windows on; -1 follows the window.
	Screen int `yaml:"screen"`
	// Display overrides $DISPLAY when non-empty.
	Display string `yaml:"display,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// PaletteBackend picks the menu used by "fling pick": auto, rofi,
	// dmenu or terminal.
	PaletteBackend string `yaml:"palette_backend"`
	// Shortcuts maps extra position names to "<x axis> <y axis>" using the
	// command line syntax, e.g. "2/4:2 2/4:2".
	Shortcuts map[string]string `yaml:"shortcuts,omitempty"`
	// Bindings maps X key sequences such as "Mod4-Left" to positions, used
	// by "fling bind". A position is a shortcut name or two axis
	// specifications.
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Border:         DefaultBorder,
		Screen:         ScreenFollowWindow,
		LogLevel:       "info",
		PaletteBackend: "auto",
		Shortcuts:      map[string]string{},
		Bindings:       map[string]string{},
	}
}

// ValidationError reports an invalid configuration value and, when known,
// where it was set.
type ValidationError struct {
	Path   string
	File   string
	Line   int
	Column int
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.File, e.Line, e.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validate checks the configuration for values fling cannot use.
func (c *Config) Validate() error {
	if c.Border < 0 {
		return &ValidationError{Path: "border", Err: fmt.Errorf("border must be >= 0")}
	}
	if c.Screen < ScreenFollowWindow {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("screen must be >= 0, or -1 to follow the window")}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	for _, name := range c.shortcutNames() {
		path := "shortcuts." + name
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t/:") {
			return &ValidationError{Path: path, Err: fmt.Errorf("invalid shortcut name %q", name)}
		}
		if _, ok := geometry.Shortcut(name); ok {
			return &ValidationError{Path: path, Err: fmt.Errorf("shortcut %q shadows a built-in position", name)}
		}
		if _, err := parseShortcut(c.Shortcuts[name]); err != nil {
			return &ValidationError{Path: path, Err: err}
		}
	}
	for _, keys := range sortedKeys(c.Bindings) {
		path := "bindings." + keys
		if strings.TrimSpace(keys) == "" {
			return &ValidationError{Path: path, Err: fmt.Errorf("empty key sequence")}
		}
		if _, err := c.ResolvePosition(c.Bindings[keys]); err != nil {
			return &ValidationError{Path: path, Err: err}
		}
	}
	return nil
}

// ResolvePosition parses a position written as command line arguments
// joined by spaces, with the user shortcuts in scope.
func (c *Config) ResolvePosition(spec string) (geometry.Grid, error) {
	return geometry.ParsePosition(strings.Fields(spec), c.GridShortcuts())
}

// GridShortcuts returns the user shortcuts as grids. Invalid entries are
// skipped; Validate reports them.
func (c *Config) GridShortcuts() map[string]geometry.Grid {
	out := make(map[string]geometry.Grid, len(c.Shortcuts))
	for name, spec := range c.Shortcuts {
		g, err := parseShortcut(spec)
		if err != nil {
			continue
		}
		out[name] = g
	}
	return out
}

func (c *Config) shortcutNames() []string {
	return sortedKeys(c.Shortcuts)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseShortcut(spec string) (geometry.Grid, error) {
	fields := strings.Fields(spec)
	if len(fields) != 2 {
		return geometry.Grid{}, fmt.Errorf("%w: shortcut must be two axis specifications, got %q",
			geometry.ErrInvalidPosition, spec)
	}
	return geometry.ParseGrid(fields[0], fields[1])
}

// ParseLogLevel maps a config level name to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}

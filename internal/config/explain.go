package config

import (
	"fmt"
	"strings"
)

// Source describes where an effective config value came from.
type Source struct {
	File string // empty for built-in defaults
	Position
}

func (s Source) String() string {
	if s.File == "" {
		return "default"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	border
//	screen
//	display
//	log_level
//	palette_backend
//	shortcuts
//	shortcuts.<name>
//	bindings
//	bindings.<keys>
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if pos, ok := res.Positions[path]; ok && res.File != "" {
		return value, Source{File: res.File, Position: pos}, nil
	}
	return value, Source{}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.SplitN(path, ".", 2)
	switch parts[0] {
	case "shortcuts", "bindings":
		entries := cfg.Shortcuts
		if parts[0] == "bindings" {
			entries = cfg.Bindings
		}
		if len(parts) == 1 {
			return entries, nil
		}
		spec, ok := entries[parts[1]]
		if !ok {
			return nil, fmt.Errorf("unknown %s entry %q", parts[0], parts[1])
		}
		return spec, nil
	}
	if len(parts) != 1 {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	switch parts[0] {
	case "border":
		return cfg.Border, nil
	case "screen":
		return cfg.Screen, nil
	case "display":
		return cfg.Display, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "palette_backend":
		return cfg.PaletteBackend, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}

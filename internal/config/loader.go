package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Position locates a YAML value in a config file.
type Position struct {
	Line   int
	Column int
}

// LoadResult is a loaded config plus where its values came from.
type LoadResult struct {
	Config    *Config
	File      string              // empty when no file was found
	Positions map[string]Position // YAML path -> position in File
}

func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fling", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "fling", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	res, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadFromPath reads and validates the config at path, layered over the
// defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	res := &LoadResult{Config: cfg, Positions: map[string]Position{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	res.File = path

	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Shortcuts == nil {
		cfg.Shortcuts = map[string]string{}
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]string{}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil {
		res.Positions = collectPositions(&doc)
	}

	if err := cfg.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			if pos, ok := res.Positions[verr.Path]; ok {
				verr.File = path
				verr.Line = pos.Line
				verr.Column = pos.Column
			}
		}
		return nil, err
	}
	return res, nil
}

func decodeStrict(data []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

// collectPositions records the position of every mapping value, keyed by
// its dotted path.
func collectPositions(doc *yaml.Node) map[string]Position {
	out := make(map[string]Position)
	if doc == nil || doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return out
	}
	var walk func(prefix string, n *yaml.Node)
	walk = func(prefix string, n *yaml.Node) {
		if n.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			val := n.Content[i+1]
			path := key.Value
			if prefix != "" {
				path = prefix + "." + key.Value
			}
			out[path] = Position{Line: val.Line, Column: val.Column}
			walk(path, val)
		}
	}
	walk("", doc.Content[0])
	return out
}

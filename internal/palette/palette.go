package palette

import (
	"fmt"
	"os/exec"
	"strings"
)

// Item is a single selectable entry in a palette menu.
type Item struct {
	Label    string // Display text
	Value    string // Returned on selection, e.g. "topleft" or "1/3:2 1"
	Meta     string // Hidden search keywords (rofi meta field)
	IsHeader bool   // Non-selectable section header (bold)
	IsActive bool   // Highlighted and preselected
}

// Backend shows a palette to the user and returns the selected item.
type Backend interface {
	// Show displays items under prompt, with an optional context message,
	// and returns the chosen item or ErrCancelled.
	Show(prompt string, items []Item, message string) (Item, error)

	// Name identifies the backend in logs.
	Name() string
}

// AutoDetect selects the first available backend in priority order.
func AutoDetect() (Backend, error) {
	name, err := DetectBackend()
	if err != nil {
		return nil, err
	}
	return NewBackend(name)
}

// NewBackend creates a backend by name.
//
// Supported names: auto, rofi, dmenu, terminal.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return AutoDetect()
	case "rofi":
		if _, err := exec.LookPath("rofi"); err != nil {
			return nil, fmt.Errorf("palette backend %q not found in PATH", "rofi")
		}
		return NewRofiBackend(), nil
	case "dmenu":
		if _, err := exec.LookPath("dmenu"); err != nil {
			return nil, fmt.Errorf("palette backend %q not found in PATH", "dmenu")
		}
		return NewDmenuBackend(), nil
	case "terminal":
		return NewTerminalBackend(), nil
	default:
		return nil, fmt.Errorf("unknown palette backend: %q (expected: %s)", name, strings.Join(BackendNames, ", "))
	}
}

// BackendNames lists the accepted values for NewBackend.
var BackendNames = []string{"auto", "rofi", "dmenu", "terminal"}

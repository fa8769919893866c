package palette

import (
	"os"
	"os/exec"

	"golang.org/x/term"
)

// DetectBackend returns the first available palette backend, in priority
// order: rofi, dmenu, then the terminal form when stdin is a terminal.
func DetectBackend() (string, error) {
	if _, err := exec.LookPath("rofi"); err == nil {
		return "rofi", nil
	}
	if _, err := exec.LookPath("dmenu"); err == nil {
		return "dmenu", nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "terminal", nil
	}
	return "", ErrNoBackend
}

package palette

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

type terminalBackend struct{}

// NewTerminalBackend returns a backend that asks on the controlling terminal.
func NewTerminalBackend() Backend {
	return terminalBackend{}
}

func (terminalBackend) Name() string {
	return "terminal"
}

func (terminalBackend) Show(prompt string, items []Item, message string) (Item, error) {
	opts := selectOptions(items)
	if len(opts) == 0 {
		return Item{}, fmt.Errorf("palette: no items to show")
	}

	idx := opts[0].Value
	for i, item := range items {
		if item.IsActive && !item.IsHeader {
			idx = i
			break
		}
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(prompt).
				Description(message).
				Options(opts...).
				Value(&idx),
		),
	).WithTheme(huh.ThemeCharm()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return Item{}, ErrCancelled
	}
	if err != nil {
		return Item{}, err
	}
	return items[idx], nil
}

// selectOptions maps items to options keyed by their index in items.
// Headers become a prefix on the options that follow them.
func selectOptions(items []Item) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(items))
	section := ""
	for i, item := range items {
		if item.IsHeader {
			section = sanitizeLabel(item.Label)
			continue
		}
		label := sanitizeLabel(item.Label)
		if section != "" {
			label = section + ": " + label
		}
		opts = append(opts, huh.NewOption(label, i))
	}
	return opts
}

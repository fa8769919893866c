package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/palette"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
)

func printPickUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fling pick [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Choose a position (and a monitor, when there are several) from a menu,")
	fmt.Fprintln(w, "then move the window there. Bind it to a hotkey for keyboard-driven placement.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintf(w, "  -palette NAME  Menu backend: %s (default from config)\n", strings.Join(palette.BackendNames, ", "))
	fmt.Fprintln(w, "  -b, -s, -w, -n, -v, -config, -display as for placement")
}

func parsePickArgs(args []string, stderr io.Writer) (placeOptions, string, error) {
	var opts placeOptions
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printPickUsage(stderr) }
	window := bindPlaceFlags(fs, &opts)
	backend := fs.String("palette", "", "menu backend")
	if err := fs.Parse(args); err != nil {
		return opts, "", err
	}
	if fs.NArg() > 0 {
		return opts, "", fmt.Errorf("pick takes no positional arguments")
	}
	if err := opts.finish(*window); err != nil {
		return opts, "", err
	}
	return opts, *backend, nil
}

// applyMonitorChoice records a monitor menu selection as a screen override.
func (o *placeOptions) applyMonitorChoice(item palette.Item) error {
	screen, err := strconv.Atoi(item.Value)
	if err != nil {
		return fmt.Errorf("invalid monitor selection %q", item.Value)
	}
	o.screen = screen
	return nil
}

func runPick(args []string) int {
	opts, backendName, err := parsePickArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg, opts.verbose)
	if backendName == "" {
		backendName = cfg.PaletteBackend
	}

	menu, err := palette.NewBackend(backendName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	display := opts.display
	if display == "" {
		display = cfg.Display
	}
	backend, err := platform.NewLinuxBackendFromDisplay(display, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	// Resolve the target before the menu can take focus.
	if opts.window == 0 {
		opts.window, err = backend.ActiveWindow()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	logger.Debug("picking position", "palette", menu.Name(), "window", fmt.Sprintf("0x%x", uint32(opts.window)))

	item, err := menu.Show("fling", palette.PositionItems(cfg.Shortcuts), "Move the window to")
	if errors.Is(err, palette.ErrCancelled) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	opts.position = strings.Fields(item.Value)

	if opts.screen == screenUnset {
		if err := pickMonitor(menu, backend, cfg, &opts); err != nil {
			if errors.Is(err, palette.ErrCancelled) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	req, err := opts.request(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	placer := placement.NewPlacer(backend, logger)
	win, res, err := placer.Place(opts.window, req, opts.dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if opts.dryRun {
		printResult(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())), win, res)
	}
	return 0
}

// pickMonitor asks for a monitor when more than one is attached.
func pickMonitor(menu palette.Backend, backend platform.Backend, cfg *config.Config, opts *placeOptions) error {
	displays, err := backend.Displays()
	if err != nil || len(displays) < 2 {
		return nil
	}
	item, err := menu.Show("monitor", palette.MonitorItems(displays, cfg.Screen), "Place on")
	if err != nil {
		return err
	}
	return opts.applyMonitorChoice(item)
}

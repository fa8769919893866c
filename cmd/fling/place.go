package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
)

// screenUnset marks -s as not given; -1 is a valid value meaning "follow
// the window".
const screenUnset = -2

type placeOptions struct {
	border     int
	screen     int
	window     platform.WindowID
	dryRun     bool
	verbose    bool
	configPath string
	display    string
	position   []string
}

// parsePlaceArgs parses the placement flags. Unset border and screen fall
// back to the config values in request.
func parsePlaceArgs(args []string, stderr io.Writer) (placeOptions, error) {
	var opts placeOptions
	fs := flag.NewFlagSet("fling", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printMainUsage(stderr) }
	window := bindPlaceFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if err := opts.finish(*window); err != nil {
		return opts, err
	}
	opts.position = fs.Args()
	return opts, nil
}

func bindPlaceFlags(fs *flag.FlagSet, opts *placeOptions) *string {
	fs.IntVar(&opts.border, "b", -1, "border in pixels")
	fs.IntVar(&opts.screen, "s", screenUnset, "monitor index")
	fs.BoolVar(&opts.dryRun, "n", false, "dry run")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.StringVar(&opts.configPath, "config", "", "config file path")
	fs.StringVar(&opts.display, "display", "", "X display")
	return fs.String("w", "", "window id")
}

func (o *placeOptions) finish(window string) error {
	if window != "" {
		id, err := strconv.ParseUint(window, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid window id %q", window)
		}
		o.window = platform.WindowID(id)
	}
	if o.screen < screenUnset {
		return fmt.Errorf("invalid screen %d", o.screen)
	}
	return nil
}

// request merges command line overrides over the config.
func (o placeOptions) request(cfg *config.Config) (placement.Request, error) {
	grid, err := geometry.ParsePosition(o.position, cfg.GridShortcuts())
	if err != nil {
		return placement.Request{}, err
	}
	req := placement.Request{Grid: grid, Screen: cfg.Screen, Border: cfg.Border}
	if o.border >= 0 {
		req.Border = o.border
	}
	if o.screen != screenUnset {
		req.Screen = o.screen
	}
	return req, nil
}

func runPlace(args []string) int {
	opts, err := parsePlaceArgs(args, os.Stderr)
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

	req, err := opts.request(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "")
		printMainUsage(os.Stderr)
		return 2
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

// printResult writes a resolved placement. Interactive output is labelled;
// otherwise it is a single "x y width height" line for scripts.
func printResult(w io.Writer, interactive bool, win platform.WindowID, res placement.Result) {
	c := res.Client
	if !interactive {
		fmt.Fprintf(w, "%d %d %d %d\n", c.X, c.Y, c.Width, c.Height)
		return
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Width(9)
	valueStyle := lipgloss.NewStyle().
		Bold(true)

	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}
	row("window:", fmt.Sprintf("0x%x", uint32(win)))
	row("monitor:", strconv.Itoa(res.Monitor))
	row("frame:", res.Frame.String())
	row("client:", c.String())
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1broseidon/fling/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "pick":
		os.Exit(runPick(os.Args[2:]))
	case "bind":
		os.Exit(runBind(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		os.Exit(runPlace(os.Args[1:]))
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fling [options] <left|right|top|bottom|topleft|bottomleft|topright|bottomright>")
	fmt.Fprintln(w, "      Move the window to the given area of its monitor.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  fling [options] <numx>[/denomx[:spanx]] <numy>[/denomy[:spany]]")
	fmt.Fprintln(w, "      Move the top-left corner of the window to grid point (numx,numy) of a")
	fmt.Fprintln(w, "      (denomx,denomy) grid, spanning spanx by spany cells. Grid points are 1-based.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -b <border>   Pixels to leave inside each grid cell (default from config, 2)")
	fmt.Fprintln(w, "  -s <screen>   Monitor index (default: the monitor under the window)")
	fmt.Fprintln(w, "  -w <window>   Window id to move (default: the active window)")
	fmt.Fprintln(w, "  -n            Resolve and print the geometry without moving anything")
	fmt.Fprintln(w, "  -v            Debug logging")
	fmt.Fprintln(w, "  -config PATH  Config file (default: ~/.config/fling/config.yaml)")
	fmt.Fprintln(w, "  -display DPY  X display (default: $DISPLAY)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  pick              Choose a position from a menu (rofi, dmenu or terminal)")
	fmt.Fprintln(w, "  bind              Place the active window from configured hotkeys")
	fmt.Fprintln(w, "  monitors          List detected monitors")
	fmt.Fprintln(w, "  config validate   Validate configuration")
	fmt.Fprintln(w, "  config print      Print effective configuration")
	fmt.Fprintln(w, "  config explain    Show a config value and where it was set")
	fmt.Fprintln(w, "  mcp serve         Start MCP server (stdio transport)")
}

func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/1broseidon/fling/internal/platform"
)

type monitorJSON struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	configPath := fs.String("config", "", "Config file path")
	display := fs.String("display", "", "X display")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *display == "" {
		*display = cfg.Display
	}

	backend, err := platform.NewLinuxBackendFromDisplay(*display, newLogger(cfg, false))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	displays, err := backend.Displays()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		if err := writeMonitorsJSON(os.Stdout, displays); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	writeMonitorsTable(os.Stdout, displays)
	return 0
}

func writeMonitorsJSON(w io.Writer, displays []platform.Display) error {
	out := make([]monitorJSON, 0, len(displays))
	for _, d := range displays {
		out = append(out, monitorJSON{
			Index:  d.Index,
			Name:   d.Name,
			X:      d.Bounds.X,
			Y:      d.Bounds.Y,
			Width:  d.Bounds.Width,
			Height: d.Bounds.Height,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeMonitorsTable(w io.Writer, displays []platform.Display) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tGEOMETRY")
	for _, d := range displays {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Index, d.Name, d.Bounds)
	}
	tw.Flush()
}

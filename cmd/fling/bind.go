package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/fling/internal/hotkeys"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
	"github.com/1broseidon/fling/internal/runtimepath"
)

func runBind(args []string) int {
	fs := flag.NewFlagSet("bind", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: fling bind [-config PATH] [-display DPY] [-v]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Grab the key sequences in the config's bindings section and place the")
		fmt.Fprintln(os.Stderr, "active window when one is pressed. SIGHUP reloads the bindings.")
	}
	configPath := fs.String("config", "", "Config file path")
	display := fs.String("display", "", "X display")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg, *verbose)
	if *display == "" {
		*display = cfg.Display
	}

	bindings, err := hotkeys.Bindings(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(bindings) == 0 {
		fmt.Fprintln(os.Stderr, "no bindings configured")
		return 1
	}

	lockPath, err := runtimepath.LockPath("bind", *display)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	lock, err := runtimepath.Lock(lockPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer lock.Close()

	backend, err := platform.NewLinuxBackendFromDisplay(*display, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	handler, err := hotkeys.NewHandler(backend, placement.NewPlacer(backend, logger), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if n := handler.RegisterAll(bindings); n == 0 {
		fmt.Fprintln(os.Stderr, "no bindings could be registered")
		return 1
	}
	logger.Info("fling bind started", "bindings", len(bindings))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig != syscall.SIGHUP {
				logger.Info("shutting down")
				backend.Quit()
				return
			}
			reloadBindings(handler, *configPath, logger)
		}
	}()

	backend.EventLoop()
	return 0
}

// reloadBindings swaps in the bindings of a freshly loaded config. The old
// bindings stay active when the new config does not load.
func reloadBindings(handler *hotkeys.Handler, configPath string, logger *slog.Logger) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("config reload failed", "error", err)
		return
	}
	bindings, err := hotkeys.Bindings(cfg)
	if err != nil {
		logger.Error("config reload failed", "error", err)
		return
	}

	handler.Reset()
	n := handler.RegisterAll(bindings)
	logger.Info("bindings reloaded", "registered", n, "configured", len(bindings))
}

package hotkeys

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
)

type recordingPlacer struct {
	requests []placement.Request
	err      error
}

func (p *recordingPlacer) Place(win platform.WindowID, req placement.Request, dryRun bool) (platform.WindowID, placement.Result, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return 0, placement.Result{}, p.err
	}
	return 0x400001, placement.Result{Client: geometry.Rect{Width: 10, Height: 10}}, nil
}

func TestBindings_SortedAndResolved(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Border = 5
	cfg.Shortcuts["center"] = "2/4:2 2/4:2"
	cfg.Bindings["Mod4-Right"] = "right"
	cfg.Bindings["Mod4-KP_5"] = "center"
	cfg.Bindings["Mod4-Left"] = "1/2 1"

	bindings, err := Bindings(cfg)
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}
	if bindings[0].Keys != "Mod4-KP_5" || bindings[1].Keys != "Mod4-Left" || bindings[2].Keys != "Mod4-Right" {
		t.Fatalf("unexpected order: %+v", bindings)
	}

	right, _ := geometry.Shortcut("right")
	if bindings[2].Request.Grid != right {
		t.Fatalf("expected right grid, got %+v", bindings[2].Request.Grid)
	}
	if bindings[0].Request.Grid.Span != (geometry.Size{Width: 2, Height: 2}) {
		t.Fatalf("expected center span 2x2, got %+v", bindings[0].Request.Grid)
	}
	for _, b := range bindings {
		if b.Request.Border != 5 || b.Request.Screen != config.ScreenFollowWindow {
			t.Fatalf("binding %s: unexpected request %+v", b.Keys, b.Request)
		}
	}
}

func TestBindings_InvalidPosition(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bindings["Mod4-m"] = "middle"

	_, err := Bindings(cfg)
	if !errors.Is(err, geometry.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestTrigger_PlacesActiveWindow(t *testing.T) {
	placer := &recordingPlacer{}
	h := &Handler{placer: placer, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	top, _ := geometry.Shortcut("top")
	h.trigger(Binding{Keys: "Mod4-Up", Position: "top", Request: placement.Request{Grid: top, Border: 2}})
	if len(placer.requests) != 1 || placer.requests[0].Grid != top {
		t.Fatalf("unexpected requests %+v", placer.requests)
	}

	placer.err = errors.New("boom")
	h.trigger(Binding{Keys: "Mod4-Up", Position: "top", Request: placement.Request{Grid: top}})
	if len(placer.requests) != 2 {
		t.Fatalf("expected failed placement to be attempted, got %d", len(placer.requests))
	}
}

func TestNewHandler_RequiresX11Backend(t *testing.T) {
	if _, err := NewHandler(nil, &recordingPlacer{}, nil); !errors.Is(err, ErrNoKeyboard) {
		t.Fatalf("expected ErrNoKeyboard, got %v", err)
	}
}

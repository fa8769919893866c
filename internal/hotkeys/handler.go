package hotkeys

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
)

// ErrNoKeyboard is returned when the backend cannot grab keys.
var ErrNoKeyboard = errors.New("backend does not support key grabs")

// Placer moves a window to a grid position.
type Placer interface {
	Place(win platform.WindowID, req placement.Request, dryRun bool) (platform.WindowID, placement.Result, error)
}

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Binding ties a key sequence to a placement of the active window.
type Binding struct {
	Keys     string
	Position string
	Request  placement.Request
}

// Bindings resolves the configured key bindings, sorted by key sequence.
func Bindings(cfg *config.Config) ([]Binding, error) {
	keys := make([]string, 0, len(cfg.Bindings))
	for k := range cfg.Bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		grid, err := cfg.ResolvePosition(cfg.Bindings[k])
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", k, err)
		}
		out = append(out, Binding{
			Keys:     k,
			Position: cfg.Bindings[k],
			Request: placement.Request{
				Grid:   grid,
				Screen: cfg.Screen,
				Border: cfg.Border,
			},
		})
	}
	return out, nil
}

// Handler manages global keyboard shortcuts
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	placer Placer
	logger *slog.Logger
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(backend platform.Backend, placer Placer, logger *slog.Logger) (*Handler, error) {
	accessor, ok := backend.(x11Accessor)
	if !ok || accessor.XUtil() == nil {
		return nil, ErrNoKeyboard
	}
	if logger == nil {
		logger = slog.Default()
	}
	xu := accessor.XUtil()

	keybind.Initialize(xu)
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{
		xu:     xu,
		root:   accessor.RootWindow(),
		placer: placer,
		logger: logger,
	}, nil
}

// Register grabs the binding's key sequence on the root window.
func (h *Handler) Register(b Binding) error {
	if err := h.RegisterFunc(b.Keys, func() { h.trigger(b) }); err != nil {
		return fmt.Errorf("failed to register %s: %w", b.Keys, err)
	}
	h.logger.Debug("registered binding", "keys", b.Keys, "position", b.Position)
	return nil
}

// RegisterAll registers every binding. A binding that cannot be grabbed is
// logged and skipped; the count of registered bindings is returned.
func (h *Handler) RegisterAll(bindings []Binding) int {
	n := 0
	for _, b := range bindings {
		if err := h.Register(b); err != nil {
			h.logger.Warn("binding skipped", "keys", b.Keys, "error", err)
			continue
		}
		n++
	}
	return n
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

// Reset releases every grab made by this handler.
func (h *Handler) Reset() {
	keybind.Detach(h.xu, h.root)
}

func (h *Handler) trigger(b Binding) {
	win, res, err := h.placer.Place(0, b.Request, false)
	if err != nil {
		h.logger.Error("placement failed", "keys", b.Keys, "position", b.Position, "error", err)
		return
	}
	h.logger.Info("placed window", "keys", b.Keys, "window", fmt.Sprintf("0x%x", uint32(win)),
		"client", res.Client.String())
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/fling/internal/config"
	"github.com/1broseidon/fling/internal/geometry"
	"github.com/1broseidon/fling/internal/placement"
	"github.com/1broseidon/fling/internal/platform"
)

const (
	ServerName    = "fling"
	ServerVersion = "0.1.0"
)

// Server exposes window placement over MCP.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   platform.Backend
	placer    *placement.Placer
	logger    *slog.Logger

	// mu serialises use of the backend connection across tool calls.
	mu sync.Mutex
}

// NewServer creates an MCP server placing windows through backend.
func NewServer(cfg *config.Config, backend platform.Backend, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config:  cfg,
		backend: backend,
		placer:  placement.NewPlacer(backend, logger),
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "place_window",
		Description: "Move and resize a window to a cell of a grid laid over its monitor, keeping clear of panels and docks. Targets the active window unless a window id is given. Returns the frame and client geometry; with dry_run the window is left untouched.",
	}, s.handlePlaceWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the detected monitors in the order used by the screen argument of place_window.",
	}, s.handleListMonitors)
}

func (s *Server) handlePlaceWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args PlaceWindowInput) (*mcpsdk.CallToolResult, PlaceWindowOutput, error) {
	grid, err := geometry.ParsePosition(args.Position, s.config.GridShortcuts())
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}

	req := placement.Request{
		Grid:   grid,
		Screen: s.config.Screen,
		Border: s.config.Border,
	}
	if args.Screen != nil {
		req.Screen = *args.Screen
	}
	if args.Border != nil {
		if *args.Border < 0 {
			return nil, PlaceWindowOutput{}, fmt.Errorf("border must be >= 0")
		}
		req.Border = *args.Border
	}

	s.mu.Lock()
	win, res, err := s.placer.Place(platform.WindowID(args.Window), req, args.DryRun)
	s.mu.Unlock()
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}

	s.logger.Info("placed window", "window", fmt.Sprintf("0x%x", uint32(win)),
		"client", res.Client.String(), "dry_run", args.DryRun)

	return nil, PlaceWindowOutput{
		Window:  uint32(win),
		Monitor: res.Monitor,
		Frame:   rectFromGeometry(res.Frame),
		Client:  rectFromGeometry(res.Client),
		Moved:   !args.DryRun,
	}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	s.mu.Lock()
	displays, err := s.backend.Displays()
	s.mu.Unlock()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorInfo, 0, len(displays))}
	for _, d := range displays {
		out.Monitors = append(out.Monitors, MonitorInfo{
			Index:  d.Index,
			Name:   d.Name,
			Bounds: rectFromGeometry(d.Bounds),
		})
	}
	return nil, out, nil
}

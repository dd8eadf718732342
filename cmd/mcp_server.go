package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/barspace/barspace/internal/profile"
	"github.com/barspace/barspace/internal/version"
	"github.com/barspace/barspace/internal/wm"
)

// mcpServer wraps the MCP server with the profile location and the
// workspace-manager client. The profile is re-loaded per call: loads are
// cheap and tools always see the file's current contents.
type mcpServer struct {
	profilePath string
	mainDisplay string
	wm          wm.Client
	log         hclog.Logger
	mcp         *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport   string
	Port        int
	ProfilePath string
	MainDisplay string
	QueryCmd    string
	SwitchCmd   string
}

// newMCPServer creates and configures an MCP server with the tracker tools.
func newMCPServer(cfg MCPConfig, log hclog.Logger) (*mcpServer, error) {
	s := &mcpServer{
		profilePath: cfg.ProfilePath,
		mainDisplay: cfg.MainDisplay,
		wm:          wm.NewExecClient(wm.ParseCommand(cfg.QueryCmd), wm.ParseCommand(cfg.SwitchCmd), log),
		log:         log,
	}

	s.mcp = mcpserver.NewMCPServer(
		"barspace",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_workspaces",
			mcp.WithDescription("List the workspace records loaded from the profile: name, shortcut key, display, member apps"),
		),
		s.handleListWorkspaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve_app",
			mcp.WithDescription("Resolve an application name to the workspace it belongs to"),
			mcp.WithString("app", mcp.Description("Application name as reported by the OS"), mcp.Required()),
		),
		s.handleResolveApp,
	)

	s.mcp.AddTool(
		mcp.NewTool("active_display",
			mcp.WithDescription("Query the workspace manager for the display currently holding the focused application"),
		),
		s.handleActiveDisplay,
	)

	s.mcp.AddTool(
		mcp.NewTool("switch_workspace",
			mcp.WithDescription("Dispatch a workspace switch to the workspace manager (best-effort, exit status ignored)"),
			mcp.WithString("name", mcp.Description("Workspace name to switch to"), mcp.Required()),
		),
		s.handleSwitchWorkspace,
	)
}

func (s *mcpServer) handleListWorkspaces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, index := profile.Load(s.profilePath, s.mainDisplay)
	return jsonResult(ProfileResult{Workspaces: records, Apps: index})
}

func (s *mcpServer) handleResolveApp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	app, err := request.RequireString("app")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	_, index := profile.Load(s.profilePath, s.mainDisplay)
	workspace, found := index.Lookup(app)
	return jsonResult(map[string]interface{}{
		"app":       app,
		"workspace": workspace,
		"found":     found,
	})
}

func (s *mcpServer) handleActiveDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	display := s.wm.ActiveDisplay(ctx)
	return jsonResult(DisplayResult{Display: display, Known: display != ""})
}

func (s *mcpServer) handleSwitchWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.wm.SwitchWorkspace(ctx, name)
	return jsonResult(map[string]interface{}{
		"ok":        true,
		"action":    "switch",
		"workspace": name,
	})
}

// jsonResult marshals v as the tool's text content.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

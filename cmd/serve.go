package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the workspace tracker state",
	Long: `Start a Model Context Protocol (MCP) server that exposes the workspace
profile and the workspace manager as tools. Agents can list workspaces,
resolve an application to its workspace, query the active display, and
dispatch workspace switches without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  barspace serve
  barspace serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addProfileFlags(serveCmd)
	addWMFlags(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	profilePath, mainDisplay := getProfileFlags(cmd)
	queryCmd, switchCmd := getWMFlags(cmd)

	cfg := MCPConfig{
		Transport:   transport,
		Port:        port,
		ProfilePath: profilePath,
		MainDisplay: mainDisplay,
		QueryCmd:    queryCmd,
		SwitchCmd:   switchCmd,
	}

	srv, err := newMCPServer(cfg, newLogger(cmd))
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.serve(cfg)
}

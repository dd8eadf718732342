package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Default external command lines for the workspace manager. Overridable
// per invocation; the tracker only cares about trimmed stdout (query)
// and fire-and-forget dispatch (switch).
const (
	defaultQueryCmd  = "aerospace list-monitors --focused --format %{monitor-name}"
	defaultSwitchCmd = "aerospace workspace"
)

// defaultProfilePath is the conventional profile location.
func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "profile.json"
	}
	return filepath.Join(home, ".config", "barspace", "profile.json")
}

// addProfileFlags registers the profile flags shared by commands that
// load the workspace profile.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", defaultProfilePath(), "Workspace profile path")
	cmd.Flags().String("main-display", "Main", "Display whose workspaces sort first")
}

// addWMFlags registers the workspace-manager command-line flags.
func addWMFlags(cmd *cobra.Command) {
	cmd.Flags().String("query-cmd", defaultQueryCmd, "Command printing the active display")
	cmd.Flags().String("switch-cmd", defaultSwitchCmd, "Command to switch workspace (name appended)")
}

func getProfileFlags(cmd *cobra.Command) (path, mainDisplay string) {
	path, _ = cmd.Flags().GetString("profile")
	mainDisplay, _ = cmd.Flags().GetString("main-display")
	return
}

func getWMFlags(cmd *cobra.Command) (queryCmd, switchCmd string) {
	queryCmd, _ = cmd.Flags().GetString("query-cmd")
	switchCmd, _ = cmd.Flags().GetString("switch-cmd")
	return
}

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/barspace/barspace/internal/wm"
)

var switchSuccess = color.New(color.FgGreen, color.Bold)

var switchCmd = &cobra.Command{
	Use:   "switch <workspace>",
	Short: "Dispatch a workspace switch to the workspace manager",
	Long: `Fire the external workspace-switch command for the named workspace.
Best-effort, same as clicking the workspace widget: the exit status of
the workspace manager is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
	addWMFlags(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	queryCmd, switchCommand := getWMFlags(cmd)
	client := wm.NewExecClient(wm.ParseCommand(queryCmd), wm.ParseCommand(switchCommand), newLogger(cmd))

	client.SwitchWorkspace(cmd.Context(), args[0])
	switchSuccess.Fprintf(cmd.OutOrStdout(), "✓ switch dispatched: %s\n", args[0])
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barspace/barspace/internal/output"
	"github.com/barspace/barspace/internal/wm"
)

// DisplayResult is the output of the `display` command.
type DisplayResult struct {
	Display string `yaml:"display,omitempty" json:"display,omitempty"`
	Known   bool   `yaml:"known"             json:"known"`
}

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Print the active display reported by the workspace manager",
	RunE:  runDisplay,
}

func init() {
	rootCmd.AddCommand(displayCmd)
	addWMFlags(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	queryCmd, switchCmd := getWMFlags(cmd)
	client := wm.NewExecClient(wm.ParseCommand(queryCmd), wm.ParseCommand(switchCmd), newLogger(cmd))

	display := client.ActiveDisplay(cmd.Context())
	return output.Print(DisplayResult{Display: display, Known: display != ""})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barspace/barspace/internal/model"
	"github.com/barspace/barspace/internal/output"
	"github.com/barspace/barspace/internal/profile"
)

// ProfileResult is the output of the `profile` command.
type ProfileResult struct {
	Workspaces []model.Workspace `yaml:"workspaces" json:"workspaces"`
	Apps       model.AppIndex    `yaml:"apps"       json:"apps"`
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Load the workspace profile and print the extracted records",
	Long: `Load the workspace profile with the same tolerant extraction the tracker
uses, and print the resulting workspace records and app index. Useful for
checking what a malformed profile actually yields.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	addProfileFlags(profileCmd)
	profileCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runProfile(cmd *cobra.Command, args []string) error {
	path, mainDisplay := getProfileFlags(cmd)
	records, index := profile.Load(path, mainDisplay)
	return output.Print(ProfileResult{Workspaces: records, Apps: index})
}

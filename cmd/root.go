package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/barspace/barspace/internal/output"
	"github.com/barspace/barspace/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "barspace",
	Short: "Drive per-workspace indicator widgets on a status bar",
	Long: "A status-bar workspace tracker: loads a workspace profile, creates one\n" +
		"indicator widget per workspace, and keeps only the widgets of the active\n" +
		"display visible as the focused application changes.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr only;
// the tracker has no user-facing error channel.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return hclog.New(&hclog.LoggerOptions{
		Name:   "barspace",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

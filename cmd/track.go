package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/barspace/barspace/internal/bar"
	"github.com/barspace/barspace/internal/profile"
	"github.com/barspace/barspace/internal/tracker"
	"github.com/barspace/barspace/internal/wm"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run the resident workspace tracker",
	Long: `Load the workspace profile, create one indicator widget per workspace on
the status bar, and process host notifications (focus changes, widget
clicks, hover) from the event stream until it closes.

The event stream carries one JSON object per line, e.g.
  {"event":"front_app_switched","info":"Cursor"}
  {"name":"workspace.Code","event":"mouse.clicked"}

Wire the bar engine's event hook to this process's stdin.`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	addProfileFlags(trackCmd)
	addWMFlags(trackCmd)
	trackCmd.Flags().String("bar", "sketchybar", "Status bar binary to drive")
	trackCmd.Flags().String("position", "left", "Bar position for the widgets")
	trackCmd.Flags().String("events", "-", "Event stream: \"-\" for stdin or a pipe path")
	trackCmd.Flags().Bool("watch", false, "Reload widgets when the profile file changes")
}

func runTrack(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	profilePath, mainDisplay := getProfileFlags(cmd)
	queryCmd, switchCmd := getWMFlags(cmd)
	barBin, _ := cmd.Flags().GetString("bar")
	position, _ := cmd.Flags().GetString("position")
	eventsPath, _ := cmd.Flags().GetString("events")
	watch, _ := cmd.Flags().GetBool("watch")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	engine := bar.NewExecEngine(barBin, log)
	client := wm.NewExecClient(wm.ParseCommand(queryCmd), wm.ParseCommand(switchCmd), log)

	tr := tracker.New(engine, client, log)
	tr.SetPosition(position)

	records, index := profile.Load(profilePath, mainDisplay)
	log.Info("profile loaded", "path", profilePath, "workspaces", len(records), "apps", len(index))
	tr.Rebuild(records, index)
	tr.Refresh(ctx)

	stream, err := openEventStream(eventsPath)
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}
	defer stream.Close()
	events := bar.DecodeEvents(ctx, stream, log)

	var reload <-chan struct{}
	if watch {
		reload, err = profile.Watch(ctx, profilePath, log)
		if err != nil {
			return fmt.Errorf("watch profile: %w", err)
		}
	}

	// Single goroutine consumes both channels, so every widget mutation
	// is serialized through one queue.
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				log.Info("event stream closed, exiting")
				return nil
			}
			tr.HandleEvent(ctx, ev)
		case _, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			records, index := profile.Load(profilePath, mainDisplay)
			log.Info("profile reloaded", "workspaces", len(records), "apps", len(index))
			tr.Rebuild(records, index)
			tr.Refresh(ctx)
		}
	}
}

func openEventStream(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

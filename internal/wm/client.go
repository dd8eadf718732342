// Package wm talks to the external workspace manager.
package wm

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultTimeout bounds each external command so a wedged workspace
// manager cannot stall the event loop. Timeout is treated the same as
// failure.
const DefaultTimeout = 2 * time.Second

// Client queries and drives the external workspace manager.
type Client interface {
	// ActiveDisplay returns the identifier of the display holding the
	// focused application, or "" when it cannot be determined.
	ActiveDisplay(ctx context.Context) string

	// SwitchWorkspace asks the workspace manager to switch to the named
	// workspace. Best-effort: the exit status is ignored.
	SwitchWorkspace(ctx context.Context, name string)
}

// ExecClient shells out to the workspace manager binary.
type ExecClient struct {
	queryCmd  []string
	switchCmd []string
	timeout   time.Duration
	log       hclog.Logger
}

// NewExecClient builds a client around the given query and switch
// command lines. The workspace name is appended to switchCmd on each
// SwitchWorkspace call.
func NewExecClient(queryCmd, switchCmd []string, log hclog.Logger) *ExecClient {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &ExecClient{
		queryCmd:  queryCmd,
		switchCmd: switchCmd,
		timeout:   DefaultTimeout,
		log:       log,
	}
}

// ParseCommand splits a command-line string into argv. Returns nil for
// a blank string.
func ParseCommand(s string) []string {
	return strings.Fields(s)
}

func (c *ExecClient) ActiveDisplay(ctx context.Context) string {
	if len(c.queryCmd) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, c.queryCmd[0], c.queryCmd[1:]...).Output()
	if err != nil {
		c.log.Debug("active display query failed", "cmd", c.queryCmd[0], "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (c *ExecClient) SwitchWorkspace(ctx context.Context, name string) {
	if len(c.switchCmd) == 0 || name == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string{}, c.switchCmd[1:]...), name)
	if err := exec.CommandContext(ctx, c.switchCmd[0], args...).Run(); err != nil {
		// The workspace manager is the source of truth for whether the
		// switch happened; nothing to do here beyond a debug note.
		c.log.Debug("workspace switch command failed", "workspace", name, "error", err)
	}
}

package bar

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
)

// execTimeout bounds each bar invocation. The bar binary answers over a
// local socket, so anything slower than this is effectively down.
const execTimeout = 2 * time.Second

// ExecEngine drives the status bar by invoking its binary, one message
// per call (sketchybar-style --add/--set/--remove/--subscribe argv).
type ExecEngine struct {
	bin string
	log hclog.Logger
}

// NewExecEngine returns an engine around the given bar binary.
func NewExecEngine(bin string, log hclog.Logger) *ExecEngine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &ExecEngine{bin: bin, log: log}
}

func (e *ExecEngine) AddItem(name, position string) error {
	return e.run("--add", "item", name, position)
}

func (e *ExecEngine) SetItem(name string, props ItemProps) error {
	args := []string{}
	if props.Animate > 0 {
		args = append(args, "--animate", "tanh", strconv.Itoa(props.Animate))
	}
	args = append(args, "--set", name)
	args = append(args, props.args()...)
	return e.run(args...)
}

func (e *ExecEngine) RemoveItem(name string) error {
	return e.run("--remove", name)
}

func (e *ExecEngine) Subscribe(name string, events ...string) error {
	return e.run(append([]string{"--subscribe", name}, events...)...)
}

func (e *ExecEngine) run(args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, e.bin, args...).Run(); err != nil {
		e.log.Debug("bar command failed", "bin", e.bin, "args", args, "error", err)
		return fmt.Errorf("bar command %v: %w", args, err)
	}
	return nil
}

// args renders the set properties as key=value pairs in the bar
// binary's wire format.
func (p ItemProps) args() []string {
	var out []string
	if p.Drawing != nil {
		out = append(out, "drawing="+onOff(*p.Drawing))
	}
	if p.Icon != nil {
		out = append(out, "icon="+*p.Icon)
	}
	if p.IconColor != nil {
		out = append(out, "icon.color="+*p.IconColor)
	}
	if p.Label != nil {
		out = append(out, "label="+*p.Label)
	}
	if p.LabelColor != nil {
		out = append(out, "label.color="+*p.LabelColor)
	}
	if p.LabelWidth != nil {
		if *p.LabelWidth == LabelWidthDynamic {
			out = append(out, "label.width=dynamic")
		} else {
			out = append(out, "label.width="+strconv.Itoa(*p.LabelWidth))
		}
	}
	if p.Background != nil {
		out = append(out, "background.color="+*p.Background)
	}
	if p.BorderColor != nil {
		out = append(out, "background.border_color="+*p.BorderColor)
	}
	return out
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Package tracker implements the workspace indicator suite: one bar
// widget per workspace record, a front-app summary widget, visibility
// partitioned by the active display.
package tracker

import (
	"context"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/barspace/barspace/internal/bar"
	"github.com/barspace/barspace/internal/model"
	"github.com/barspace/barspace/internal/wm"
)

// SummaryItem is the bar item showing the focused application.
const SummaryItem = "front_app"

const itemPrefix = "workspace."

// Widget palette. Hover colors are transient and applied only by the
// hover handlers; Refresh resets to the inactive palette.
const (
	colorInactive = "0xffa6adc8"
	colorAccent   = "0xfff5c2e7"
	colorNeutral  = "0xff6c7086"
	colorHoverBg  = "0x33ffffff"
	colorClearBg  = "0x00000000"
)

// animationFrames is the duration passed to the host for property
// transitions.
const animationFrames = 12

// Tracker owns the widget registry and reacts to host events. It is
// single-threaded by contract: callers deliver events one at a time
// (the track loop is that queue).
type Tracker struct {
	engine bar.Engine
	wm     wm.Client
	log    hclog.Logger

	position string

	records []model.Workspace
	index   model.AppIndex
	items   map[string]string // workspace name -> item name
}

// New returns a tracker with no widgets; call Rebuild to create them.
func New(engine bar.Engine, client wm.Client, log hclog.Logger) *Tracker {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Tracker{
		engine:   engine,
		wm:       client,
		log:      log,
		position: "left",
		items:    map[string]string{},
	}
}

// SetPosition changes where new widgets are added on the bar. Takes
// effect on the next Rebuild.
func (t *Tracker) SetPosition(position string) { t.position = position }

// HandleEvent routes one host notification. It never fails: unknown
// events and malformed payloads are dropped with a debug note.
func (t *Tracker) HandleEvent(ctx context.Context, ev bar.Event) {
	switch ev.Event {
	case bar.EventFrontAppSwitched:
		t.OnFrontApp(ctx, strings.TrimSpace(ev.Info))
	case bar.EventMouseClicked:
		t.onClick(ctx, ev.Name)
	case bar.EventMouseEntered:
		t.onHoverEnter(ev.Name)
	case bar.EventMouseExited:
		t.onHoverExit(ev.Name)
	default:
		t.log.Debug("ignoring event", "event", ev.Event, "item", ev.Name)
	}
}

// record returns the loaded record with the given workspace name.
func (t *Tracker) record(name string) *model.Workspace {
	for i := range t.records {
		if t.records[i].Name == name {
			return &t.records[i]
		}
	}
	return nil
}

// recordForItem resolves a bar item name back to its workspace record.
func (t *Tracker) recordForItem(item string) *model.Workspace {
	for name, it := range t.items {
		if it == item {
			return t.record(name)
		}
	}
	return nil
}

func itemName(workspace string) string {
	return itemPrefix + strings.ReplaceAll(workspace, " ", "_")
}

// set applies props to an item, logging instead of propagating engine
// failures: a bar hiccup must never take the tracker down.
func (t *Tracker) set(item string, props bar.ItemProps) {
	if err := t.engine.SetItem(item, props); err != nil {
		t.log.Debug("set item failed", "item", item, "error", err)
	}
}

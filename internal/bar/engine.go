// Package bar is the adapter between the tracker and the host status-bar
// engine. The tracker only ever touches the Engine interface; the exec
// implementation translates calls into the bar binary's message protocol.
package bar

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/hashicorp/go-hclog"
)

// Engine is the host status-bar surface the tracker drives.
type Engine interface {
	// AddItem creates a named item at the given bar position.
	AddItem(name, position string) error

	// SetItem applies a property bag to an existing item. Only the
	// non-nil fields of props are applied.
	SetItem(name string, props ItemProps) error

	// RemoveItem destroys an item.
	RemoveItem(name string) error

	// Subscribe asks the host to deliver the given events for an item.
	Subscribe(name string, events ...string) error
}

// Event names delivered by the host engine.
const (
	EventFrontAppSwitched = "front_app_switched"
	EventMouseClicked     = "mouse.clicked"
	EventMouseEntered     = "mouse.entered"
	EventMouseExited      = "mouse.exited"
)

// LabelWidthDynamic sizes a label to its content.
const LabelWidthDynamic = -1

// ItemProps is the property bag applied to a bar item. Nil fields are
// left untouched so callers can update a single property in place.
type ItemProps struct {
	Drawing     *bool
	Icon        *string
	IconColor   *string
	Label       *string
	LabelColor  *string
	LabelWidth  *int
	Background  *string
	BorderColor *string
	Animate     int // animation duration in frames, 0 = no animation
}

// Bool returns a pointer to v, for ItemProps literals.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for ItemProps literals.
func String(v string) *string { return &v }

// Int returns a pointer to v, for ItemProps literals.
func Int(v int) *int { return &v }

// Event is one host notification decoded from the event stream. Name is
// the originating item; it is empty for bar-global events such as
// front_app_switched, whose payload rides in Info.
type Event struct {
	Name  string `json:"name,omitempty"`
	Event string `json:"event"`
	Info  string `json:"info,omitempty"`
}

// DecodeEvents reads JSON-line events from r until it closes or ctx is
// done. Malformed lines are skipped: a garbage notification must never
// take the tracker down.
func DecodeEvents(ctx context.Context, r io.Reader, log hclog.Logger) <-chan Event {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	out := make(chan Event)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var ev Event
			if err := json.Unmarshal(line, &ev); err != nil {
				log.Debug("skipping malformed event line", "error", err)
				continue
			}
			if ev.Event == "" {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Debug("event stream closed", "error", err)
		}
	}()
	return out
}

package tracker

import (
	"context"

	"github.com/barspace/barspace/internal/bar"
)

// onClick fires the workspace-switch command for the clicked widget.
// Fire-and-forget: no retry, no queue — rapid clicks issue independent
// invocations in order.
func (t *Tracker) onClick(ctx context.Context, item string) {
	rec := t.recordForItem(item)
	if rec == nil {
		return
	}
	t.wm.SwitchWorkspace(ctx, rec.Name)
}

// onHoverEnter reveals the extended label and hover background.
func (t *Tracker) onHoverEnter(item string) {
	rec := t.recordForItem(item)
	if rec == nil {
		return
	}
	t.set(item, bar.ItemProps{
		Label:      bar.String(rec.Shortcut + " - " + rec.Name),
		LabelWidth: bar.Int(bar.LabelWidthDynamic),
		Background: bar.String(colorHoverBg),
		Animate:    animationFrames,
	})
}

// onHoverExit collapses the label and reverts the background.
func (t *Tracker) onHoverExit(item string) {
	if t.recordForItem(item) == nil {
		return
	}
	t.set(item, bar.ItemProps{
		Label:      bar.String(""),
		LabelWidth: bar.Int(0),
		Background: bar.String(colorClearBg),
		Animate:    animationFrames,
	})
}

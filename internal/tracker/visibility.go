package tracker

import (
	"context"

	"github.com/barspace/barspace/internal/bar"
)

// Refresh recomputes widget visibility against the current active
// display. A widget draws exactly when its record is pinned to the
// active display; an unknown display ("" from the resolver) draws
// nothing. The pass also resets icon and label colors to the inactive
// palette, undoing any transient hover styling.
//
// Refresh is the single authority over the drawing flag and is
// idempotent: a second call with an unchanged active display produces
// the same widget states.
func (t *Tracker) Refresh(ctx context.Context) {
	active := t.wm.ActiveDisplay(ctx)
	for _, rec := range t.records {
		item, ok := t.items[rec.Name]
		if !ok {
			continue
		}
		draw := active != "" && rec.Display == active
		t.set(item, bar.ItemProps{
			Drawing:    bar.Bool(draw),
			IconColor:  bar.String(colorInactive),
			LabelColor: bar.String(colorInactive),
		})
	}
}

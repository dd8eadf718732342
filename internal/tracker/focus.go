package tracker

import (
	"context"

	"github.com/barspace/barspace/internal/bar"
	"github.com/barspace/barspace/internal/icons"
)

// OnFrontApp handles a front-application change. An empty name means no
// app is focused: the summary widget hides and nothing else changes.
// Otherwise the summary is updated from the app index and a visibility
// refresh always follows — a focus change is the only event that can
// move the active display, whether or not the app is known.
func (t *Tracker) OnFrontApp(ctx context.Context, app string) {
	if app == "" {
		t.set(SummaryItem, bar.ItemProps{Drawing: bar.Bool(false)})
		return
	}

	if name, ok := t.index.Lookup(app); ok {
		if rec := t.record(name); rec != nil {
			t.set(SummaryItem, bar.ItemProps{
				Drawing:     bar.Bool(true),
				Icon:        bar.String(icons.Glyph(rec.Name)),
				Label:       bar.String("W" + rec.Shortcut + " - " + app),
				BorderColor: bar.String(colorAccent),
				Animate:     animationFrames,
			})
			t.Refresh(ctx)
			return
		}
		// Indexed but its chunk never became a full record; fall
		// through to the unknown branch.
	}

	t.set(SummaryItem, bar.ItemProps{
		Drawing:     bar.Bool(true),
		Icon:        bar.String(icons.Default),
		Label:       bar.String(app),
		BorderColor: bar.String(colorNeutral),
		Animate:     animationFrames,
	})
	t.Refresh(ctx)
}

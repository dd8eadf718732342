package tracker

import (
	"github.com/barspace/barspace/internal/bar"
	"github.com/barspace/barspace/internal/icons"
	"github.com/barspace/barspace/internal/model"
)

// Rebuild tears down any previously created widgets and creates one per
// record plus the front-app summary widget. Widgets start non-drawing;
// Refresh decides what shows. Safe to call again after a profile
// reload — teardown first keeps the rebuild idempotent, so no duplicate
// or orphaned widgets survive.
func (t *Tracker) Rebuild(records []model.Workspace, index model.AppIndex) {
	for _, item := range t.items {
		if err := t.engine.RemoveItem(item); err != nil {
			t.log.Debug("remove item failed", "item", item, "error", err)
		}
	}
	if err := t.engine.RemoveItem(SummaryItem); err != nil {
		t.log.Debug("remove item failed", "item", SummaryItem, "error", err)
	}

	t.records = records
	t.index = index
	t.items = make(map[string]string, len(records))

	for _, rec := range records {
		item := itemName(rec.Name)
		if err := t.engine.AddItem(item, t.position); err != nil {
			t.log.Warn("add item failed", "item", item, "error", err)
			continue
		}
		t.set(item, bar.ItemProps{
			Drawing:    bar.Bool(false),
			Icon:       bar.String(icons.Glyph(rec.Name)),
			IconColor:  bar.String(colorInactive),
			Label:      bar.String(""),
			LabelColor: bar.String(colorInactive),
			LabelWidth: bar.Int(0),
			Background: bar.String(colorClearBg),
		})
		if err := t.engine.Subscribe(item,
			bar.EventMouseClicked, bar.EventMouseEntered, bar.EventMouseExited); err != nil {
			t.log.Debug("subscribe failed", "item", item, "error", err)
		}
		t.items[rec.Name] = item
	}

	if err := t.engine.AddItem(SummaryItem, t.position); err != nil {
		t.log.Warn("add item failed", "item", SummaryItem, "error", err)
		return
	}
	t.set(SummaryItem, bar.ItemProps{
		Drawing:     bar.Bool(false),
		LabelWidth:  bar.Int(bar.LabelWidthDynamic),
		Background:  bar.String(colorClearBg),
		BorderColor: bar.String(colorNeutral),
	})
}

// Items exposes the workspace-to-item mapping for inspection.
func (t *Tracker) Items() map[string]string {
	out := make(map[string]string, len(t.items))
	for k, v := range t.items {
		out[k] = v
	}
	return out
}

package tracker

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/barspace/barspace/internal/bar"
	"github.com/barspace/barspace/internal/icons"
	"github.com/barspace/barspace/internal/model"
)

// fakeItem mirrors the host-side state of one bar item.
type fakeItem struct {
	drawing     bool
	icon        string
	iconColor   string
	label       string
	labelColor  string
	labelWidth  int
	background  string
	borderColor string
	subscribed  []string
}

// fakeEngine implements bar.Engine in memory and records every call.
type fakeEngine struct {
	items map[string]*fakeItem
	ops   []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{items: map[string]*fakeItem{}}
}

func (e *fakeEngine) AddItem(name, position string) error {
	e.items[name] = &fakeItem{}
	e.ops = append(e.ops, "add "+name)
	return nil
}

func (e *fakeEngine) SetItem(name string, props bar.ItemProps) error {
	it, ok := e.items[name]
	if !ok {
		return fmt.Errorf("no such item: %s", name)
	}
	if props.Drawing != nil {
		it.drawing = *props.Drawing
	}
	if props.Icon != nil {
		it.icon = *props.Icon
	}
	if props.IconColor != nil {
		it.iconColor = *props.IconColor
	}
	if props.Label != nil {
		it.label = *props.Label
	}
	if props.LabelColor != nil {
		it.labelColor = *props.LabelColor
	}
	if props.LabelWidth != nil {
		it.labelWidth = *props.LabelWidth
	}
	if props.Background != nil {
		it.background = *props.Background
	}
	if props.BorderColor != nil {
		it.borderColor = *props.BorderColor
	}
	e.ops = append(e.ops, "set "+name)
	return nil
}

func (e *fakeEngine) RemoveItem(name string) error {
	delete(e.items, name)
	e.ops = append(e.ops, "remove "+name)
	return nil
}

func (e *fakeEngine) Subscribe(name string, events ...string) error {
	if it, ok := e.items[name]; ok {
		it.subscribed = append(it.subscribed, events...)
	}
	e.ops = append(e.ops, "subscribe "+name)
	return nil
}

// snapshot copies the current item states for before/after comparisons.
func (e *fakeEngine) snapshot() map[string]fakeItem {
	out := make(map[string]fakeItem, len(e.items))
	for name, it := range e.items {
		cp := *it
		cp.subscribed = append([]string(nil), it.subscribed...)
		out[name] = cp
	}
	return out
}

// fakeWM is a scripted workspace-manager client.
type fakeWM struct {
	display  string
	queries  int
	switches []string
}

func (f *fakeWM) ActiveDisplay(ctx context.Context) string {
	f.queries++
	return f.display
}

func (f *fakeWM) SwitchWorkspace(ctx context.Context, name string) {
	f.switches = append(f.switches, name)
}

func testRecords() ([]model.Workspace, model.AppIndex) {
	records := []model.Workspace{
		{Name: "Code", Shortcut: "1", Display: "Main", Apps: []string{"Cursor"}},
		{Name: "Chat", Shortcut: "2", Display: "Laptop", Apps: []string{"Slack"}},
	}
	index := model.AppIndex{"Cursor": "Code", "Slack": "Chat"}
	return records, index
}

func newTestTracker(display string) (*Tracker, *fakeEngine, *fakeWM) {
	engine := newFakeEngine()
	client := &fakeWM{display: display}
	tr := New(engine, client, nil)
	records, index := testRecords()
	tr.Rebuild(records, index)
	return tr, engine, client
}

func TestRebuild_OneWidgetPerRecordPlusSummary(t *testing.T) {
	_, engine, _ := newTestTracker("Main")

	if len(engine.items) != 3 {
		t.Fatalf("expected 2 workspace widgets + summary, got %d items", len(engine.items))
	}
	for _, name := range []string{"workspace.Code", "workspace.Chat", SummaryItem} {
		if _, ok := engine.items[name]; !ok {
			t.Fatalf("expected item %q to exist", name)
		}
	}
	for _, name := range []string{"workspace.Code", "workspace.Chat"} {
		it := engine.items[name]
		if it.drawing {
			t.Fatalf("%s should start non-drawing", name)
		}
		wantEvents := []string{bar.EventMouseClicked, bar.EventMouseEntered, bar.EventMouseExited}
		if !reflect.DeepEqual(it.subscribed, wantEvents) {
			t.Fatalf("%s subscriptions: expected %v, got %v", name, wantEvents, it.subscribed)
		}
	}
}

func TestRebuild_TearsDownPreviousWidgets(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")

	tr.Rebuild([]model.Workspace{
		{Name: "Solo", Shortcut: "9", Display: "Main"},
	}, model.AppIndex{})

	if len(engine.items) != 2 {
		t.Fatalf("expected 1 widget + summary after rebuild, got %d", len(engine.items))
	}
	if _, ok := engine.items["workspace.Code"]; ok {
		t.Fatal("old widget survived the rebuild")
	}
	if _, ok := engine.items["workspace.Solo"]; !ok {
		t.Fatal("new widget missing after rebuild")
	}
	want := map[string]string{"Solo": "workspace.Solo"}
	if !reflect.DeepEqual(tr.Items(), want) {
		t.Fatalf("expected item mapping %v, got %v", want, tr.Items())
	}
}

func TestRefresh_PartitionsByDisplay(t *testing.T) {
	tr, engine, client := newTestTracker("Main")

	tr.Refresh(context.Background())

	records, _ := testRecords()
	for _, rec := range records {
		it := engine.items[itemName(rec.Name)]
		want := rec.Display == client.display
		if it.drawing != want {
			t.Fatalf("%s: drawing=%v, want %v", rec.Name, it.drawing, want)
		}
	}
}

func TestRefresh_Idempotent(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")

	tr.Refresh(context.Background())
	first := engine.snapshot()
	tr.Refresh(context.Background())
	second := engine.snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second refresh changed widget state:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRefresh_UnknownDisplayHidesEverything(t *testing.T) {
	tr, engine, client := newTestTracker("Main")
	tr.Refresh(context.Background())
	if !engine.items["workspace.Code"].drawing {
		t.Fatal("precondition: Code should draw while the display is known")
	}

	client.display = ""
	tr.Refresh(context.Background())

	for name, it := range engine.items {
		if name == SummaryItem {
			continue
		}
		if it.drawing {
			t.Fatalf("%s drawing with unknown active display", name)
		}
	}
}

func TestRefresh_ResetsHoverStylingToInactivePalette(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")
	tr.onHoverEnter("workspace.Code")

	tr.Refresh(context.Background())

	it := engine.items["workspace.Code"]
	if it.iconColor != colorInactive || it.labelColor != colorInactive {
		t.Fatalf("expected inactive palette after refresh, got icon=%s label=%s", it.iconColor, it.labelColor)
	}
}

func TestOnFrontApp_KnownAppScenario(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")

	tr.OnFrontApp(context.Background(), "Cursor")

	summary := engine.items[SummaryItem]
	if !summary.drawing {
		t.Fatal("summary widget should be drawing")
	}
	if summary.icon != icons.Glyph("Code") {
		t.Fatalf("expected Code glyph, got %q", summary.icon)
	}
	if summary.label != "W1 - Cursor" {
		t.Fatalf("expected label %q, got %q", "W1 - Cursor", summary.label)
	}
	if summary.borderColor != colorAccent {
		t.Fatalf("expected accent border, got %s", summary.borderColor)
	}
	if !engine.items["workspace.Code"].drawing {
		t.Fatal("Code widget should be visible on the active display")
	}
	if engine.items["workspace.Chat"].drawing {
		t.Fatal("Chat widget belongs to Laptop and must stay hidden")
	}
}

func TestOnFrontApp_UnknownAppIsNotAnError(t *testing.T) {
	tr, engine, client := newTestTracker("Main")
	before := client.queries

	tr.OnFrontApp(context.Background(), "some-app-not-in-index")

	summary := engine.items[SummaryItem]
	if !summary.drawing {
		t.Fatal("summary should still show the raw app name")
	}
	if summary.label != "some-app-not-in-index" {
		t.Fatalf("expected raw app name label, got %q", summary.label)
	}
	if summary.borderColor != colorNeutral {
		t.Fatalf("expected neutral border, got %s", summary.borderColor)
	}
	if client.queries != before+1 {
		t.Fatal("unknown app must still trigger a visibility refresh")
	}
}

func TestOnFrontApp_EmptyNameHidesSummaryWithoutRefresh(t *testing.T) {
	tr, engine, client := newTestTracker("Main")
	tr.OnFrontApp(context.Background(), "Cursor")
	before := client.queries

	tr.OnFrontApp(context.Background(), "")

	if engine.items[SummaryItem].drawing {
		t.Fatal("summary should hide when no app is focused")
	}
	if client.queries != before {
		t.Fatal("empty focus event should not trigger a refresh")
	}
}

func TestOnFrontApp_IndexedAppWithoutRecordFallsThrough(t *testing.T) {
	engine := newFakeEngine()
	client := &fakeWM{display: "Main"}
	tr := New(engine, client, nil)
	// "Ghost" was indexed from a chunk that never became a full record.
	tr.Rebuild([]model.Workspace{
		{Name: "Code", Shortcut: "1", Display: "Main"},
	}, model.AppIndex{"Mail": "Ghost"})

	tr.OnFrontApp(context.Background(), "Mail")

	summary := engine.items[SummaryItem]
	if summary.label != "Mail" || summary.borderColor != colorNeutral {
		t.Fatalf("expected neutral fallback for recordless workspace, got %+v", summary)
	}
}

func TestClick_DispatchesSwitchInOrder(t *testing.T) {
	tr, _, client := newTestTracker("Main")

	tr.HandleEvent(context.Background(), bar.Event{Name: "workspace.Chat", Event: bar.EventMouseClicked})
	tr.HandleEvent(context.Background(), bar.Event{Name: "workspace.Code", Event: bar.EventMouseClicked})

	want := []string{"Chat", "Code"}
	if !reflect.DeepEqual(client.switches, want) {
		t.Fatalf("expected switches %v, got %v", want, client.switches)
	}
}

func TestClick_UnknownItemIgnored(t *testing.T) {
	tr, _, client := newTestTracker("Main")

	tr.HandleEvent(context.Background(), bar.Event{Name: "volume", Event: bar.EventMouseClicked})

	if len(client.switches) != 0 {
		t.Fatalf("expected no dispatch, got %v", client.switches)
	}
}

func TestHover_EnterRevealsAndExitCollapses(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")

	tr.HandleEvent(context.Background(), bar.Event{Name: "workspace.Code", Event: bar.EventMouseEntered})
	it := engine.items["workspace.Code"]
	if it.label != "1 - Code" {
		t.Fatalf("expected extended label, got %q", it.label)
	}
	if it.labelWidth != bar.LabelWidthDynamic {
		t.Fatalf("expected dynamic label width, got %d", it.labelWidth)
	}
	if it.background != colorHoverBg {
		t.Fatalf("expected hover background, got %s", it.background)
	}

	tr.HandleEvent(context.Background(), bar.Event{Name: "workspace.Code", Event: bar.EventMouseExited})
	if it.label != "" || it.labelWidth != 0 {
		t.Fatalf("expected collapsed label, got %q width %d", it.label, it.labelWidth)
	}
	if it.background != colorClearBg {
		t.Fatalf("expected cleared background, got %s", it.background)
	}
}

func TestHover_NeverTogglesDrawing(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")
	tr.Refresh(context.Background())
	before := engine.items["workspace.Chat"].drawing

	tr.onHoverEnter("workspace.Chat")
	tr.onHoverExit("workspace.Chat")

	if engine.items["workspace.Chat"].drawing != before {
		t.Fatal("hover handlers must not touch the drawing flag")
	}
}

func TestHandleEvent_UnknownEventIgnored(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")
	before := engine.snapshot()

	tr.HandleEvent(context.Background(), bar.Event{Event: "volume_change", Info: "42"})

	if !reflect.DeepEqual(before, engine.snapshot()) {
		t.Fatal("unknown event mutated widget state")
	}
}

func TestHandleEvent_TrimsFrontAppPayload(t *testing.T) {
	tr, engine, _ := newTestTracker("Main")

	tr.HandleEvent(context.Background(), bar.Event{Event: bar.EventFrontAppSwitched, Info: "  Cursor  "})

	if got := engine.items[SummaryItem].label; got != "W1 - Cursor" {
		t.Fatalf("expected trimmed payload, got label %q", got)
	}
}

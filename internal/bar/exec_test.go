package bar

import (
	"reflect"
	"testing"
)

func TestItemPropsArgs_OnlySetFields(t *testing.T) {
	props := ItemProps{
		Drawing: Bool(true),
		Icon:    String("X"),
	}

	got := props.args()
	want := []string{"drawing=on", "icon=X"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestItemPropsArgs_EmptyStringsAreExplicit(t *testing.T) {
	// Collapsing a hover label needs label="" on the wire, distinct from
	// leaving the label untouched.
	props := ItemProps{
		Label:      String(""),
		LabelWidth: Int(0),
	}

	got := props.args()
	want := []string{"label=", "label.width=0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestItemPropsArgs_DynamicLabelWidth(t *testing.T) {
	props := ItemProps{LabelWidth: Int(LabelWidthDynamic)}

	got := props.args()
	want := []string{"label.width=dynamic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestItemPropsArgs_FullBag(t *testing.T) {
	props := ItemProps{
		Drawing:     Bool(false),
		Icon:        String("I"),
		IconColor:   String("0xff000000"),
		Label:       String("L"),
		LabelColor:  String("0xff111111"),
		LabelWidth:  Int(20),
		Background:  String("0xff222222"),
		BorderColor: String("0xff333333"),
	}

	got := props.args()
	want := []string{
		"drawing=off",
		"icon=I",
		"icon.color=0xff000000",
		"label=L",
		"label.color=0xff111111",
		"label.width=20",
		"background.color=0xff222222",
		"background.border_color=0xff333333",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

package icons

import "testing"

func TestGlyph_Known(t *testing.T) {
	if Glyph("Code") == Default {
		t.Fatal("expected a dedicated glyph for Code")
	}
}

func TestGlyph_FallsBackToDefault(t *testing.T) {
	if got := Glyph("Never-Heard-Of-It"); got != Default {
		t.Fatalf("expected default glyph, got %q", got)
	}
}

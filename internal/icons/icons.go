// Package icons resolves workspace names to bar glyphs.
package icons

// Nerd Font codepoints keyed by workspace name.
var glyphs = map[string]string{
	"Code":     "", // code brackets
	"Chat":     "", // speech bubbles
	"Web":      "", // globe
	"Mail":     "", // envelope
	"Music":    "", // note
	"Term":     "", // prompt
	"Terminal": "",
	"Notes":    "", // sticky note
	"Design":   "", // paintbrush
	"Video":    "", // camera
	"Games":    "", // gamepad
	"Files":    "", // folder
}

// Default is the glyph used for workspaces without a dedicated icon.
const Default = "" // window outline

// Glyph returns the icon for a workspace name, falling back to Default.
func Glyph(workspace string) string {
	if g, ok := glyphs[workspace]; ok {
		return g
	}
	return Default
}

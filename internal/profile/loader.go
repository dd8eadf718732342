// Package profile loads the workspace profile document.
//
// The profile is a list of workspace chunks, each expected to carry a
// name, a human-format shortcut ("opt+1"), a display, and a list of
// member apps. Real profiles drift: comments, trailing commas, chunks
// missing fields. Extraction is therefore per-chunk and per-field — a
// malformed entry degrades to "that entry is absent" and never aborts
// the load.
package profile

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/tidwall/jsonc"

	"github.com/barspace/barspace/internal/model"
)

// DefaultMainDisplay is the display whose records sort first.
const DefaultMainDisplay = "Main"

// Load reads the profile at path and returns the workspace records plus
// the app index. A missing or unreadable file yields empty results: the
// tracker still starts and simply shows no workspace widgets.
//
// App-to-workspace association and record materialization are independent
// outputs of the same pass: a chunk missing its display contributes no
// record, but its member apps are still indexed under its name.
func Load(path, mainDisplay string) ([]model.Workspace, model.AppIndex) {
	index := model.AppIndex{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, index
	}

	var records []model.Workspace
	for _, chunk := range splitChunks(data) {
		name, err := jsonparser.GetString(chunk, "name")
		if err != nil || name == "" {
			continue // nothing to associate apps with
		}

		for _, app := range memberApps(chunk) {
			index[app] = name
		}

		shortcut := shortcutKey(stringField(chunk, "shortcut"))
		display := stringField(chunk, "display")
		if shortcut == "" || display == "" {
			continue // apps indexed above; the record itself is incomplete
		}

		records = append(records, model.Workspace{
			Name:     name,
			Shortcut: shortcut,
			Display:  display,
			Apps:     memberApps(chunk),
		})
	}

	if mainDisplay == "" {
		mainDisplay = DefaultMainDisplay
	}
	model.SortWorkspaces(records, mainDisplay)
	return records, index
}

// splitChunks isolates the per-record raw chunks of the document.
// jsonc.ToJSON strips comments and trailing commas first, so lightly
// annotated profiles still split cleanly. Accepts either a top-level
// list or an object with a "workspaces" list.
func splitChunks(data []byte) []json.RawMessage {
	std := jsonc.ToJSON(data)

	var chunks []json.RawMessage
	if err := json.Unmarshal(std, &chunks); err == nil {
		return chunks
	}

	nested, _, _, err := jsonparser.Get(std, "workspaces")
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(nested, &chunks); err != nil {
		return nil
	}
	return chunks
}

// memberApps extracts the app names inside a chunk. Entries may be
// objects with a "name" field or bare strings; anything else is skipped.
func memberApps(chunk []byte) []string {
	var apps []string
	_, _ = jsonparser.ArrayEach(chunk, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		switch dataType {
		case jsonparser.Object:
			if name, err := jsonparser.GetString(value, "name"); err == nil && name != "" {
				apps = append(apps, name)
			}
		case jsonparser.String:
			if name, err := jsonparser.ParseString(value); err == nil && name != "" {
				apps = append(apps, name)
			}
		}
	}, "apps")
	return apps
}

// stringField returns a trimmed string field from a chunk, or "" when
// the field is absent or not a string.
func stringField(chunk []byte, key string) string {
	v, err := jsonparser.GetString(chunk, key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// shortcutKey extracts the bare key from a human-format shortcut like
// "opt+1". Without a modifier separator the value is used as-is.
func shortcutKey(shortcut string) string {
	if shortcut == "" {
		return ""
	}
	if i := strings.LastIndex(shortcut, "+"); i >= 0 {
		return strings.TrimSpace(shortcut[i+1:])
	}
	return shortcut
}

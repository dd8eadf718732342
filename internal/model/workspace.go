package model

import (
	"sort"
	"strconv"
)

// Workspace is one profile record: a named group of applications pinned
// to a physical display, reachable via a keyboard shortcut.
type Workspace struct {
	Name     string   `yaml:"name"           json:"name"`
	Shortcut string   `yaml:"shortcut"       json:"shortcut"` // bare key, "1" from "opt+1"
	Display  string   `yaml:"display"        json:"display"`
	Apps     []string `yaml:"apps,omitempty" json:"apps,omitempty"`
}

// AppIndex maps an application name to the workspace it belongs to.
// When an app appears under multiple workspaces, the last one loaded wins.
type AppIndex map[string]string

// Lookup returns the workspace name for an application.
func (idx AppIndex) Lookup(app string) (string, bool) {
	name, ok := idx[app]
	return name, ok
}

// SortWorkspaces orders records for display: records pinned to mainDisplay
// sort before all others, then ascending numeric shortcut key. Non-numeric
// shortcut keys sort as 0.
func SortWorkspaces(records []Workspace, mainDisplay string) {
	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := displayRank(records[i], mainDisplay), displayRank(records[j], mainDisplay)
		if ri != rj {
			return ri < rj
		}
		return shortcutValue(records[i].Shortcut) < shortcutValue(records[j].Shortcut)
	})
}

func displayRank(w Workspace, mainDisplay string) int {
	if w.Display == mainDisplay {
		return 0
	}
	return 1
}

func shortcutValue(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0
	}
	return n
}

// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tidwall/jsonc"
)

// KeyMap defines all key bindings for the console.
type KeyMap struct {
	// List navigation.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Server-side pagination.
	NextPage key.Binding
	PrevPage key.Binding

	// Tab switching.
	NextTab key.Binding
	PrevTab key.Binding

	// Focus switching between list and detail pane.
	FocusToggle key.Binding

	// Search and filters.
	SearchActivate key.Binding // Enter search mode.
	SearchClear    key.Binding // Clear search/filters and exit search mode.
	FilterStatus   key.Binding // Open the status filter dropdown.

	// Row actions (approve, reject, resolve, mark paid, validate).
	Action  key.Binding
	Refresh key.Binding

	// Data transfer.
	Export key.Binding

	// Notifications.
	Notifications key.Binding

	// Theme switch (dark/light), persisted to the state file.
	ThemeToggle key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "prev page"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("]", "tab"),
		key.WithHelp("]", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("[", "shift+tab"),
		key.WithHelp("[", "prev tab"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "detail"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear"),
	),
	FilterStatus: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Action: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "actions"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Notifications: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "notifications"),
	),
	ThemeToggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// keymapOverride is the on-disk shape of a keymap override file. Each
// field lists the keys bound to that action; omitted fields keep the
// default binding. The file is JSONC, so users can comment out
// bindings while experimenting.
type keymapOverride struct {
	Up             []string `json:"up"`
	Down           []string `json:"down"`
	PageUp         []string `json:"page_up"`
	PageDown       []string `json:"page_down"`
	Home           []string `json:"home"`
	End            []string `json:"end"`
	NextPage       []string `json:"next_page"`
	PrevPage       []string `json:"prev_page"`
	NextTab        []string `json:"next_tab"`
	PrevTab        []string `json:"prev_tab"`
	FocusToggle    []string `json:"focus_toggle"`
	SearchActivate []string `json:"search"`
	SearchClear    []string `json:"search_clear"`
	FilterStatus   []string `json:"filter"`
	Action         []string `json:"action"`
	Refresh        []string `json:"refresh"`
	Export         []string `json:"export"`
	Notifications  []string `json:"notifications"`
	ThemeToggle    []string `json:"theme_toggle"`
	Quit           []string `json:"quit"`
}

// LoadKeyMap returns DefaultKeyMap with any overrides from the given
// JSONC file applied. A missing file is not an error; a malformed one
// is, so typos surface at startup rather than as dead keys.
func LoadKeyMap(path string) (KeyMap, error) {
	keyMap := DefaultKeyMap
	if path == "" {
		return keyMap, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return keyMap, nil
	}
	if err != nil {
		return keyMap, fmt.Errorf("opsui: reading keymap %s: %w", path, err)
	}

	var override keymapOverride
	if err := json.Unmarshal(jsonc.ToJSON(data), &override); err != nil {
		return keyMap, fmt.Errorf("opsui: parsing keymap %s: %w", path, err)
	}

	applyKeys(&keyMap.Up, override.Up)
	applyKeys(&keyMap.Down, override.Down)
	applyKeys(&keyMap.PageUp, override.PageUp)
	applyKeys(&keyMap.PageDown, override.PageDown)
	applyKeys(&keyMap.Home, override.Home)
	applyKeys(&keyMap.End, override.End)
	applyKeys(&keyMap.NextPage, override.NextPage)
	applyKeys(&keyMap.PrevPage, override.PrevPage)
	applyKeys(&keyMap.NextTab, override.NextTab)
	applyKeys(&keyMap.PrevTab, override.PrevTab)
	applyKeys(&keyMap.FocusToggle, override.FocusToggle)
	applyKeys(&keyMap.SearchActivate, override.SearchActivate)
	applyKeys(&keyMap.SearchClear, override.SearchClear)
	applyKeys(&keyMap.FilterStatus, override.FilterStatus)
	applyKeys(&keyMap.Action, override.Action)
	applyKeys(&keyMap.Refresh, override.Refresh)
	applyKeys(&keyMap.Export, override.Export)
	applyKeys(&keyMap.Notifications, override.Notifications)
	applyKeys(&keyMap.ThemeToggle, override.ThemeToggle)
	applyKeys(&keyMap.Quit, override.Quit)

	return keyMap, nil
}

// applyKeys replaces the binding's key list when the override names
// any keys. The help text keeps the first key as its label.
func applyKeys(binding *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	help := binding.Help()
	*binding = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], help.Desc),
	)
}

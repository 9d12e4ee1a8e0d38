// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits without a selection.
	Quit key.Binding

	// Clear empties the query, or quits when it is already empty.
	Clear key.Binding

	// Up moves the selection up.
	Up key.Binding

	// Down moves the selection down.
	Down key.Binding

	// Select picks the highlighted entry.
	Select key.Binding

	// Focus toggles between typing and navigating the results.
	Focus key.Binding

	// Details opens the highlighted entry.
	Details key.Binding

	// Back leaves the details view.
	Back key.Binding
}

// DefaultKeyMap returns the default keybindings. j and k only navigate
// while the results have focus, since they are ordinary query characters.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
	}
}

// InputHelp returns the hints shown while typing.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Focus, k.Clear}
}

// ResultsHelp returns the hints shown while navigating results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Details, k.Focus}
}

// DetailsHelp returns the hints shown on the details view.
func (k *KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Quit}
}

// Matches reports whether the key string is one of the binding's keys.
// Arrow and control keys always match; letters only when letters is set.
func Matches(keyStr string, binding key.Binding, letters bool) bool {
	for _, k := range binding.Keys() {
		if k != keyStr {
			continue
		}
		if len(k) == 1 && !letters {
			return false
		}
		return true
	}
	return false
}

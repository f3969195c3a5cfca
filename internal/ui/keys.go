package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/camerondurham/typy-cli/internal/modes"
)

// keyMap defines the non-typing keyboard bindings.
type keyMap struct {
	Quit      key.Binding
	Restart   key.Binding
	Backspace key.Binding
	NextMode  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "restart"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "mode: "+strings.Join(modes.Names(), "/")),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.NextMode, k.Backspace, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

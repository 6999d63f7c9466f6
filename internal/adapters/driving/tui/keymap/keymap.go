// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// SwitchTab cycles between the calculator and converter panels.
	SwitchTab key.Binding

	// ToggleTheme switches between the dark and light themes.
	ToggleTheme key.Binding

	// ToggleContrast toggles high-contrast mode.
	ToggleContrast key.Binding

	// Up navigates up.
	Up key.Binding

	// Down navigates down.
	Down key.Binding

	// Left cycles a selector backwards.
	Left key.Binding

	// Right cycles a selector forwards.
	Right key.Binding

	// Evaluate computes the pending expression.
	Evaluate key.Binding

	// Clear resets the calculator.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch panel"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		ToggleContrast: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "contrast"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.ToggleTheme, k.Quit}
}

// CalculatorHelp returns keybindings shown on the calculator panel.
func (k *KeyMap) CalculatorHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.SwitchTab, k.Quit}
}

// ConverterHelp returns keybindings shown on the converter panel.
func (k *KeyMap) ConverterHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.SwitchTab, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Evaluate, k.Clear, k.SwitchTab},
		{k.ToggleTheme, k.ToggleContrast, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

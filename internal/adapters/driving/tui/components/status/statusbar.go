// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herissonneves/quantio/internal/adapters/driving/tui/keymap"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/styles"
	"github.com/herissonneves/quantio/internal/core/domain"
)

// Bar displays the active panel, theme and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	tab     domain.Tab
	theme   domain.Theme
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		tab:    domain.TabCalculator,
		theme:  domain.ThemeDark,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the active panel and theme, or an error message.
func (s *Bar) renderLeft() string {
	if s.message != "" {
		return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
	}
	return s.styles.Normal.Render(fmt.Sprintf("%s · %s", s.tab, s.theme.Description()))
}

// renderRight renders keybinding hints for the active panel.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.tab == domain.TabConverter {
		bindings = s.keymap.ConverterHelp()
	} else {
		bindings = s.keymap.CalculatorHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetStyles swaps the style set when the theme changes.
func (s *Bar) SetStyles(st *styles.Styles) {
	s.styles = st
}

// SetTab sets the active panel.
func (s *Bar) SetTab(tab domain.Tab) {
	s.tab = tab
}

// Tab returns the active panel.
func (s *Bar) Tab() domain.Tab {
	return s.tab
}

// SetTheme sets the displayed theme name.
func (s *Bar) SetTheme(theme domain.Theme) {
	s.theme = theme
}

// SetMessage sets an error message. An empty string clears it.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

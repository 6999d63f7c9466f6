// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/herissonneves/quantio/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// StatusBackground is the status bar background colour.
	StatusBackground lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#7C3AED"), // Purple
		Secondary:        lipgloss.Color("#06B6D4"), // Cyan
		Background:       lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground:       lipgloss.Color("#CDD6F4"), // Light gray
		Muted:            lipgloss.Color("#6C7086"), // Medium gray
		Error:            lipgloss.Color("#F38BA8"), // Red
		Border:           lipgloss.Color("#45475A"), // Border gray
		StatusBackground: lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#6D28D9"), // Purple
		Secondary:        lipgloss.Color("#0E7490"), // Teal
		Background:       lipgloss.Color("#EFF1F5"), // Near white
		Foreground:       lipgloss.Color("#4C4F69"), // Dark gray
		Muted:            lipgloss.Color("#8C8FA1"), // Medium gray
		Error:            lipgloss.Color("#D20F39"), // Red
		Border:           lipgloss.Color("#ACB0BE"), // Border gray
		StatusBackground: lipgloss.Color("#DCE0E8"),
	}
}

// withHighContrast returns a copy of the theme with foreground and
// muted colours pushed to the extremes of the palette.
func (t *Theme) withHighContrast(dark bool) *Theme {
	c := *t
	if dark {
		c.Foreground = lipgloss.Color("#FFFFFF")
		c.Muted = lipgloss.Color("#BAC2DE")
		c.Border = lipgloss.Color("#CDD6F4")
	} else {
		c.Foreground = lipgloss.Color("#000000")
		c.Muted = lipgloss.Color("#3C3F52")
		c.Border = lipgloss.Color("#4C4F69")
	}
	return &c
}

// ThemeFor resolves preference values to a concrete theme.
func ThemeFor(theme domain.Theme, highContrast bool) *Theme {
	var t *Theme
	if theme == domain.ThemeLight {
		t = LightTheme()
	} else {
		t = DarkTheme()
	}
	if highContrast {
		t = t.withHighContrast(theme != domain.ThemeLight)
	}
	return t
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Display style for the calculator's result line.
	Display lipgloss.Style

	// Expression style for the pending expression line.
	Expression lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// TabActive style for the selected tab label.
	TabActive lipgloss.Style

	// TabInactive style for unselected tab labels.
	TabInactive lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Display: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Align(lipgloss.Right),

		Expression: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Align(lipgloss.Right),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBackground).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() *Styles {
	return NewStyles(DarkTheme())
}

// StylesFor returns styles resolved from preference values.
func StylesFor(theme domain.Theme, highContrast bool) *Styles {
	return NewStyles(ThemeFor(theme, highContrast))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

package domain

// Theme names a colour theme for the interface.
type Theme string

// Available themes.
const (
	// ThemeDark is the dark palette.
	ThemeDark Theme = "dark"

	// ThemeLight is the light palette.
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return "Unknown"
	}
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// Tab identifies one of the two interactive panels.
type Tab string

// The panels.
const (
	// TabCalculator is the arithmetic calculator panel.
	TabCalculator Tab = "calculator"

	// TabConverter is the unit converter panel.
	TabConverter Tab = "converter"
)

// IsValid returns true if the tab is recognised.
func (t Tab) IsValid() bool {
	return t == TabCalculator || t == TabConverter
}

// String returns the string representation.
func (t Tab) String() string {
	return string(t)
}

// Preferences holds persisted display preferences, the only state that
// survives across runs.
type Preferences struct {
	// Theme is the active colour theme.
	Theme Theme

	// HighContrast increases foreground/background separation.
	HighContrast bool

	// LastCategory is the converter category selected last.
	LastCategory Category

	// ActiveTab is the panel shown on start.
	ActiveTab Tab
}

// DefaultPreferences returns preferences with sensible defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:        ThemeDark,
		HighContrast: false,
		LastCategory: CategoryLength,
		ActiveTab:    TabCalculator,
	}
}

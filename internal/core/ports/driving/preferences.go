package driving

import "github.com/herissonneves/quantio/internal/core/domain"

// PreferencesService manages persisted display preferences.
type PreferencesService interface {
	// Get retrieves current preferences, falling back to defaults for
	// missing or invalid stored values.
	Get() (domain.Preferences, error)

	// Save persists all preferences.
	Save(prefs domain.Preferences) error

	// SetTheme updates the colour theme.
	SetTheme(theme domain.Theme) error

	// SetHighContrast updates the high-contrast flag.
	SetHighContrast(enabled bool) error

	// SetLastCategory remembers the converter category selected last.
	SetLastCategory(category domain.Category) error

	// SetActiveTab remembers the panel shown on start.
	SetActiveTab(tab domain.Tab) error
}

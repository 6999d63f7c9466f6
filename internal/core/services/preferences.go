package services

import (
	"fmt"

	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/core/ports/driven"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// Config keys for preference storage.
const (
	keyTheme        = "appearance.theme"
	keyHighContrast = "appearance.high_contrast"
	keyCategory     = "converter.category"
	keyActiveTab    = "ui.active_tab"
)

// PreferencesService manages persisted display preferences.
type PreferencesService struct {
	configStore driven.ConfigStore
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(configStore driven.ConfigStore) *PreferencesService {
	return &PreferencesService{configStore: configStore}
}

// Get retrieves current preferences. Missing or invalid stored values
// fall back to defaults.
func (s *PreferencesService) Get() (domain.Preferences, error) {
	defaults := domain.DefaultPreferences()

	return domain.Preferences{
		Theme:        s.getTheme(defaults.Theme),
		HighContrast: s.getBool(keyHighContrast, defaults.HighContrast),
		LastCategory: s.getCategory(defaults.LastCategory),
		ActiveTab:    s.getTab(defaults.ActiveTab),
	}, nil
}

// Save persists all preferences.
func (s *PreferencesService) Save(prefs domain.Preferences) error {
	if err := s.configStore.Set(keyTheme, prefs.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := s.configStore.Set(keyHighContrast, prefs.HighContrast); err != nil {
		return fmt.Errorf("save high contrast: %w", err)
	}
	if err := s.configStore.Set(keyCategory, prefs.LastCategory.String()); err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	if err := s.configStore.Set(keyActiveTab, prefs.ActiveTab.String()); err != nil {
		return fmt.Errorf("save active tab: %w", err)
	}
	return nil
}

// SetTheme updates the colour theme.
func (s *PreferencesService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", theme)
	}
	return s.configStore.Set(keyTheme, theme.String())
}

// SetHighContrast updates the high-contrast flag.
func (s *PreferencesService) SetHighContrast(enabled bool) error {
	return s.configStore.Set(keyHighContrast, enabled)
}

// SetLastCategory remembers the converter category selected last.
func (s *PreferencesService) SetLastCategory(category domain.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	return s.configStore.Set(keyCategory, category.String())
}

// SetActiveTab remembers the panel shown on start.
func (s *PreferencesService) SetActiveTab(tab domain.Tab) error {
	if !tab.IsValid() {
		return fmt.Errorf("invalid tab: %s", tab)
	}
	return s.configStore.Set(keyActiveTab, tab.String())
}

// Helper methods for reading config with defaults.

func (s *PreferencesService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *PreferencesService) getTheme(defaultVal domain.Theme) domain.Theme {
	val := s.configStore.GetString(keyTheme)
	if val == "" {
		return defaultVal
	}
	theme := domain.Theme(val)
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}

func (s *PreferencesService) getCategory(defaultVal domain.Category) domain.Category {
	val := s.configStore.GetString(keyCategory)
	if val == "" {
		return defaultVal
	}
	category := domain.Category(val)
	if !category.IsValid() {
		return defaultVal
	}
	return category
}

func (s *PreferencesService) getTab(defaultVal domain.Tab) domain.Tab {
	val := s.configStore.GetString(keyActiveTab)
	if val == "" {
		return defaultVal
	}
	tab := domain.Tab(val)
	if !tab.IsValid() {
		return defaultVal
	}
	return tab
}

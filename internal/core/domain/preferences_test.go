package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_IsValid(t *testing.T) {
	for _, theme := range AllThemes() {
		assert.True(t, theme.IsValid())
	}
	assert.False(t, Theme("solarized").IsValid())
	assert.False(t, Theme("").IsValid())
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
}

func TestTab_IsValid(t *testing.T) {
	assert.True(t, TabCalculator.IsValid())
	assert.True(t, TabConverter.IsValid())
	assert.False(t, Tab("history").IsValid())
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, ThemeDark, prefs.Theme)
	assert.False(t, prefs.HighContrast)
	assert.Equal(t, CategoryLength, prefs.LastCategory)
	assert.Equal(t, TabCalculator, prefs.ActiveTab)
}

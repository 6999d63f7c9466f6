package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.SwitchTab.Keys(), "tab")
	assert.Contains(t, km.ToggleTheme.Keys(), "ctrl+t")
	assert.Contains(t, km.ToggleContrast.Keys(), "ctrl+g")
	assert.Contains(t, km.Evaluate.Keys(), "enter")
	assert.Contains(t, km.Clear.Keys(), "esc")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("shift+tab", km.SwitchTab))
	assert.False(t, Matches("x", km.Quit))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	assert.NotEmpty(t, km.CalculatorHelp())
	assert.NotEmpty(t, km.ConverterHelp())
	assert.Len(t, km.FullHelp(), 3)
}

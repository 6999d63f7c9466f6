package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("creates store with custom directory", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "config")

		_, err := NewConfigStore(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("starts empty without config file", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		_, ok := store.Get("appearance.theme")
		assert.False(t, ok)
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	t.Run("string value", func(t *testing.T) {
		require.NoError(t, store.Set("appearance.theme", "light"))
		assert.Equal(t, "light", store.GetString("appearance.theme"))
	})

	t.Run("bool value", func(t *testing.T) {
		require.NoError(t, store.Set("appearance.high_contrast", true))
		assert.True(t, store.GetBool("appearance.high_contrast"))
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := store.Get("does.not.exist")
		assert.False(t, ok)
		assert.Equal(t, "", store.GetString("does.not.exist"))
		assert.False(t, store.GetBool("does.not.exist"))
	})

	t.Run("wrong type returns zero value", func(t *testing.T) {
		require.NoError(t, store.Set("converter.category", "length"))
		assert.False(t, store.GetBool("converter.category"))
	})
}

func TestConfigStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("appearance.theme", "light"))
	require.NoError(t, store.Set("appearance.high_contrast", true))
	require.NoError(t, store.Set("ui.active_tab", "converter"))

	// A fresh store reading the same directory sees the persisted values.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "light", reloaded.GetString("appearance.theme"))
	assert.True(t, reloaded.GetBool("appearance.high_contrast"))
	assert.Equal(t, "converter", reloaded.GetString("ui.active_tab"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()

	// Write a TOML file with nested tables by hand.
	content := "[appearance]\ntheme = \"dark\"\nhigh_contrast = false\n\n[converter]\ncategory = \"mass\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "dark", store.GetString("appearance.theme"))
	assert.Equal(t, "mass", store.GetString("converter.category"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("appearance.theme", "dark"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestFlattenMap(t *testing.T) {
	input := map[string]any{
		"top": "value",
		"nested": map[string]any{
			"key": "inner",
			"deeper": map[string]any{
				"leaf": true,
			},
		},
	}

	flat := flattenMap(input, "")

	assert.Equal(t, "value", flat["top"])
	assert.Equal(t, "inner", flat["nested.key"])
	assert.Equal(t, true, flat["nested.deeper.leaf"])
}

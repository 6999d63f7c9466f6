package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("appearance.theme", "light"))
	require.NoError(t, store.Set("appearance.high_contrast", true))

	assert.Equal(t, "light", store.GetString("appearance.theme"))
	assert.True(t, store.GetBool("appearance.high_contrast"))

	val, ok := store.Get("appearance.theme")
	require.True(t, ok)
	assert.Equal(t, "light", val)
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", 42))

	assert.Empty(t, store.GetString("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_SaveLoadNoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

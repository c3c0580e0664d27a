package theme_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centavo/internal/kvstore/memory"
	"centavo/internal/theme"
)

const storageKey = "expense_tracker_theme"

func TestManager_DefaultsToLight(t *testing.T) {
	m := theme.NewManager(memory.New())
	m.Load(context.Background())

	assert.False(t, m.IsDark())
}

func TestManager_LoadReadsSavedPreference(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storageKey, []byte("true")))

	m := theme.NewManager(kv)
	m.Load(ctx)

	assert.True(t, m.IsDark())
}

func TestManager_MalformedPreferenceFallsBackToLight(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storageKey, []byte(`"maybe"`)))

	m := theme.NewManager(kv)
	m.Load(ctx)

	assert.False(t, m.IsDark())
}

func TestManager_ToggleTwicePersistsDefault(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	m := theme.NewManager(kv)
	m.Load(ctx)

	assert.True(t, m.Toggle(ctx))
	assert.False(t, m.Toggle(ctx))
	assert.False(t, m.IsDark())

	raw, err := kv.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))

	// A fresh manager sees the persisted value.
	again := theme.NewManager(kv)
	again.Load(ctx)
	assert.False(t, again.IsDark())
}

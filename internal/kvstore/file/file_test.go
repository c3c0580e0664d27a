package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centavo/internal/kvstore"
	"centavo/internal/kvstore/file"
)

func TestStore_SetGetRemove(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, s.Set(ctx, "transactions", []byte(`[{"id":"a"}]`)))

	got, err := s.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// Overwrite replaces the previous value entirely.
	require.NoError(t, s.Set(ctx, "transactions", []byte(`[]`)))

	got, err = s.Get(ctx, "transactions")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Remove(ctx, "transactions"))

	_, err = s.Get(ctx, "transactions")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestStore_RemoveAbsentKey(t *testing.T) {
	s, err := file.New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Remove(context.Background(), "never_set"))
}

func TestStore_KeySanitization(t *testing.T) {
	dir := t.TempDir()

	s, err := file.New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "../escape", []byte("x")))

	// The value must land inside the data directory.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

	got, err := s.Get(ctx, "../escape")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := file.New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Set(ctx, "theme", []byte("true")))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

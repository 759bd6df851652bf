package kvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/domain"
)

func newTestStore(t *testing.T, quota int64) (*FileStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "kv")
	store, err := NewFileStore(dir, quota)
	require.NoError(t, err)
	return store, dir
}

func TestFileStore_SetGet(t *testing.T) {
	store, _ := newTestStore(t, 0)

	prefs := domain.DefaultPreferences()
	prefs.Theme = domain.ThemeDark
	require.NoError(t, store.Set("preferences", prefs))

	var got domain.Preferences
	require.True(t, store.Get("preferences", &got))
	assert.Equal(t, prefs, got)
}

func TestFileStore_GetAbsentKey(t *testing.T) {
	store, _ := newTestStore(t, 0)

	var got domain.Preferences
	assert.False(t, store.Get("preferences", &got))
	assert.Equal(t, domain.Preferences{}, got)
}

func TestFileStore_GetOverlaysOnDefaults(t *testing.T) {
	store, dir := newTestStore(t, 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte(`{"theme":"dark"}`), 0644))

	got := domain.DefaultPreferences()
	require.True(t, store.Get("preferences", &got))

	assert.Equal(t, domain.ThemeDark, got.Theme)
	assert.Equal(t, domain.ViewModeGrid, got.ViewMode)
	assert.True(t, got.AutoSave)
}

func TestFileStore_CorruptEntryIsAbsent(t *testing.T) {
	store, dir := newTestStore(t, 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schedule.json"), []byte(`{"2024-03-04": [`), 0644))

	var got domain.Schedule
	assert.False(t, store.Get("schedule", &got))
}

func TestFileStore_SetUnserializable(t *testing.T) {
	store, _ := newTestStore(t, 0)

	err := store.Set("bad", map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, domain.ErrWriteFailure)
}

func TestFileStore_QuotaExceeded(t *testing.T) {
	store, _ := newTestStore(t, 64)

	require.NoError(t, store.Set("small", "ok"))

	err := store.Set("large", strings.Repeat("x", 100))
	assert.ErrorIs(t, err, domain.ErrWriteFailure)

	var got string
	assert.False(t, store.Get("large", &got))
	require.True(t, store.Get("small", &got))
	assert.Equal(t, "ok", got)
}

func TestFileStore_ReplacingValueDoesNotCountOldSize(t *testing.T) {
	store, _ := newTestStore(t, 64)

	require.NoError(t, store.Set("value", strings.Repeat("a", 40)))
	require.NoError(t, store.Set("value", strings.Repeat("b", 40)))
}

func TestFileStore_InvalidKey(t *testing.T) {
	store, _ := newTestStore(t, 0)

	assert.ErrorIs(t, store.Set("../escape", 1), domain.ErrWriteFailure)
	var got int
	assert.False(t, store.Get("../escape", &got))
}

func TestFileStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, 0)

	require.NoError(t, store.Set("schedule", domain.Schedule{}))
	require.NoError(t, store.Delete("schedule"))
	require.NoError(t, store.Delete("schedule"))

	var got domain.Schedule
	assert.False(t, store.Get("schedule", &got))
}

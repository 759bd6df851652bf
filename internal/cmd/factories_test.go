package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterremote "github.com/renato0307/shed/internal/adapters/remote"
	"github.com/renato0307/shed/internal/config"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	home := t.TempDir()
	return &config.Settings{
		DBPath: filepath.Join(home, "state.db"),
		KVDir:  filepath.Join(home, "kv"),
	}
}

func TestNewContainer_OfflineByDefault(t *testing.T) {
	c, err := NewContainer(context.Background(), testSettings(t))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	assert.Equal(t, adapterremote.Offline{}, c.Remote)
	assert.Empty(t, c.Banner())
	assert.Nil(t, c.Identity.Current())

	_, err = c.RequireUser()
	assert.Error(t, err)
}

func TestNewContainer_AnonymousSignInMigrates(t *testing.T) {
	ctx := context.Background()
	settings := testSettings(t)
	settings.RemoteDriver = config.RemoteDriverSQLite
	settings.RemoteDSN = filepath.Join(t.TempDir(), "remote.db")

	c, err := NewContainer(ctx, settings)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, err = c.Progress.ToggleChecklistItem(ctx, "autumn-leaves", "melody")
	require.NoError(t, err)

	id, err := c.Identity.SignInAnonymously(ctx)
	require.NoError(t, err)

	report := c.LastMigration()
	require.NotNil(t, report)
	assert.True(t, report.Complete())
	assert.Equal(t, 1, report.ProgressMigrated)

	docs, err := c.Remote.GetAllProgress(ctx, id.UserID)
	require.NoError(t, err)
	require.Contains(t, docs, "autumn-leaves")
	assert.Equal(t, 14, docs["autumn-leaves"].Record.CompletionPercentage)
}

func TestNewContainer_LocalStoreUnavailableShowsBanner(t *testing.T) {
	settings := testSettings(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))
	settings.DBPath = filepath.Join(blocker, "state.db")

	c, err := NewContainer(context.Background(), settings)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	assert.Contains(t, c.Banner(), "Local storage unavailable")

	_, err = c.Progress.ToggleChecklistItem(context.Background(), "autumn-leaves", "melody")
	assert.Error(t, err)
}

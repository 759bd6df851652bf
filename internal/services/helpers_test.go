package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/adapters/kvstore"
	"github.com/renato0307/shed/internal/adapters/storage"
	"github.com/renato0307/shed/internal/ports"
)

type heldCredentials map[string]bool

func (h heldCredentials) HoldsCredentials(userID string) bool { return h[userID] }

type testStack struct {
	kv      *kvstore.FileStore
	local   *storage.Store
	state   *StateStore
	sync    *SyncService
	tempDir string
}

func newTestStack(t *testing.T, remote ports.RemoteStore) *testStack {
	t.Helper()
	dir := t.TempDir()

	local, err := storage.Open(context.Background(), filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	kv, err := kvstore.NewFileStore(filepath.Join(dir, "kv"), 0)
	require.NoError(t, err)

	state := NewStateStore()
	return &testStack{
		kv:      kv,
		local:   local,
		state:   state,
		sync:    NewSyncService(local, kv, remote, state),
		tempDir: dir,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	adapteridentity "github.com/renato0307/shed/internal/adapters/identity"
	adapterkv "github.com/renato0307/shed/internal/adapters/kvstore"
	adapterlauncher "github.com/renato0307/shed/internal/adapters/launcher"
	adapterremote "github.com/renato0307/shed/internal/adapters/remote"
	adaptersound "github.com/renato0307/shed/internal/adapters/sound"
	adapterstorage "github.com/renato0307/shed/internal/adapters/storage"
	"github.com/renato0307/shed/internal/config"
	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
	"github.com/renato0307/shed/internal/services"
	"github.com/renato0307/shed/internal/theme"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Identity *adapteridentity.LocalIdentity
	Launcher ports.Launcher
	Library  *services.LibraryService
	Progress *services.ProgressService
	Remote   ports.RemoteStore
	Schedule *services.ScheduleService
	Sync     *services.SyncService

	Styles theme.Styles

	// Internal - for cleanup only
	local        ports.LocalStore
	remoteCloser func() error
	unsubscribe  func()

	migrationMu   sync.Mutex
	lastMigration *services.MigrationReport
}

// NewContainer creates a new Container with all dependencies wired.
// A local store that fails to open is replaced by one that rejects every
// operation, so commands still run and report the failure.
func NewContainer(ctx context.Context, settings *config.Settings) (*Container, error) {
	quota := adapterkv.DefaultQuotaBytes
	if settings.KVQuotaBytes != nil {
		quota = *settings.KVQuotaBytes
	}
	kv, err := adapterkv.NewFileStore(settings.ResolvedKVDir(), quota)
	if err != nil {
		return nil, err
	}

	var local ports.LocalStore
	store, err := adapterstorage.Open(ctx, settings.ResolvedDBPath())
	if err != nil {
		logging.Logger.Error("Local store unavailable", "path", settings.ResolvedDBPath(), "error", err)
		local = adapterstorage.Unavailable(err)
	} else {
		local = store
	}

	identity := adapteridentity.NewLocalIdentity(kv)
	if err := identity.Restore(ctx); err != nil {
		logging.Logger.Warn("Failed to restore identity", "error", err)
	}

	c := &Container{
		Identity: identity,
		Launcher: adapterlauncher.New(),
		local:    local,
	}
	c.Remote, c.remoteCloser = openRemote(ctx, settings, identity)

	state := services.NewStateStore()
	c.Sync = services.NewSyncService(local, kv, c.Remote, state)
	c.Progress = services.NewProgressService(local.Progress(), c.Sync)
	c.Progress.SetNotifier(services.NewNotificationService(adaptersound.NewPlayer(), c.Sync))
	c.Schedule = services.NewScheduleService(kv, c.Sync, c.Progress)
	c.Library = services.NewLibraryService(local)

	c.unsubscribe = identity.Subscribe(func(ctx context.Context, event domain.IdentityEvent) {
		report := c.Sync.OnIdentityTransition(ctx, event)
		c.migrationMu.Lock()
		c.lastMigration = report
		c.migrationMu.Unlock()
	})

	loaded := c.Sync.LoadAll(ctx)
	c.Styles = theme.ForTheme(loaded.Preferences.Theme)

	return c, nil
}

func openRemote(ctx context.Context, settings *config.Settings, credentials ports.CredentialSource) (ports.RemoteStore, func() error) {
	if settings.RemoteDriver == "" {
		logging.Logger.Debug("No remote store configured")
		return adapterremote.Offline{}, nil
	}

	dsn := settings.RemoteDSN
	if settings.RemoteDriver == config.RemoteDriverSQLite {
		dsn = config.ExpandPath(dsn)
	}

	remote, err := adapterremote.Open(ctx, settings.RemoteDriver, dsn, credentials)
	if err != nil {
		logging.Logger.Warn("Remote store unreachable, continuing offline", "driver", settings.RemoteDriver, "error", err)
		return adapterremote.Offline{}, nil
	}
	return remote, remote.Close
}

// Banner returns the persistent error to show before command output, if any
func (c *Container) Banner() string {
	message := c.Sync.State().Error
	if message == "" {
		return ""
	}
	return c.Styles.Banner.Render(fmt.Sprintf("Local storage unavailable: %s. Changes to progress and the library will not be saved.", message))
}

// LastMigration returns the report of the migration triggered by the most
// recent identity transition, nil when that transition did not migrate
func (c *Container) LastMigration() *services.MigrationReport {
	c.migrationMu.Lock()
	defer c.migrationMu.Unlock()
	return c.lastMigration
}

// RequireUser returns the signed-in identity or an error telling the user to sign in
func (c *Container) RequireUser() (*domain.Identity, error) {
	current := c.Identity.Current()
	if current == nil {
		return nil, errors.New("not signed in (run 'shed auth anonymous' or 'shed auth signin')")
	}
	return current, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}

	var errs []error
	if c.remoteCloser != nil {
		errs = append(errs, c.remoteCloser())
	}
	if c.local != nil {
		errs = append(errs, c.local.Close())
	}
	return errors.Join(errs...)
}

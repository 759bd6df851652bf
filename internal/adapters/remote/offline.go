package remote

import (
	"context"
	"errors"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/ports"
)

var errNotConfigured = errors.New("no remote store configured")

// Offline is the remote store used when none is configured.
// Every call fails with domain.ErrNetwork.
type Offline struct{}

// Verify interface compliance at compile time
var _ ports.RemoteStore = Offline{}

func (Offline) CreateUserRecord(context.Context, string, ports.UserFields) error {
	return offline("create user record")
}

func (Offline) SaveUserFields(context.Context, string, ports.UserFields) error {
	return offline("save user fields")
}

func (Offline) GetUser(context.Context, string) (*ports.RemoteUser, error) {
	return nil, offline("get user")
}

func (Offline) SaveProgress(context.Context, string, string, domain.ProgressPatch) error {
	return offline("save progress")
}

func (Offline) GetProgress(context.Context, string, string) (*ports.RemoteProgress, error) {
	return nil, offline("get progress")
}

func (Offline) GetAllProgress(context.Context, string) (map[string]ports.RemoteProgress, error) {
	return nil, offline("get all progress")
}

func (Offline) DeleteProgress(context.Context, string, string) error {
	return offline("delete progress")
}

func offline(op string) error {
	return &domain.RemoteError{Op: op, Kind: domain.ErrNetwork, Err: errNotConfigured}
}

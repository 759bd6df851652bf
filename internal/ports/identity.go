package ports

import (
	"context"

	"github.com/renato0307/shed/internal/domain"
)

// IdentityListener receives identity transitions
type IdentityListener func(ctx context.Context, event domain.IdentityEvent)

// IdentitySession tracks the current user and emits transitions
type IdentitySession interface {
	// Current returns the identity held on this device, nil when signed out
	Current() *domain.Identity

	// Restore loads the identity persisted on this device without emitting a transition
	Restore(ctx context.Context) error

	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)
	SignInAnonymously(ctx context.Context) (*domain.Identity, error)
	SignOut(ctx context.Context) error
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Identity, error)

	// Subscribe registers a listener and returns a function that removes it
	Subscribe(listener IdentityListener) func()
}

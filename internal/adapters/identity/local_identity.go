package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// Key-value keys owned by this adapter
const (
	accountsKey = "accounts"
	identityKey = "identity"
)

const minPasswordLength = 6

// ErrEmailInUse is returned by SignUp when the email already has an account
var ErrEmailInUse = errors.New("email already registered")

type account struct {
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
	UserID       string `json:"userId"`
}

type subscription struct {
	id       int
	listener ports.IdentityListener
}

// LocalIdentity is a device-local identity session.
// Accounts and the signed-in identity live in the key-value store.
type LocalIdentity struct {
	cost      int
	current   *domain.Identity
	kv        ports.KeyValueStore
	listeners []subscription
	mu        sync.Mutex
	nextSubID int
}

// Verify interface compliance at compile time
var (
	_ ports.IdentitySession  = (*LocalIdentity)(nil)
	_ ports.CredentialSource = (*LocalIdentity)(nil)
)

// NewLocalIdentity creates a signed-out session; call Restore to load a persisted identity
func NewLocalIdentity(kv ports.KeyValueStore) *LocalIdentity {
	return &LocalIdentity{cost: bcrypt.DefaultCost, kv: kv}
}

// Current returns a copy of the signed-in identity, nil when signed out
func (l *LocalIdentity) Current() *domain.Identity {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return nil
	}
	c := *l.current
	return &c
}

// HoldsCredentials reports whether userID is the signed-in user
func (l *LocalIdentity) HoldsCredentials(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil && l.current.UserID == userID
}

func (l *LocalIdentity) Restore(ctx context.Context) error {
	var persisted domain.Identity
	if !l.kv.Get(identityKey, &persisted) || persisted.UserID == "" {
		logging.Logger.Debug("No persisted identity")
		return nil
	}

	l.mu.Lock()
	l.current = &persisted
	l.mu.Unlock()

	logging.Logger.Info("Identity restored", "user_id", persisted.UserID, "anonymous", persisted.IsAnonymous)
	return nil
}

// SignInAnonymously creates a new anonymous user unless one is already signed in
func (l *LocalIdentity) SignInAnonymously(ctx context.Context) (*domain.Identity, error) {
	if current := l.Current(); current != nil && current.IsAnonymous {
		return current, nil
	}

	id := &domain.Identity{
		DisplayName: domain.AnonymousDisplayName,
		IsAnonymous: true,
		UserID:      uuid.NewString(),
	}
	if err := l.establish(id); err != nil {
		return nil, err
	}

	logging.Logger.Info("Signed in anonymously", "user_id", id.UserID)
	l.emit(ctx, domain.IdentityEvent{Kind: domain.IdentityAnonymousEstablished, Identity: id})
	return id, nil
}

// SignUp registers a new account and signs it in.
// The display name defaults to the email.
func (l *LocalIdentity) SignUp(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "email", Reason: fmt.Sprintf("%q is not a valid address", email)}
	}
	if len(password) < minPasswordLength {
		return nil, &domain.ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	if displayName == "" {
		displayName = email
	}

	accounts := l.accounts()
	if _, exists := accounts[email]; exists {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), l.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc := account{DisplayName: displayName, Email: email, PasswordHash: hash, UserID: uuid.NewString()}
	accounts[email] = acc
	if err := l.kv.Set(accountsKey, accounts); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	id := &domain.Identity{DisplayName: acc.DisplayName, Email: acc.Email, UserID: acc.UserID}
	if err := l.establish(id); err != nil {
		return nil, err
	}

	logging.Logger.Info("Account created", "user_id", id.UserID)
	l.emit(ctx, domain.IdentityEvent{Kind: domain.IdentityAuthenticated, Identity: id, Created: true})
	return id, nil
}

// SignIn authenticates an existing account. Wrong credentials fail with domain.ErrAuth.
func (l *LocalIdentity) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acc, ok := l.accounts()[email]
	if !ok {
		return nil, fmt.Errorf("%w: unknown email or wrong password", domain.ErrAuth)
	}
	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		logging.Logger.Warn("Sign-in rejected", "email", email)
		return nil, fmt.Errorf("%w: unknown email or wrong password", domain.ErrAuth)
	}

	id := &domain.Identity{DisplayName: acc.DisplayName, Email: acc.Email, UserID: acc.UserID}
	if err := l.establish(id); err != nil {
		return nil, err
	}

	logging.Logger.Info("Signed in", "user_id", id.UserID)
	l.emit(ctx, domain.IdentityEvent{Kind: domain.IdentityAuthenticated, Identity: id})
	return id, nil
}

// SignOut forgets the signed-in identity. Local data stays on the device.
func (l *LocalIdentity) SignOut(ctx context.Context) error {
	if err := l.kv.Delete(identityKey); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}

	l.mu.Lock()
	was := l.current
	l.current = nil
	l.mu.Unlock()

	if was != nil {
		logging.Logger.Info("Signed out", "user_id", was.UserID)
	}
	l.emit(ctx, domain.IdentityEvent{Kind: domain.IdentitySignedOut})
	return nil
}

// Subscribe registers a listener. Listeners run synchronously in registration order.
func (l *LocalIdentity) Subscribe(listener ports.IdentityListener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextSubID++
	id := l.nextSubID
	l.listeners = append(l.listeners, subscription{id: id, listener: listener})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.listeners = slices.DeleteFunc(l.listeners, func(s subscription) bool { return s.id == id })
	}
}

func (l *LocalIdentity) establish(id *domain.Identity) error {
	if err := l.kv.Set(identityKey, id); err != nil {
		return fmt.Errorf("failed to persist identity: %w", err)
	}
	l.mu.Lock()
	c := *id
	l.current = &c
	l.mu.Unlock()
	return nil
}

func (l *LocalIdentity) accounts() map[string]account {
	accounts := map[string]account{}
	l.kv.Get(accountsKey, &accounts)
	return accounts
}

func (l *LocalIdentity) emit(ctx context.Context, event domain.IdentityEvent) {
	l.mu.Lock()
	listeners := make([]ports.IdentityListener, 0, len(l.listeners))
	for _, s := range l.listeners {
		listeners = append(listeners, s.listener)
	}
	l.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, event)
	}
}

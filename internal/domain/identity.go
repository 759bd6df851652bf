package domain

// IdentityEventKind names an identity transition
type IdentityEventKind string

const (
	IdentityAnonymousEstablished IdentityEventKind = "anonymous-established"
	IdentityAuthenticated        IdentityEventKind = "authenticated"
	IdentitySignedOut            IdentityEventKind = "signed-out"
)

// AnonymousDisplayName is the display name given to anonymous users
const AnonymousDisplayName = "Anonymous User"

// Identity is the user the device currently holds credentials for
type Identity struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
	UserID      string `json:"userId"`
}

// IdentityEvent is emitted by the identity session on every transition.
// Identity is nil for signed-out. Created is true when an account was just registered.
type IdentityEvent struct {
	Created  bool
	Identity *Identity
	Kind     IdentityEventKind
}

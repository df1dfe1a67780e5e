package identity

import "context"

// Service defines the interface for session and sign-in/up/out logic.
//
// SessionFromToken fails open: any parse, transport or lookup error yields
// a nil session rather than an error, so a broken provider only ever
// downgrades the caller to guest.
type Service interface {
	SignUp(ctx context.Context, email, password, fullName string) (string, *Session, error)
	SignIn(ctx context.Context, email, password string) (string, *Session, error)
	SignOut(ctx context.Context)
	SessionFromToken(ctx context.Context, token string) *Session

	// OnChange registers a callback invoked whenever the session state
	// transitions (sign-in, sign-up, sign-out). The callback receives the
	// new session, nil after sign-out.
	OnChange(fn func(*Session))
}

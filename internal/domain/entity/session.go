package entity

import "time"

// Identity is the opaque authenticated-session handle issued by the
// identity provider after a successful sign-in or sign-up.
type Identity struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// SessionState is the lifecycle state of the process-local session.
type SessionState string

const (
	// SessionSignedOut is the initial state and the state after any
	// sign-out, whether user-initiated or provider-reported.
	SessionSignedOut SessionState = "signed-out"

	// SessionLoadingProfile is the observable window between the identity
	// being established and the profile document fetch completing.
	SessionLoadingProfile SessionState = "loading-profile"

	// SessionSignedIn means an identity exists and its profile is loaded.
	SessionSignedIn SessionState = "signed-in"

	// SessionSignedInNoProfile means an identity exists but no profile
	// document could be loaded for it. Registration is not transactional,
	// so this partial state is expected and must be presented distinctly
	// from loading.
	SessionSignedInNoProfile SessionState = "signed-in-no-profile"
)

// Session is the transient, process-local session value. Profile is
// non-nil exactly when State is SessionSignedIn.
type Session struct {
	State    SessionState
	Identity *Identity
	Profile  *UserProfile
}

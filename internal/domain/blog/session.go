package blog

// SessionState tracks the lifecycle of the client-side session.
// A session starts uninitialized, moves to loading while the stored token is
// being confirmed against the remote profile endpoint, and ends ready in
// either the authenticated or anonymous variant.
type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionLoading       SessionState = "loading"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Session is the client-side record of current authentication state.
// Token and User are always set and cleared together, except during the
// restore window where a stored token exists but the user has not been
// confirmed yet.
type Session struct {
	Token string
	User  *User
	State SessionState
}

// IsAuthenticated is derived: true iff a confirmed user is present.
func (s Session) IsAuthenticated() bool { return s.User != nil }

// Loading is true until the initial restore attempt completes.
func (s Session) Loading() bool {
	return s.State == SessionUninitialized || s.State == SessionLoading
}

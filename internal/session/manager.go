package session

// Package session owns the authentication lifecycle. The Manager is the sole
// writer of the Session entity: restore-on-startup, login, register, logout,
// and profile updates all funnel through it, and unauthorized responses
// detected by the API client tear it down.

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	apperrors "github.com/inkpost/inkpost-go/internal/errors"
	"github.com/inkpost/inkpost-go/internal/ports"
)

// Options groups dependencies for Manager.
type Options struct {
	API    ports.AuthAPI
	Tokens ports.TokenStore
	Logger *slog.Logger
}

// Manager holds the current session in memory and keeps the durable token
// store in step with it.
//
// The mutex guards memory visibility only. Overlapping session-mutating
// calls are not serialized against each other: if two race, the last writer
// to memory wins. The presentation layer is expected to serialize these per
// user action.
type Manager struct {
	api    ports.AuthAPI
	tokens ports.TokenStore
	logger *slog.Logger

	mu        sync.RWMutex
	session   blog.Session
	listeners []func(blog.Session)
}

// NewManager constructs a Manager with an uninitialized session.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		api:    opts.API,
		tokens: opts.Tokens,
		logger: logger,
		session: blog.Session{
			State: blog.SessionUninitialized,
		},
	}
}

// Result is the discriminated outcome of session-mutating operations.
// Remote business failures surface here as Success=false with a displayable
// message; they are never raised as errors across this boundary.
type Result struct {
	Success bool
	User    *blog.User
	Error   string
}

func success(user blog.User) Result {
	u := user
	return Result{Success: true, User: &u}
}

func failure(err error) Result {
	return Result{Success: false, Error: apperrors.DisplayMessage(err)}
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() blog.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// IsAuthenticated reports whether a confirmed user is present.
func (m *Manager) IsAuthenticated() bool {
	return m.Session().IsAuthenticated()
}

// Subscribe registers fn to run with a session snapshot after every state
// change, including teardown caused by an unauthorized response. Listeners
// decide their own reaction (the CLI re-prompts for login; nothing in this
// layer navigates anywhere).
func (m *Manager) Subscribe(fn func(blog.Session)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Restore is the startup path: if durable storage holds a token, confirm it
// against the profile endpoint. Any failure is absorbed and degrades to an
// anonymous session; Restore never returns an error to its caller. Either
// way the session leaves the loading state.
func (m *Manager) Restore(ctx context.Context) {
	m.setState(blog.SessionLoading)

	token, err := m.tokens.Load(ctx)
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, ports.ErrNoToken) {
			m.logger.WarnContext(ctx, "restore: token store read failed", "error", err)
		}
		m.setAnonymous()
		return
	}

	user, err := m.api.Profile(ctx)
	if err != nil {
		m.logger.InfoContext(ctx, "restore: stored token rejected, clearing session", "error", err)
		if clearErr := m.tokens.Clear(ctx); clearErr != nil {
			m.logger.ErrorContext(ctx, "restore: clear token failed", "error", clearErr)
		}
		m.setAnonymous()
		return
	}

	m.setAuthenticated(token, user)
}

// Login exchanges credentials for a session. On success the token is
// persisted before the in-memory session is updated.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	payload, err := m.api.Login(ctx, blog.Credentials{Email: email, Password: password})
	if err != nil {
		return failure(err)
	}
	return m.establish(ctx, payload)
}

// Register creates an account. Registration implies login: a successful
// response establishes a session exactly like Login does.
func (m *Manager) Register(ctx context.Context, reg blog.Registration) Result {
	payload, err := m.api.Register(ctx, reg)
	if err != nil {
		return failure(err)
	}
	return m.establish(ctx, payload)
}

// Logout calls the remote logout best-effort and then unconditionally clears
// durable storage and the in-memory session. Local teardown is guaranteed
// even when the remote call fails.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.logger.WarnContext(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}

	if err := m.tokens.Clear(ctx); err != nil {
		m.logger.ErrorContext(ctx, "clear token on logout failed", "error", err)
	}
	m.setAnonymous()
}

// UpdateProfile replaces the in-memory user with the remote's updated
// profile. The token is untouched.
func (m *Manager) UpdateProfile(ctx context.Context, update blog.ProfileUpdate) Result {
	user, err := m.api.UpdateProfile(ctx, update)
	if err != nil {
		return failure(err)
	}

	m.mu.Lock()
	m.session.User = &user
	snapshot := m.session
	m.mu.Unlock()
	m.notify(snapshot)

	return success(user)
}

// HandleUnauthorized tears down the in-memory session after the API client
// detected a 401. The client has already cleared durable storage; this keeps
// memory consistent and lets listeners react. Wire it via
// api.Client.OnUnauthorized.
func (m *Manager) HandleUnauthorized() {
	m.setAnonymous()
}

// establish persists the token and installs the authenticated session.
func (m *Manager) establish(ctx context.Context, payload blog.AuthPayload) Result {
	if err := m.tokens.Save(ctx, payload.Token); err != nil {
		m.logger.ErrorContext(ctx, "persist token failed", "error", err)
		return failure(apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not persist session token"))
	}

	m.setAuthenticated(payload.Token, payload.User)
	return success(payload.User)
}

func (m *Manager) setAuthenticated(token string, user blog.User) {
	m.mu.Lock()
	u := user
	m.session = blog.Session{
		Token: token,
		User:  &u,
		State: blog.SessionAuthenticated,
	}
	snapshot := m.session
	m.mu.Unlock()
	m.notify(snapshot)
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.session = blog.Session{State: blog.SessionAnonymous}
	snapshot := m.session
	m.mu.Unlock()
	m.notify(snapshot)
}

func (m *Manager) setState(state blog.SessionState) {
	m.mu.Lock()
	m.session.State = state
	snapshot := m.session
	m.mu.Unlock()
	m.notify(snapshot)
}

func (m *Manager) notify(snapshot blog.Session) {
	m.mu.RLock()
	listeners := make([]func(blog.Session), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

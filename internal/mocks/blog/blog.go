package blog

// Package blog contains simple hand-written test doubles for the client
// ports. These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"
	"time"

	domainblog "github.com/inkpost/inkpost-go/internal/domain/blog"
	"github.com/inkpost/inkpost-go/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenStore = (*MemoryTokenStore)(nil)
	_ ports.AuthAPI    = (*MockAuthAPI)(nil)
	_ ports.PostAPI    = (*MockPostAPI)(nil)
)

// MemoryTokenStore is an in-memory TokenStore for tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string

	SaveErr  error
	LoadErr  error
	ClearErr error

	// Clears counts Clear calls, for asserting the 401 policy fires
	// exactly once per occurrence.
	Clears int
}

// NewMemoryTokenStore creates an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// NewMemoryTokenStoreWith creates a MemoryTokenStore holding token.
func NewMemoryTokenStoreWith(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (m *MemoryTokenStore) Save(_ context.Context, token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Load(_ context.Context) (string, error) {
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", ports.ErrNoToken
	}
	return m.token, nil
}

func (m *MemoryTokenStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.Clears++
	m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Token returns the currently stored token ("" when cleared).
func (m *MemoryTokenStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// MockAuthAPI simulates the remote auth endpoints. Each operation can be
// overridden per test; unset operations return sensible defaults.
type MockAuthAPI struct {
	RegisterFunc      func(ctx context.Context, reg domainblog.Registration) (domainblog.AuthPayload, error)
	LoginFunc         func(ctx context.Context, creds domainblog.Credentials) (domainblog.AuthPayload, error)
	LogoutFunc        func(ctx context.Context) error
	ProfileFunc       func(ctx context.Context) (domainblog.User, error)
	UpdateProfileFunc func(ctx context.Context, update domainblog.ProfileUpdate) (domainblog.User, error)

	// DefaultUser backs the default payloads.
	DefaultUser  domainblog.User
	DefaultToken string
}

// NewMockAuthAPI creates a MockAuthAPI with a deterministic default identity.
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{
		DefaultToken: "token-1",
		DefaultUser: domainblog.User{
			ID:        "u1",
			Email:     "mock.user@example.com",
			FirstName: "Mock",
			LastName:  "User",
			Role:      domainblog.RoleUser,
			CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (m *MockAuthAPI) Register(ctx context.Context, reg domainblog.Registration) (domainblog.AuthPayload, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	user := m.DefaultUser
	user.Email = reg.Email
	user.FirstName = reg.FirstName
	user.LastName = reg.LastName
	return domainblog.AuthPayload{Token: m.DefaultToken, User: user}, nil
}

func (m *MockAuthAPI) Login(ctx context.Context, creds domainblog.Credentials) (domainblog.AuthPayload, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	user := m.DefaultUser
	user.Email = creds.Email
	return domainblog.AuthPayload{Token: m.DefaultToken, User: user}, nil
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthAPI) Profile(ctx context.Context) (domainblog.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}
	return m.DefaultUser, nil
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, update domainblog.ProfileUpdate) (domainblog.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, update)
	}
	user := m.DefaultUser
	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.Email = update.Email
	return user, nil
}

// MockPostAPI simulates the remote post endpoints.
type MockPostAPI struct {
	ListPostsFunc           func(ctx context.Context, filters domainblog.ListFilters) (domainblog.PostPage, error)
	GetPostFunc             func(ctx context.Context, id string) (domainblog.Post, error)
	CreatePostFunc          func(ctx context.Context, input domainblog.PostInput) (domainblog.Post, error)
	UpdatePostFunc          func(ctx context.Context, id string, input domainblog.PostInput) (domainblog.Post, error)
	DeletePostFunc          func(ctx context.Context, id string) error
	CreatePostWithImageFunc func(ctx context.Context, input domainblog.PostInput) (domainblog.Post, error)
	UpdatePostWithImageFunc func(ctx context.Context, id string, input domainblog.PostInput) (domainblog.Post, error)
}

func (m *MockPostAPI) ListPosts(ctx context.Context, filters domainblog.ListFilters) (domainblog.PostPage, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, filters)
	}
	return domainblog.PostPage{}, nil
}

func (m *MockPostAPI) GetPost(ctx context.Context, id string) (domainblog.Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, id)
	}
	return domainblog.Post{ID: id}, nil
}

func (m *MockPostAPI) CreatePost(ctx context.Context, input domainblog.PostInput) (domainblog.Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, input)
	}
	return domainblog.Post{Title: input.Title, Content: input.Content, Published: input.Published}, nil
}

func (m *MockPostAPI) UpdatePost(ctx context.Context, id string, input domainblog.PostInput) (domainblog.Post, error) {
	if m.UpdatePostFunc != nil {
		return m.UpdatePostFunc(ctx, id, input)
	}
	return domainblog.Post{ID: id, Title: input.Title, Content: input.Content, Published: input.Published}, nil
}

func (m *MockPostAPI) DeletePost(ctx context.Context, id string) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id)
	}
	return nil
}

func (m *MockPostAPI) CreatePostWithImage(ctx context.Context, input domainblog.PostInput) (domainblog.Post, error) {
	if m.CreatePostWithImageFunc != nil {
		return m.CreatePostWithImageFunc(ctx, input)
	}
	return domainblog.Post{Title: input.Title, Content: input.Content, Published: input.Published}, nil
}

func (m *MockPostAPI) UpdatePostWithImage(ctx context.Context, id string, input domainblog.PostInput) (domainblog.Post, error) {
	if m.UpdatePostWithImageFunc != nil {
		return m.UpdatePostWithImageFunc(ctx, id, input)
	}
	return domainblog.Post{ID: id, Title: input.Title, Content: input.Content, Published: input.Published}, nil
}

package ports

// Package ports defines interfaces (hexagonal ports) for the client's
// outbound dependencies. Implementations live in internal/api and
// internal/adapters; orchestration in internal/session and internal/posts.

import (
	"context"
	"errors"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
)

// ErrNoToken is returned by TokenStore.Load when no token is persisted.
var ErrNoToken = errors.New("no token stored")

// TokenStore persists the bearer token across process restarts. It is the
// client-side analog of the browser's localStorage token key, and is shared
// between the API client (read on every request, clear on 401) and the
// session manager (write on login/register, clear on logout). Last write
// wins; implementations do not coordinate concurrent writers.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// AuthAPI covers the remote authentication and profile endpoints.
type AuthAPI interface {
	Register(ctx context.Context, reg blog.Registration) (blog.AuthPayload, error)
	Login(ctx context.Context, creds blog.Credentials) (blog.AuthPayload, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (blog.User, error)
	UpdateProfile(ctx context.Context, update blog.ProfileUpdate) (blog.User, error)
}

// PostAPI covers the remote post endpoints. The *WithImage variants send a
// multipart body; the plain variants send JSON.
type PostAPI interface {
	ListPosts(ctx context.Context, filters blog.ListFilters) (blog.PostPage, error)
	GetPost(ctx context.Context, id string) (blog.Post, error)
	CreatePost(ctx context.Context, input blog.PostInput) (blog.Post, error)
	UpdatePost(ctx context.Context, id string, input blog.PostInput) (blog.Post, error)
	DeletePost(ctx context.Context, id string) error
	CreatePostWithImage(ctx context.Context, input blog.PostInput) (blog.Post, error)
	UpdatePostWithImage(ctx context.Context, id string, input blog.PostInput) (blog.Post, error)
}

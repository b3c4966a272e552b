package posts

// Package posts is the typed pass-through to the post endpoints. It adds no
// business logic of its own (body construction happens in the API client);
// transport and HTTP errors propagate to callers unmodified, and callers
// extract display messages themselves.

import (
	"context"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	"github.com/inkpost/inkpost-go/internal/ports"
)

// Facade exposes domain-shaped post operations mapped directly onto remote
// endpoints.
type Facade struct {
	api ports.PostAPI
}

// NewFacade constructs a Facade over the given post API.
func NewFacade(api ports.PostAPI) *Facade {
	return &Facade{api: api}
}

// List fetches one page of posts. The pagination envelope is returned
// verbatim; any further text filtering is a presentation concern (see
// Search), not a data-layer guarantee.
func (f *Facade) List(ctx context.Context, filters blog.ListFilters) (blog.PostPage, error) {
	return f.api.ListPosts(ctx, filters)
}

// Get fetches a post by id. Every call re-fetches; nothing is cached.
func (f *Facade) Get(ctx context.Context, id string) (blog.Post, error) {
	return f.api.GetPost(ctx, id)
}

// Create submits a new post as plain JSON.
func (f *Facade) Create(ctx context.Context, input blog.PostInput) (blog.Post, error) {
	return f.api.CreatePost(ctx, input)
}

// Update submits edited fields as plain JSON.
func (f *Facade) Update(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
	return f.api.UpdatePost(ctx, id, input)
}

// Delete removes a post by id.
func (f *Facade) Delete(ctx context.Context, id string) error {
	return f.api.DeletePost(ctx, id)
}

// CreateWithImage submits a new post as a multipart form, attaching the
// image only when input names a file.
func (f *Facade) CreateWithImage(ctx context.Context, input blog.PostInput) (blog.Post, error) {
	return f.api.CreatePostWithImage(ctx, input)
}

// UpdateWithImage submits edited fields as a multipart form. With no new
// file the image part is omitted; whether the remote preserves the existing
// image is its contract.
func (f *Facade) UpdateWithImage(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
	return f.api.UpdatePostWithImage(ctx, id, input)
}

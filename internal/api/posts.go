package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	"github.com/inkpost/inkpost-go/internal/ports"
)

// Compile-time conformance to the post port.
var _ ports.PostAPI = (*Client)(nil)

// postBody is the JSON shape of the plain (imageless) create/update calls.
type postBody struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// ListPosts fetches one page of posts. Filters map directly onto query
// parameters; the pagination envelope comes back from the remote system
// verbatim.
func (c *Client) ListPosts(ctx context.Context, filters blog.ListFilters) (blog.PostPage, error) {
	query := url.Values{}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Published != "" {
		query.Set("published", filters.Published)
	}

	var page blog.PostPage
	if err := c.getJSON(ctx, "/posts", query, &page); err != nil {
		return blog.PostPage{}, err
	}
	return page, nil
}

// GetPost fetches a single post by id. No local caching: every call
// re-fetches.
func (c *Client) GetPost(ctx context.Context, id string) (blog.Post, error) {
	var post blog.Post
	if err := c.getJSON(ctx, joinPath("posts", id), nil, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

// CreatePost creates a post from a plain JSON body (no image handling).
func (c *Client) CreatePost(ctx context.Context, input blog.PostInput) (blog.Post, error) {
	var post blog.Post
	body := postBody{Title: input.Title, Content: input.Content, Published: input.Published}
	if err := c.doJSON(ctx, http.MethodPost, "/posts", body, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

// UpdatePost updates a post from a plain JSON body (no image handling).
func (c *Client) UpdatePost(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
	var post blog.Post
	body := postBody{Title: input.Title, Content: input.Content, Published: input.Published}
	if err := c.doJSON(ctx, http.MethodPut, joinPath("posts", id), body, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

// DeletePost removes a post by id.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, joinPath("posts", id), nil, nil)
}

// CreatePostWithImage creates a post from a multipart body, attaching the
// image part only when input names a file.
func (c *Client) CreatePostWithImage(ctx context.Context, input blog.PostInput) (blog.Post, error) {
	body, contentType, err := buildPostForm(input)
	if err != nil {
		return blog.Post{}, err
	}

	var post blog.Post
	if err := c.doMultipart(ctx, http.MethodPost, "/posts", body, contentType, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

// UpdatePostWithImage updates a post from a multipart body. When no new file
// is supplied the image part is omitted entirely; whether the remote system
// preserves or clears the existing image is its contract, not this client's.
func (c *Client) UpdatePostWithImage(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
	body, contentType, err := buildPostForm(input)
	if err != nil {
		return blog.Post{}, err
	}

	var post blog.Post
	if err := c.doMultipart(ctx, http.MethodPut, joinPath("posts", id), body, contentType, &post); err != nil {
		return blog.Post{}, err
	}
	return post, nil
}

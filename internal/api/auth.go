package api

import (
	"context"
	"net/http"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	"github.com/inkpost/inkpost-go/internal/ports"
)

// Compile-time conformance to the auth port.
var _ ports.AuthAPI = (*Client)(nil)

// Register creates an account. The remote API establishes a session in the
// same call: the payload carries both the new user and a bearer token.
func (c *Client) Register(ctx context.Context, reg blog.Registration) (blog.AuthPayload, error) {
	var payload blog.AuthPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", reg, &payload); err != nil {
		return blog.AuthPayload{}, err
	}
	return payload, nil
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, creds blog.Credentials) (blog.AuthPayload, error) {
	var payload blog.AuthPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &payload); err != nil {
		return blog.AuthPayload{}, err
	}
	return payload, nil
}

// Logout invalidates the server-side session. The response carries no data.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile fetches the profile of the user the bearer token belongs to.
func (c *Client) Profile(ctx context.Context) (blog.User, error) {
	var user blog.User
	if err := c.getJSON(ctx, "/users/profile", nil, &user); err != nil {
		return blog.User{}, err
	}
	return user, nil
}

// UpdateProfile replaces editable profile fields and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, update blog.ProfileUpdate) (blog.User, error) {
	var user blog.User
	if err := c.doJSON(ctx, http.MethodPut, "/users/profile", update, &user); err != nil {
		return blog.User{}, err
	}
	return user, nil
}

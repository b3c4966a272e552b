package blog

// Package blog contains domain-level types for the Inkpost client.
// It is pure and free of transport/adapter concerns.

import "time"

// Role represents a user's authorization role as reported by the remote API.
// Keep string form for easy persistence and display.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the profile record the remote API returns for an account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// IsAdmin returns true if the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Author is the embedded user summary carried on posts.
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns the author's display name.
func (a Author) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Post is a blog post as owned by the remote system. This layer treats it as
// read-only; field validation (title/content lengths) happens before calls
// reach the data layer.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Author      Author     `json:"author"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Views       *int       `json:"views,omitempty"`
}

// Pagination is the envelope the remote API returns alongside post lists.
// It is passed through verbatim, never computed locally.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalPosts  int  `json:"totalPosts"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// PostPage groups a page of posts with its pagination envelope.
type PostPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries an account creation request.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileUpdate carries editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AuthPayload is the token+user pair returned by login and register.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostInput carries the writable fields of a post for create and update.
// ImagePath points at a local file to upload; empty means no image part is
// sent at all, so an existing image is left to the remote system's contract.
type PostInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
	ImagePath string `json:"-"`
}

// ListFilters are the query parameters accepted by the post list endpoint.
// Published is a tri-state string: "true", "false", or "" for no filter.
type ListFilters struct {
	Page      int
	Limit     int
	Published string
}

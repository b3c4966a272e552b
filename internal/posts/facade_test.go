package posts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	apperrors "github.com/inkpost/inkpost-go/internal/errors"
	mocks "github.com/inkpost/inkpost-go/internal/mocks/blog"
)

func TestListPassesFiltersThrough(t *testing.T) {
	var gotFilters blog.ListFilters
	api := &mocks.MockPostAPI{
		ListPostsFunc: func(ctx context.Context, filters blog.ListFilters) (blog.PostPage, error) {
			gotFilters = filters
			return blog.PostPage{
				Posts:      []blog.Post{{ID: "p1"}},
				Pagination: blog.Pagination{CurrentPage: 2, TotalPages: 4, TotalPosts: 31, HasNext: true, HasPrev: true},
			}, nil
		},
	}
	facade := NewFacade(api)

	page, err := facade.List(context.Background(), blog.ListFilters{Page: 2, Limit: 10, Published: "true"})
	require.NoError(t, err)

	assert.Equal(t, blog.ListFilters{Page: 2, Limit: 10, Published: "true"}, gotFilters)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, 31, page.Pagination.TotalPosts)
}

func TestGetFetchesByID(t *testing.T) {
	facade := NewFacade(&mocks.MockPostAPI{})

	post, err := facade.Get(context.Background(), "p42")
	require.NoError(t, err)
	assert.Equal(t, "p42", post.ID)
}

func TestCreateAndUpdateRouteToJSONEndpoints(t *testing.T) {
	var (
		createCalled bool
		updateID     string
	)
	api := &mocks.MockPostAPI{
		CreatePostFunc: func(ctx context.Context, input blog.PostInput) (blog.Post, error) {
			createCalled = true
			return blog.Post{ID: "new", Title: input.Title}, nil
		},
		UpdatePostFunc: func(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
			updateID = id
			return blog.Post{ID: id, Title: input.Title}, nil
		},
	}
	facade := NewFacade(api)
	ctx := context.Background()

	created, err := facade.Create(ctx, blog.PostInput{Title: "Fresh"})
	require.NoError(t, err)
	assert.True(t, createCalled)
	assert.Equal(t, "Fresh", created.Title)

	updated, err := facade.Update(ctx, "p7", blog.PostInput{Title: "Edited"})
	require.NoError(t, err)
	assert.Equal(t, "p7", updateID)
	assert.Equal(t, "Edited", updated.Title)
}

func TestImageVariantsRouteToMultipartEndpoints(t *testing.T) {
	var (
		createImagePath string
		updateImagePath string
	)
	api := &mocks.MockPostAPI{
		CreatePostWithImageFunc: func(ctx context.Context, input blog.PostInput) (blog.Post, error) {
			createImagePath = input.ImagePath
			return blog.Post{ID: "new"}, nil
		},
		UpdatePostWithImageFunc: func(ctx context.Context, id string, input blog.PostInput) (blog.Post, error) {
			updateImagePath = input.ImagePath
			return blog.Post{ID: id}, nil
		},
	}
	facade := NewFacade(api)
	ctx := context.Background()

	_, err := facade.CreateWithImage(ctx, blog.PostInput{Title: "T", ImagePath: "/tmp/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.png", createImagePath)

	_, err = facade.UpdateWithImage(ctx, "p9", blog.PostInput{Title: "T"})
	require.NoError(t, err)
	assert.Empty(t, updateImagePath)
}

func TestDeleteForwardsID(t *testing.T) {
	var gotID string
	api := &mocks.MockPostAPI{
		DeletePostFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	facade := NewFacade(api)

	require.NoError(t, facade.Delete(context.Background(), "p5"))
	assert.Equal(t, "p5", gotID)
}

func TestErrorsPropagateUnmodified(t *testing.T) {
	remoteErr := apperrors.FromStatus(404, "Post not found")
	api := &mocks.MockPostAPI{
		GetPostFunc: func(ctx context.Context, id string) (blog.Post, error) {
			return blog.Post{}, remoteErr
		},
	}
	facade := NewFacade(api)

	_, err := facade.Get(context.Background(), "missing")
	require.Error(t, err)

	// The facade adds no wrapping of its own: callers see the API client's
	// error as-is.
	assert.Same(t, remoteErr, err)
	assert.True(t, apperrors.IsNotFound(err))
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
	"github.com/inkpost/inkpost-go/internal/posts"
)

// List defaults mirror the web client: first page, ten posts, published only.
const (
	defaultPage  = 1
	defaultLimit = 10
)

func runPostsList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("posts", flag.ContinueOnError)
	page := fs.Int("page", defaultPage, "page number")
	limit := fs.Int("limit", defaultLimit, "posts per page")
	published := fs.String("published", "true", `published filter: "true", "false", or "" for all`)
	search := fs.String("search", "", "client-side text filter over the fetched page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pageResult, err := cmdCtx.App.Posts.List(cmdCtx.Ctx, blog.ListFilters{
		Page:      *page,
		Limit:     *limit,
		Published: *published,
	})
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	items := posts.Search(pageResult.Posts, *search)

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tPUBLISHED\tCREATED")
	for _, post := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			post.ID, post.Title, post.Author.FullName(), post.Published,
			post.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush() //nolint:errcheck // table output is best-effort

	p := pageResult.Pagination
	fmt.Fprintf(cmdCtx.Out, "page %d/%d, %d posts total\n", p.CurrentPage, p.TotalPages, p.TotalPosts)
	if *search != "" {
		fmt.Fprintf(cmdCtx.Out, "showing %d of %d posts on this page matching %q\n",
			len(items), len(pageResult.Posts), *search)
	}
	return nil
}

func runPostGet(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("post requires exactly one id argument")
	}

	post, err := cmdCtx.App.Posts.Get(cmdCtx.Ctx, fs.Arg(0))
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}

	printPost(cmdCtx, post)
	return nil
}

func runPostCreate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("post-create", flag.ContinueOnError)
	title := fs.String("title", "", "post title (3-200 characters)")
	content := fs.String("content", "", "post content (at least 10 characters)")
	published := fs.Bool("published", false, "publish immediately")
	image := fs.String("image", "", "path to an image file to attach")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validatePostFields(*title, *content); err != nil {
		return err
	}

	input := blog.PostInput{
		Title:     *title,
		Content:   *content,
		Published: *published,
		ImagePath: *image,
	}

	var (
		post blog.Post
		err  error
	)
	if *image != "" {
		post, err = cmdCtx.App.Posts.CreateWithImage(cmdCtx.Ctx, input)
	} else {
		post, err = cmdCtx.App.Posts.Create(cmdCtx.Ctx, input)
	}
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	fmt.Fprintf(cmdCtx.Out, "created post %s\n", post.ID)
	return nil
}

func runPostUpdate(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("post-update", flag.ContinueOnError)
	title := fs.String("title", "", "post title (3-200 characters)")
	content := fs.String("content", "", "post content (at least 10 characters)")
	published := fs.Bool("published", false, "publish flag")
	image := fs.String("image", "", "path to a new image file; omit to leave the image to the server's contract")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("post-update requires exactly one id argument")
	}
	if err := validatePostFields(*title, *content); err != nil {
		return err
	}

	id := fs.Arg(0)
	input := blog.PostInput{
		Title:     *title,
		Content:   *content,
		Published: *published,
		ImagePath: *image,
	}

	var (
		post blog.Post
		err  error
	)
	if *image != "" {
		post, err = cmdCtx.App.Posts.UpdateWithImage(cmdCtx.Ctx, id, input)
	} else {
		post, err = cmdCtx.App.Posts.Update(cmdCtx.Ctx, id, input)
	}
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	fmt.Fprintf(cmdCtx.Out, "updated post %s\n", post.ID)
	return nil
}

func runPostDelete(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("post-delete", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("post-delete requires exactly one id argument")
	}

	id := fs.Arg(0)
	if err := cmdCtx.App.Posts.Delete(cmdCtx.Ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	fmt.Fprintf(cmdCtx.Out, "deleted post %s\n", id)
	return nil
}

// validatePostFields enforces the form rules before a request is made.
// This is presentation-layer validation; the data layer does not re-check.
func validatePostFields(title, content string) error {
	if len(title) < 3 || len(title) > 200 {
		return errors.New("title must be between 3 and 200 characters")
	}
	if len(content) < 10 {
		return errors.New("content must be at least 10 characters")
	}
	return nil
}

func printPost(cmdCtx *commandContext, post blog.Post) {
	fmt.Fprintf(cmdCtx.Out, "%s\n", post.Title)
	fmt.Fprintf(cmdCtx.Out, "by %s on %s\n", post.Author.FullName(), post.CreatedAt.Format("2006-01-02"))
	if post.PublishedAt != nil && !post.PublishedAt.Equal(post.CreatedAt) {
		fmt.Fprintf(cmdCtx.Out, "updated on %s\n", post.PublishedAt.Format("2006-01-02"))
	}
	if post.Views != nil {
		fmt.Fprintf(cmdCtx.Out, "%d views\n", *post.Views)
	}
	if post.ImageURL != "" {
		fmt.Fprintf(cmdCtx.Out, "image: %s\n", post.ImageURL)
	}
	fmt.Fprintf(cmdCtx.Out, "\n%s\n", post.Content)
}

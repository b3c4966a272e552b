package posts

import (
	"strings"

	"github.com/inkpost/inkpost-go/internal/domain/blog"
)

// Search filters an already-fetched page of posts by a case-insensitive
// match over title, content, and author name. This is client-side filtering
// for presentation use only; it is not server-side filtering and never
// touches pagination, which still describes the unfiltered page.
func Search(items []blog.Post, term string) []blog.Post {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return items
	}

	matched := make([]blog.Post, 0, len(items))
	for _, post := range items {
		if matchesTerm(post, term) {
			matched = append(matched, post)
		}
	}
	return matched
}

func matchesTerm(post blog.Post, term string) bool {
	if strings.Contains(strings.ToLower(post.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Content), term) {
		return true
	}
	return strings.Contains(strings.ToLower(post.Author.FullName()), term)
}

// Package article provides use cases for managing blog articles.
// It implements the business logic for creating, updating, deleting and
// querying articles, including derived-field computation (slug, excerpt,
// reading time) and the published_at freeze semantics.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not a
	// valid UUID.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrSlugConflict indicates that an article with the same slug already
	// exists.
	ErrSlugConflict = errors.New("article with this slug already exists")
)

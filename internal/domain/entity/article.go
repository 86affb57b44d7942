// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a blog article entity in the system.
// Derived fields (Slug, Excerpt, ReadingTime) are computed by the usecase layer
// from the title and Markdown content unless explicitly provided.
type Article struct {
	ID                 string
	Slug               string
	Title              string
	Content            string
	Excerpt            string
	Tags               []string
	CoverImage         string
	CoverImagePosition string
	Published          bool
	Featured           bool
	ViewCount          int64
	ReadingTime        int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	// PublishedAt is set the first time the article transitions to published
	// and is never reset afterwards, even if the article is unpublished.
	PublishedAt *time.Time
}

// IsPublished reports whether the article is visible on public endpoints.
func (a *Article) IsPublished() bool {
	return a.Published
}

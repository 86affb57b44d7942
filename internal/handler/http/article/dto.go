// Package article provides HTTP handlers for the article endpoints:
// public listings and detail pages, the privileged CRUD surface, view
// counting and the tag index.
package article

import (
	"time"

	"portfolio-blog/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID                 string     `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	Excerpt            string     `json:"excerpt"`
	Tags               []string   `json:"tags"`
	CoverImage         string     `json:"cover_image"`
	CoverImagePosition string     `json:"cover_image_position"`
	Published          bool       `json:"published"`
	Featured           bool       `json:"featured"`
	ViewCount          int64      `json:"view_count"`
	ReadingTime        int        `json:"reading_time"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PublishedAt        *time.Time `json:"published_at"`

	// ContentHTML is populated only by the slug endpoint, which serves the
	// rendered blog page.
	ContentHTML string `json:"content_html,omitempty"`
}

// FromEntity converts a domain article to its transfer representation.
func FromEntity(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:                 a.ID,
		Slug:               a.Slug,
		Title:              a.Title,
		Content:            a.Content,
		Excerpt:            a.Excerpt,
		Tags:               tags,
		CoverImage:         a.CoverImage,
		CoverImagePosition: a.CoverImagePosition,
		Published:          a.Published,
		Featured:           a.Featured,
		ViewCount:          a.ViewCount,
		ReadingTime:        a.ReadingTime,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
		PublishedAt:        a.PublishedAt,
	}
}

// FromEntities converts a slice of domain articles, never returning nil so
// empty pages marshal as [].
func FromEntities(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromEntity(a))
	}
	return out
}

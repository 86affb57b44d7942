// Package fixtures provides reusable test data generators for integration
// tests: Markdown documents of controlled shape and prebuilt article
// entities.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-blog/internal/domain/entity"
)

// MarkdownOptions configures the generated Markdown document.
type MarkdownOptions struct {
	// Title becomes the level-1 heading. Empty means no heading at all,
	// which exercises the title-required validation path.
	Title string

	// Sections is the number of level-2 sections.
	Sections int

	// WordsPerSection controls body length, useful for reading time tests.
	WordsPerSection int

	// IncludeCode adds a fenced code block to the first section.
	IncludeCode bool
}

// GenerateMarkdown builds a Markdown document with a predictable shape.
//
// Example:
//
//	md := fixtures.GenerateMarkdown(fixtures.MarkdownOptions{
//	    Title:           "Profiling Go Services",
//	    Sections:        3,
//	    WordsPerSection: 200,
//	})
func GenerateMarkdown(opts MarkdownOptions) string {
	if opts.Sections == 0 {
		opts.Sections = 2
	}
	if opts.WordsPerSection == 0 {
		opts.WordsPerSection = 50
	}

	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	}

	for i := 1; i <= opts.Sections; i++ {
		fmt.Fprintf(&b, "## Section %d\n\n", i)
		b.WriteString(words(opts.WordsPerSection))
		b.WriteString("\n\n")
		if opts.IncludeCode && i == 1 {
			b.WriteString("```go\nfunc main() {\n\tfmt.Println(\"hello\")\n}\n```\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// words produces n space-separated filler words.
func words(n int) string {
	vocab := []string{
		"the", "service", "handles", "requests", "with", "bounded",
		"latency", "and", "predictable", "memory", "usage", "under",
		"sustained", "load", "while", "keeping", "code", "simple",
	}
	out := make([]string, n)
	for i := range out {
		out[i] = vocab[i%len(vocab)]
	}
	return strings.Join(out, " ")
}

// ArticleOption mutates a generated article.
type ArticleOption func(*entity.Article)

// WithSlug overrides the generated slug.
func WithSlug(slug string) ArticleOption {
	return func(a *entity.Article) { a.Slug = slug }
}

// WithTags sets the article tags.
func WithTags(tags ...string) ArticleOption {
	return func(a *entity.Article) { a.Tags = tags }
}

// AsDraft marks the article unpublished with no publish timestamp.
func AsDraft() ArticleOption {
	return func(a *entity.Article) {
		a.Published = false
		a.PublishedAt = nil
	}
}

// Featured marks the article featured.
func Featured() ArticleOption {
	return func(a *entity.Article) { a.Featured = true }
}

// PublishedArticle builds a published article with sensible defaults,
// modified by the given options.
func PublishedArticle(title string, opts ...ArticleOption) *entity.Article {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	content := GenerateMarkdown(MarkdownOptions{Title: title, Sections: 2, WordsPerSection: 100})

	art := &entity.Article{
		ID:                 uuid.NewString(),
		Slug:               slugify(title),
		Title:              title,
		Content:            content,
		Excerpt:            "the service handles requests with bounded latency",
		Tags:               []string{"go"},
		CoverImagePosition: "50% 50%",
		Published:          true,
		ReadingTime:        1,
		CreatedAt:          now,
		UpdatedAt:          now,
		PublishedAt:        &now,
	}
	for _, opt := range opts {
		opt(art)
	}
	return art
}

func slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-':
			return '-'
		default:
			return -1
		}
	}, s)
	return strings.Trim(s, "-")
}

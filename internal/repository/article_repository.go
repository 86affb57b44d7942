package repository

import (
	"context"
	"errors"
	"time"

	"portfolio-blog/internal/domain/entity"
)

// Sentinel errors shared by all persistence adapters.
var (
	// ErrDuplicateSlug indicates a unique constraint violation on the slug column.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrNoRowsAffected indicates an update or delete matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)

// ListFilter contains optional filters and paging for published article listings.
type ListFilter struct {
	Tag      string // Optional: only articles carrying this tag
	Featured *bool  // Optional: filter by featured flag
	Offset   int
	Limit    int
}

// SlugEntry is the minimal projection used by the sitemap and feed builders.
type SlugEntry struct {
	Slug        string
	UpdatedAt   time.Time
	PublishedAt time.Time
}

// ArticleRepository abstracts article persistence.
// Get-style methods return (nil, nil) when the row does not exist; the usecase
// layer maps that to its own not-found sentinel.
type ArticleRepository interface {
	// ListPublished retrieves published articles ordered by published_at DESC,
	// applying the filter's tag/featured constraints and paging.
	ListPublished(ctx context.Context, filter ListFilter) ([]*entity.Article, error)
	// CountPublished returns the number of published articles matching the
	// filter's tag/featured constraints (paging fields are ignored).
	CountPublished(ctx context.Context, filter ListFilter) (int64, error)
	// ListAll retrieves every article, drafts included, ordered by created_at DESC.
	ListAll(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	// GetBySlug retrieves a published article by slug. Drafts are not visible
	// through this method.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
	// IncrementViewCount atomically bumps the view counter of a published
	// article. Unknown or unpublished slugs are a no-op.
	IncrementViewCount(ctx context.Context, slug string) error
	// ListPublishedTags returns the distinct tags across published articles,
	// sorted alphabetically.
	ListPublishedTags(ctx context.Context) ([]string, error)
	// ListPublishedSlugs returns slug/timestamp projections of all published
	// articles ordered by published_at DESC, for sitemap and feed generation.
	ListPublishedSlugs(ctx context.Context) ([]SlugEntry, error)
}

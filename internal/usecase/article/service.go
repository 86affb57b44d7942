package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/content"
	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/infra/storage"
	"portfolio-blog/internal/repository"
)

// DefaultCoverPosition is applied when a cover image is set without an
// explicit CSS object-position value.
const DefaultCoverPosition = "50% 50%"

// CreateInput represents the input parameters for creating a new article.
// Title, Slug and Excerpt are optional; missing values are derived from the
// content.
type CreateInput struct {
	Title              string
	Slug               string
	Content            string
	Excerpt            string
	Tags               []string
	CoverImage         string
	CoverImagePosition string
	Published          bool
	Featured           bool
}

// UpdateInput represents the input parameters for updating an existing
// article. Fields with nil values will not be updated.
type UpdateInput struct {
	ID                 string
	Title              *string
	Slug               *string
	Content            *string
	Excerpt            *string
	Tags               *[]string
	CoverImage         *string
	CoverImagePosition *string
	Published          *bool
	Featured           *bool
}

// ListOptions carries the filters and paging of a public article listing.
type ListOptions struct {
	Params   pagination.Params
	Tag      string
	Featured *bool
}

// ListResult is a page of published articles plus the total match count.
type ListResult struct {
	Data  []*entity.Article
	Total int64
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository. Store is optional; when set, deleting an article also
// removes its cover image from storage on a best-effort basis.
type Service struct {
	Repo   repository.ArticleRepository
	Store  storage.Provider
	Logger *slog.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// ListPublic retrieves a page of published articles with optional tag and
// featured filters, newest first.
func (s *Service) ListPublic(ctx context.Context, opts ListOptions) (*ListResult, error) {
	filter := repository.ListFilter{
		Tag:      opts.Tag,
		Featured: opts.Featured,
		Offset:   pagination.CalculateOffset(opts.Params.Page, opts.Params.PageSize),
		Limit:    opts.Params.PageSize,
	}

	total, err := s.Repo.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ListResult{Data: articles, Total: total}, nil
}

// ListAll retrieves every article including drafts, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID, drafts included.
// Returns ErrInvalidArticleID if the ID is not a valid UUID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetPublicBySlug retrieves a published article by slug.
// Drafts are invisible through this method and report ErrArticleNotFound.
func (s *Service) GetPublicBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	art, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create creates a new article, deriving title, slug, excerpt and reading
// time from the content where they are not supplied explicitly.
// Returns a ValidationError if the content is empty or no title can be
// resolved, and ErrSlugConflict if the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}

	title := in.Title
	if title == "" {
		title = content.ExtractTitle(in.Content)
	}
	if title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required when content has no heading"}
	}

	slug := in.Slug
	if slug == "" {
		slug = content.GenerateSlug(title)
	}
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}

	excerpt := in.Excerpt
	if excerpt == "" {
		excerpt = content.ExtractExcerpt(in.Content, content.DefaultExcerptLength)
	}

	tags, err := entity.NormalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	position := in.CoverImagePosition
	if position == "" {
		position = DefaultCoverPosition
	}

	now := s.now()
	art := &entity.Article{
		ID:                 uuid.NewString(),
		Slug:               slug,
		Title:              title,
		Content:            in.Content,
		Excerpt:            excerpt,
		Tags:               tags,
		CoverImage:         in.CoverImage,
		CoverImagePosition: position,
		Published:          in.Published,
		Featured:           in.Featured,
		ReadingTime:        content.CalculateReadingTime(in.Content),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.Published {
		art.PublishedAt = &now
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article with the provided partial input.
// When the content changes, derived fields (title, slug, excerpt, reading
// time) are recomputed unless the same call supplies them explicitly.
// published_at is set on the first transition to published and never reset
// afterwards.
// Returns ErrInvalidArticleID, ErrArticleNotFound or ErrSlugConflict as
// appropriate, and a ValidationError for invalid field values.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, &entity.ValidationError{Field: "content", Message: "cannot be empty"}
		}
		art.Content = *in.Content
		art.ReadingTime = content.CalculateReadingTime(art.Content)
		if in.Excerpt == nil {
			art.Excerpt = content.ExtractExcerpt(art.Content, content.DefaultExcerptLength)
		}
		if in.Title == nil {
			if extracted := content.ExtractTitle(art.Content); extracted != "" {
				art.Title = extracted
				if in.Slug == nil {
					art.Slug = content.GenerateSlug(art.Title)
				}
			}
		}
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = *in.Title
		if in.Slug == nil {
			art.Slug = content.GenerateSlug(art.Title)
		}
	}
	if in.Slug != nil {
		art.Slug = *in.Slug
	}
	if err := entity.ValidateSlug(art.Slug); err != nil {
		return nil, err
	}
	if in.Excerpt != nil {
		art.Excerpt = *in.Excerpt
	}
	if in.Tags != nil {
		tags, err := entity.NormalizeTags(*in.Tags)
		if err != nil {
			return nil, err
		}
		art.Tags = tags
	}
	if in.CoverImage != nil {
		art.CoverImage = *in.CoverImage
	}
	if in.CoverImagePosition != nil {
		art.CoverImagePosition = *in.CoverImagePosition
	}
	if in.Featured != nil {
		art.Featured = *in.Featured
	}

	now := s.now()
	if in.Published != nil {
		art.Published = *in.Published
		// The publish timestamp freezes at the first transition; toggling
		// published off and on again keeps the original value.
		if art.Published && art.PublishedAt == nil {
			art.PublishedAt = &now
		}
	}
	art.UpdatedAt = now

	if err := s.Repo.Update(ctx, art); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, ErrSlugConflict
		case errors.Is(err, repository.ErrNoRowsAffected):
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete hard-removes an article. When the article carries a cover image
// stored by our own storage provider, the object is removed as well; a
// failure there only logs a warning and never fails the delete.
// Returns ErrInvalidArticleID or ErrArticleNotFound as appropriate.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}

	s.cleanupCoverImage(ctx, art)
	return nil
}

// cleanupCoverImage removes the article's cover object from storage when the
// URL belongs to our provider. Best effort only.
func (s *Service) cleanupCoverImage(ctx context.Context, art *entity.Article) {
	if s.Store == nil || art.CoverImage == "" || !s.Store.OwnsURL(art.CoverImage) {
		return
	}

	filename := coverFilename(art.CoverImage)
	if filename == "" {
		return
	}
	if err := s.Store.Delete(ctx, filename); err != nil {
		s.logger().Warn("cover image cleanup failed",
			slog.String("article_id", art.ID),
			slog.String("filename", filename),
			slog.String("error", err.Error()))
	}
}

// coverFilename extracts the object filename from a cover image URL.
func coverFilename(coverURL string) string {
	u, err := url.Parse(coverURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}

// IncrementView bumps the view counter of a published article.
// Unknown or unpublished slugs are a silent no-op; the endpoint is
// fire-and-forget.
func (s *Service) IncrementView(ctx context.Context, slug string) error {
	if err := s.Repo.IncrementViewCount(ctx, slug); err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// Tags returns the distinct tags across published articles, sorted
// alphabetically.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.Repo.ListPublishedTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// PublishedSlugs returns slug/timestamp projections of published articles
// for the sitemap and RSS builders.
func (s *Service) PublishedSlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	slugs, err := s.Repo.ListPublishedSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published slugs: %w", err)
	}
	return slugs, nil
}

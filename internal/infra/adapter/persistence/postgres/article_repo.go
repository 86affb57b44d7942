package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio-blog/internal/domain/entity"
	httphandler "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Querier is the subset of database/sql methods the repository uses.
// Both *sql.DB and the circuit breaker wrapper satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type ArticleRepo struct {
	db           Querier
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

const articleColumns = `id, slug, title, content, excerpt, tags, cover_image, cover_image_position,
       published, featured, view_count, reading_time, created_at, updated_at, published_at`

// observeQuery feeds the db_query_duration_seconds histogram. Use as
// defer observeQuery("op")() at the top of each repository method.
func observeQuery(operation string) func() {
	start := time.Now()
	return func() {
		httphandler.RecordDBQuery(operation, time.Since(start))
	}
}

func scanArticle(scan func(dest ...interface{}) error) (*entity.Article, error) {
	var article entity.Article
	var tags pq.StringArray
	var publishedAt sql.NullTime
	if err := scan(&article.ID, &article.Slug, &article.Title, &article.Content,
		&article.Excerpt, &tags, &article.CoverImage, &article.CoverImagePosition,
		&article.Published, &article.Featured, &article.ViewCount, &article.ReadingTime,
		&article.CreatedAt, &article.UpdatedAt, &publishedAt); err != nil {
		return nil, err
	}
	article.Tags = []string(tags)
	if publishedAt.Valid {
		t := publishedAt.Time
		article.PublishedAt = &t
	}
	return &article, nil
}

func (repo *ArticleRepo) ListPublished(ctx context.Context, filter repository.ListFilter) ([]*entity.Article, error) {
	defer observeQuery("list_published")()

	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)

	paramIndex := len(args) + 1
	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY published_at DESC
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, filter.Limit)
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("ListPublished: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) CountPublished(ctx context.Context, filter repository.ListFilter) (int64, error) {
	defer observeQuery("count_published")()

	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)

	query := "SELECT COUNT(*) FROM articles " + whereClause
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) ListAll(ctx context.Context) ([]*entity.Article, error) {
	defer observeQuery("list_all")()

	query := fmt.Sprintf(`
SELECT %s
FROM articles
ORDER BY created_at DESC`, articleColumns)

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("ListAll: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	defer observeQuery("get")()

	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	defer observeQuery("get_by_slug")()

	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE slug = $1 AND published
LIMIT 1`, articleColumns)

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observeQuery("create")()

	const query = `
INSERT INTO articles
       (id, slug, title, content, excerpt, tags, cover_image, cover_image_position,
        published, featured, view_count, reading_time, created_at, updated_at, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.Title, article.Content, article.Excerpt,
		pq.Array(article.Tags), article.CoverImage, article.CoverImagePosition,
		article.Published, article.Featured, article.ViewCount, article.ReadingTime,
		article.CreatedAt, article.UpdatedAt, article.PublishedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w", repository.ErrDuplicateSlug)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer observeQuery("update")()

	const query = `
UPDATE articles SET
       slug                 = $1,
       title                = $2,
       content              = $3,
       excerpt              = $4,
       tags                 = $5,
       cover_image          = $6,
       cover_image_position = $7,
       published            = $8,
       featured             = $9,
       reading_time         = $10,
       updated_at           = $11,
       published_at         = $12
WHERE id = $13`
	res, err := repo.db.ExecContext(ctx, query,
		article.Slug, article.Title, article.Content, article.Excerpt,
		pq.Array(article.Tags), article.CoverImage, article.CoverImagePosition,
		article.Published, article.Featured, article.ReadingTime,
		article.UpdatedAt, article.PublishedAt, article.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Update: %w", repository.ErrDuplicateSlug)
		}
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", repository.ErrNoRowsAffected)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	defer observeQuery("delete")()

	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNoRowsAffected)
	}
	return nil
}

func (repo *ArticleRepo) IncrementViewCount(ctx context.Context, slug string) error {
	defer observeQuery("increment_view_count")()

	const query = `UPDATE articles SET view_count = view_count + 1 WHERE slug = $1 AND published`
	if _, err := repo.db.ExecContext(ctx, query, slug); err != nil {
		return fmt.Errorf("IncrementViewCount: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ListPublishedTags(ctx context.Context) ([]string, error) {
	defer observeQuery("list_published_tags")()

	const query = `
SELECT DISTINCT unnest(tags) AS tag
FROM articles
WHERE published
ORDER BY tag`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedTags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]string, 0, 20)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("ListPublishedTags: Scan: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (repo *ArticleRepo) ListPublishedSlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	defer observeQuery("list_published_slugs")()

	const query = `
SELECT slug, updated_at, published_at
FROM articles
WHERE published
ORDER BY published_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedSlugs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]repository.SlugEntry, 0, 100)
	for rows.Next() {
		var entry repository.SlugEntry
		if err := rows.Scan(&entry.Slug, &entry.UpdatedAt, &entry.PublishedAt); err != nil {
			return nil, fmt.Errorf("ListPublishedSlugs: Scan: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

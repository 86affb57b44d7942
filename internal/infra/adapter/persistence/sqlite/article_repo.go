// Package sqlite implements the article repository on SQLite for embedded
// and development deployments. Tags are stored as a JSON-encoded TEXT column;
// tag filtering relies on the json_each table-valued function (JSON1).
// The package works against any *sql.DB opened with a registered SQLite
// driver; it does not import one itself.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio-blog/internal/domain/entity"
	httphandler "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

// observeQuery feeds the db_query_duration_seconds histogram. Use as
// defer observeQuery("op")() at the top of each repository method.
func observeQuery(operation string) func() {
	start := time.Now()
	return func() {
		httphandler.RecordDBQuery(operation, time.Since(start))
	}
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, slug, title, content, excerpt, tags, cover_image, cover_image_position,
       published, featured, view_count, reading_time, created_at, updated_at, published_at`

// MigrateUp creates the articles table and its indexes.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id                   TEXT PRIMARY KEY,
    slug                 TEXT NOT NULL UNIQUE,
    title                TEXT NOT NULL,
    content              TEXT NOT NULL,
    excerpt              TEXT NOT NULL DEFAULT '',
    tags                 TEXT NOT NULL DEFAULT '[]',
    cover_image          TEXT NOT NULL DEFAULT '',
    cover_image_position TEXT NOT NULL DEFAULT '50% 50%',
    published            BOOLEAN NOT NULL DEFAULT FALSE,
    featured             BOOLEAN NOT NULL DEFAULT FALSE,
    view_count           INTEGER NOT NULL DEFAULT 0,
    reading_time         INTEGER NOT NULL DEFAULT 1,
    created_at           TIMESTAMP NOT NULL,
    updated_at           TIMESTAMP NOT NULL,
    published_at         TIMESTAMP
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published, published_at DESC)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}

func scanArticle(scan func(dest ...interface{}) error) (*entity.Article, error) {
	var article entity.Article
	var tagsJSON string
	var publishedAt sql.NullTime
	if err := scan(&article.ID, &article.Slug, &article.Title, &article.Content,
		&article.Excerpt, &tagsJSON, &article.CoverImage, &article.CoverImagePosition,
		&article.Published, &article.Featured, &article.ViewCount, &article.ReadingTime,
		&article.CreatedAt, &article.UpdatedAt, &publishedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &article.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		article.PublishedAt = &t
	}
	return &article, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}

// buildWhereClause returns the WHERE clause and args for the filter's
// tag/featured constraints.
func buildWhereClause(filter repository.ListFilter) (string, []interface{}) {
	conditions := []string{"published"}
	args := make([]interface{}, 0, 2)

	if filter.Tag != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM json_each(articles.tags) WHERE json_each.value = ?)")
		args = append(args, filter.Tag)
	}
	if filter.Featured != nil {
		conditions = append(conditions, "featured = ?")
		args = append(args, *filter.Featured)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (repo *ArticleRepo) ListPublished(ctx context.Context, filter repository.ListFilter) ([]*entity.Article, error) {
	defer observeQuery("list_published")()

	whereClause, args := buildWhereClause(filter)
	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY published_at DESC
LIMIT ? OFFSET ?`, articleColumns, whereClause)

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

	whereClause, args := buildWhereClause(filter)

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
WHERE id = ?
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
WHERE slug = ? AND published
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

	tags, err := encodeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO articles
       (id, slug, title, content, excerpt, tags, cover_image, cover_image_position,
        published, featured, view_count, reading_time, created_at, updated_at, published_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = repo.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.Title, article.Content, article.Excerpt,
		tags, article.CoverImage, article.CoverImagePosition,
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

	tags, err := encodeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	const query = `
UPDATE articles SET
       slug                 = ?,
       title                = ?,
       content              = ?,
       excerpt              = ?,
       tags                 = ?,
       cover_image          = ?,
       cover_image_position = ?,
       published            = ?,
       featured             = ?,
       reading_time         = ?,
       updated_at           = ?,
       published_at         = ?
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		article.Slug, article.Title, article.Content, article.Excerpt,
		tags, article.CoverImage, article.CoverImagePosition,
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

	const query = `DELETE FROM articles WHERE id = ?`
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

	const query = `UPDATE articles SET view_count = view_count + 1 WHERE slug = ? AND published`
	if _, err := repo.db.ExecContext(ctx, query, slug); err != nil {
		return fmt.Errorf("IncrementViewCount: %w", err)
	}
	return nil
}

// ListPublishedTags decodes tags in Go rather than relying on json_each
// aggregation, keeping the query portable across SQLite builds.
func (repo *ArticleRepo) ListPublishedTags(ctx context.Context) ([]string, error) {
	defer observeQuery("list_published_tags")()

	const query = `SELECT tags FROM articles WHERE published`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedTags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	seen := make(map[string]struct{})
	tags := make([]string, 0, 20)
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, fmt.Errorf("ListPublishedTags: Scan: %w", err)
		}
		var decoded []string
		if err := json.Unmarshal([]byte(tagsJSON), &decoded); err != nil {
			return nil, fmt.Errorf("ListPublishedTags: decode tags: %w", err)
		}
		for _, tag := range decoded {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Strings(tags)
	return tags, nil
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

// isUniqueViolation reports whether err looks like a SQLite unique constraint
// failure. SQLite drivers differ in error types, so this matches on message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

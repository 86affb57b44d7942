package db

import (
	"database/sql"
)

// MigrateUp creates the articles table and its indexes on PostgreSQL.
// Statements are idempotent so the migration can run at every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id                   UUID PRIMARY KEY,
    slug                 TEXT NOT NULL UNIQUE,
    title                TEXT NOT NULL,
    content              TEXT NOT NULL,
    excerpt              TEXT NOT NULL DEFAULT '',
    tags                 TEXT[] NOT NULL DEFAULT '{}',
    cover_image          TEXT NOT NULL DEFAULT '',
    cover_image_position TEXT NOT NULL DEFAULT '50% 50%',
    published            BOOLEAN NOT NULL DEFAULT FALSE,
    featured             BOOLEAN NOT NULL DEFAULT FALSE,
    view_count           BIGINT NOT NULL DEFAULT 0,
    reading_time         INTEGER NOT NULL DEFAULT 1,
    created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
    published_at         TIMESTAMPTZ
)`); err != nil {
		return err
	}

	indexes := []string{
		// Public listings filter on published and order by published_at DESC.
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published, published_at DESC)`,
		// Tag filtering uses the array containment operator.
		`CREATE INDEX IF NOT EXISTS idx_articles_tags ON articles USING gin(tags)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_featured ON articles(featured) WHERE featured = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the articles table.
// Use with caution: this deletes all article data.
func MigrateDown(db *sql.DB) error {
	_, err := db.Exec(`DROP TABLE IF EXISTS articles`)
	return err
}

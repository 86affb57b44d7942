package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

var articleRows = []string{
	"id", "slug", "title", "content", "excerpt", "tags", "cover_image",
	"cover_image_position", "published", "featured", "view_count",
	"reading_time", "created_at", "updated_at", "published_at",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestGetDecodesJSONTags(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE id = \?`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(articleRows).AddRow(
			"a1", "go-generics", "Go Generics", "content", "excerpt",
			`["go","generics"]`, "", "50% 50%",
			true, true, int64(7), 3, now, now, now,
		))

	got, err := repo.Get(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := []string{"go", "generics"}
	if diff := cmp.Diff(want, got.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if !got.Featured {
		t.Error("featured flag lost in scan")
	}
}

func TestGetNotFoundReturnsNilNil(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery(`WHERE id = \?`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil article, got %+v", got)
	}
}

func TestCreateEncodesTagsAsJSON(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	mock.ExpectExec("INSERT INTO articles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &entity.Article{
		ID:   "a1",
		Slug: "hello",
		Tags: []string{"go", "web"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	mock.ExpectExec("INSERT INTO articles").
		WillReturnError(errors.New("UNIQUE constraint failed: articles.slug"))

	err := repo.Create(context.Background(), &entity.Article{ID: "a1", Slug: "dup"})
	if !errors.Is(err, repository.ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestDeleteNoRows(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	mock.ExpectExec("DELETE FROM articles").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNoRowsAffected) {
		t.Errorf("expected ErrNoRowsAffected, got %v", err)
	}
}

func TestListPublishedTagsDedupesAndSorts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewArticleRepo(db)

	mock.ExpectQuery("SELECT tags FROM articles WHERE published").
		WillReturnRows(sqlmock.NewRows([]string{"tags"}).
			AddRow(`["web","go"]`).
			AddRow(`["go","testing"]`))

	got, err := repo.ListPublishedTags(context.Background())
	if err != nil {
		t.Fatalf("ListPublishedTags: %v", err)
	}
	want := []string{"go", "testing", "web"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWhereClauseTagUsesJSONEach(t *testing.T) {
	clause, args := buildWhereClause(repository.ListFilter{Tag: "go"})
	if clause != "WHERE published AND EXISTS (SELECT 1 FROM json_each(articles.tags) WHERE json_each.value = ?)" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != "go" {
		t.Errorf("unexpected args: %v", args)
	}
}

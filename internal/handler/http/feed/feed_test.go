package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-blog/internal/config"
	"portfolio-blog/internal/content/htmlrender"
	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
	artUC "portfolio-blog/internal/usecase/article"
)

type stubRepo struct {
	articles []*entity.Article
}

func (s *stubRepo) ListPublished(_ context.Context, _ repository.ListFilter) ([]*entity.Article, error) {
	return s.articles, nil
}

func (s *stubRepo) CountPublished(_ context.Context, _ repository.ListFilter) (int64, error) {
	return int64(len(s.articles)), nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]*entity.Article, error) { return s.articles, nil }

func (s *stubRepo) Get(_ context.Context, _ string) (*entity.Article, error) { return nil, nil }

func (s *stubRepo) GetBySlug(_ context.Context, _ string) (*entity.Article, error) {
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubRepo) Update(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubRepo) Delete(_ context.Context, _ string) error          { return nil }

func (s *stubRepo) IncrementViewCount(_ context.Context, _ string) error { return nil }

func (s *stubRepo) ListPublishedTags(_ context.Context) ([]string, error) { return nil, nil }

func (s *stubRepo) ListPublishedSlugs(_ context.Context) ([]repository.SlugEntry, error) {
	entries := make([]repository.SlugEntry, 0, len(s.articles))
	for _, a := range s.articles {
		entries = append(entries, repository.SlugEntry{
			Slug:        a.Slug,
			UpdatedAt:   a.UpdatedAt,
			PublishedAt: *a.PublishedAt,
		})
	}
	return entries, nil
}

func seed() *stubRepo {
	published := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	return &stubRepo{articles: []*entity.Article{{
		ID:          "3f1c8a94-5b0e-4a7f-9c64-2f8f3a1d2b10",
		Slug:        "go-testing-notes",
		Title:       "Go Testing Notes",
		Content:     "# Go Testing Notes\n\nTable tests are the default.",
		Excerpt:     "Table tests are the default.",
		Published:   true,
		CreatedAt:   published,
		UpdatedAt:   published,
		PublishedAt: &published,
	}}}
}

func site() config.SiteConfig {
	return config.SiteConfig{
		BaseURL:     "https://blog.example.com",
		Title:       "Example Blog",
		Description: "Notes on software",
	}
}

func TestRSSFeed(t *testing.T) {
	h := RSSHandler{
		Svc:      &artUC.Service{Repo: seed()},
		Site:     site(),
		Renderer: htmlrender.New(),
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/rss.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("content-type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		`<rss version="2.0"`,
		"<title>Example Blog</title>",
		"<link>https://blog.example.com/blog/go-testing-notes</link>",
		"<description>Table tests are the default.</description>",
		"<content:encoded><![CDATA[",
		"Tue, 20 May 2025 09:00:00 GMT",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("feed missing %q in:\n%s", want, body)
		}
	}
}

func TestRSSFeedEmpty(t *testing.T) {
	h := RSSHandler{Svc: &artUC.Service{Repo: &stubRepo{}}, Site: site()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/rss.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.Contains(w.Body.String(), "<item>") {
		t.Error("empty feed should contain no items")
	}
}

func TestSitemap(t *testing.T) {
	h := SitemapHandler{Svc: &artUC.Service{Repo: seed()}, Site: site()}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/sitemap.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://blog.example.com/</loc>",
		"<loc>https://blog.example.com/blog</loc>",
		"<loc>https://blog.example.com/blog/go-testing-notes</loc>",
		"<lastmod>2025-05-20</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q in:\n%s", want, body)
		}
	}
}

package fixtures

import (
	"strings"
	"testing"
)

func TestGenerateMarkdownShape(t *testing.T) {
	md := GenerateMarkdown(MarkdownOptions{
		Title:           "Testing Notes",
		Sections:        3,
		WordsPerSection: 20,
		IncludeCode:     true,
	})

	if !strings.HasPrefix(md, "# Testing Notes") {
		t.Errorf("missing title heading:\n%s", md)
	}
	if got := strings.Count(md, "\n## "); got != 3 {
		t.Errorf("section count = %d, want 3", got)
	}
	if !strings.Contains(md, "```go") {
		t.Error("missing code fence")
	}
}

func TestGenerateMarkdownWithoutTitle(t *testing.T) {
	md := GenerateMarkdown(MarkdownOptions{Sections: 1})
	if strings.HasPrefix(md, "# ") {
		t.Errorf("unexpected level-1 heading:\n%s", md)
	}
}

func TestPublishedArticleDefaults(t *testing.T) {
	art := PublishedArticle("Profiling Go Services")

	if art.Slug != "profiling-go-services" {
		t.Errorf("slug = %q", art.Slug)
	}
	if !art.Published || art.PublishedAt == nil {
		t.Error("expected a published article with publish timestamp")
	}
	if art.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestArticleOptions(t *testing.T) {
	art := PublishedArticle("Draft Notes", AsDraft(), WithSlug("custom-slug"), WithTags("go", "testing"), Featured())

	if art.Published || art.PublishedAt != nil {
		t.Error("AsDraft should clear publish state")
	}
	if art.Slug != "custom-slug" {
		t.Errorf("slug = %q", art.Slug)
	}
	if len(art.Tags) != 2 || !art.Featured {
		t.Errorf("options not applied: tags = %v, featured = %v", art.Tags, art.Featured)
	}
}

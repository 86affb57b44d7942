package pathutil

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	const valid = "3f1c8a94-5b0e-4a7f-9c64-2f8f3a1d2b10"

	id, err := ExtractID("/api/articles/"+valid, "/api/articles/")
	if err != nil {
		t.Fatalf("ExtractID: %v", err)
	}
	if id != valid {
		t.Errorf("id = %q, want %q", id, valid)
	}
}

func TestExtractIDInvalid(t *testing.T) {
	tests := []string{
		"/api/articles/123",
		"/api/articles/not-a-uuid",
		"/api/articles/",
		"/api/articles/3f1c8a94-5b0e-4a7f-9c64-2f8f3a1d2b10/extra",
	}

	for _, path := range tests {
		if _, err := ExtractID(path, "/api/articles/"); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ExtractID(%q) = %v, want ErrInvalidID", path, err)
		}
	}
}

func TestExtractSlug(t *testing.T) {
	slug, err := ExtractSlug("/api/articles/slug/hello-world", "/api/articles/slug/", "")
	if err != nil {
		t.Fatalf("ExtractSlug: %v", err)
	}
	if slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", slug)
	}
}

func TestExtractSlugWithSuffix(t *testing.T) {
	slug, err := ExtractSlug("/api/articles/hello-world/view", "/api/articles/", "/view")
	if err != nil {
		t.Fatalf("ExtractSlug: %v", err)
	}
	if slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", slug)
	}
}

func TestExtractSlugInvalid(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		suffix string
	}{
		{"empty slug", "/api/articles/slug/", "/api/articles/slug/", ""},
		{"nested slug", "/api/articles/slug/a/b", "/api/articles/slug/", ""},
		{"missing view suffix", "/api/articles/hello-world", "/api/articles/", "/view"},
		{"empty slug before view", "/api/articles//view", "/api/articles/", "/view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractSlug(tt.path, tt.prefix, tt.suffix); !errors.Is(err, ErrInvalidSlug) {
				t.Errorf("ExtractSlug(%q) = %v, want ErrInvalidSlug", tt.path, err)
			}
		})
	}
}

// Package pathutil provides URL path helpers shared by the HTTP handlers:
// path parameter extraction and metrics label normalization.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidSlug is returned when the slug path segment is empty or nested.
var ErrInvalidSlug = errors.New("invalid slug")

// ExtractID extracts a UUID article ID from a URL path.
//
// Example:
//
//	id, err := ExtractID("/api/articles/3f1c8a94-5b0e-4a7f-9c64-2f8f3a1d2b10", "/api/articles/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if _, err := uuid.Parse(idStr); err != nil {
		return "", ErrInvalidID
	}
	return idStr, nil
}

// ExtractSlug extracts a single slug path segment, optionally dropping a
// trailing suffix (used by the /{slug}/view route).
func ExtractSlug(path, prefix, suffix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		if !strings.HasSuffix(slug, suffix) {
			return "", ErrInvalidSlug
		}
		slug = strings.TrimSuffix(slug, suffix)
	}
	if slug == "" || strings.Contains(slug, "/") {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// maxSlugLength bounds slug size to keep URLs and index keys reasonable.
const maxSlugLength = 200

// maxTagCount bounds the number of tags per article.
const maxTagCount = 20

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug validates the format of a URL slug.
// Slugs must be lowercase alphanumeric segments separated by single hyphens,
// with no leading or trailing hyphen.
// Returns a ValidationError if the slug is invalid or empty.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{
			Field:   "slug",
			Message: "must be lowercase alphanumeric with single hyphens",
		}
	}
	return nil
}

// NormalizeTags lowercases and trims tags, dropping empties and duplicates
// while preserving the original order.
// Returns a ValidationError if the tag count exceeds the limit.
func NormalizeTags(tags []string) ([]string, error) {
	if len(tags) > maxTagCount {
		return nil, &ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("must not exceed %d tags", maxTagCount),
		}
	}
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result, nil
}

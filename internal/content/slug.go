// Package content provides the text utilities behind article derived fields:
// slug generation, reading time estimation, excerpt extraction, and the
// heading anchor derivation shared by the preview renderer and TOC extractor.
package content

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)

	headingAnchorSpaces = regexp.MustCompile(`\s+`)
	headingAnchorStrip  = regexp.MustCompile(`[^a-z0-9_-]`)
)

// GenerateSlug converts a title into a URL-safe slug.
// The title is lowercased, characters outside [a-z0-9], whitespace and hyphens
// are stripped, and remaining whitespace runs collapse to single hyphens.
// Leading and trailing hyphens are trimmed, so the result never contains
// consecutive hyphens.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// HeadingID derives the anchor id for a heading title.
// Spaces become hyphens and everything outside [a-z0-9_-] is removed.
// The preview renderer and the TOC extractor both use this derivation,
// so in-page anchor links always resolve.
func HeadingID(title string) string {
	s := strings.ToLower(title)
	s = headingAnchorSpaces.ReplaceAllString(s, "-")
	return headingAnchorStrip.ReplaceAllString(s, "")
}

package mdx

import (
	"regexp"
	"strings"

	"portfolio-blog/internal/content"
)

// TOCEntry is a single heading in the table of contents.
type TOCEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

var tocHeadingPattern = regexp.MustCompile(`(?m)^(#{2,4})\s+(.+)$`)

// ExtractTOC collects the level 2-4 headings of the content in document order.
// Level-1 headings are the article title and are excluded. Anchor ids use the
// same derivation as the preview renderer, so TOC links always resolve.
func ExtractTOC(markdown string) []TOCEntry {
	matches := tocHeadingPattern.FindAllStringSubmatch(markdown, -1)

	entries := make([]TOCEntry, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		entries = append(entries, TOCEntry{
			ID:    content.HeadingID(title),
			Title: title,
			Level: len(m[1]),
		})
	}
	return entries
}

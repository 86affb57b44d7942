package content

import (
	"regexp"
	"strings"

	"portfolio-blog/internal/utils/text"
)

// DefaultExcerptLength is the truncation limit used when no explicit length is given.
const DefaultExcerptLength = 160

var (
	headingLines = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
	blankLines   = regexp.MustCompile(`\n\s*\n`)
	lineBreaks   = regexp.MustCompile(`\s*\n\s*`)

	boldMarks   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicMarks = regexp.MustCompile(`\*([^*]+)\*`)
	linkMarks   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	codeMarks   = regexp.MustCompile("`([^`]*)`")

	titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// ExtractExcerpt derives a plain-text excerpt from Markdown content.
// Heading lines are removed, the first non-empty paragraph is selected, and
// bold, italic, link and inline-code markers are stripped. If the result
// exceeds maxLength runes it is truncated and suffixed with "...".
// A maxLength <= 0 falls back to DefaultExcerptLength.
func ExtractExcerpt(markdown string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	body := headingLines.ReplaceAllString(markdown, "")
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}

	var paragraph string
	for _, p := range blankLines.Split(body, -1) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraph = trimmed
			break
		}
	}
	if paragraph == "" {
		return ""
	}

	out := lineBreaks.ReplaceAllString(paragraph, " ")
	out = boldMarks.ReplaceAllString(out, "$1")
	out = italicMarks.ReplaceAllString(out, "$1")
	out = linkMarks.ReplaceAllString(out, "$1")
	out = codeMarks.ReplaceAllString(out, "$1")
	out = strings.TrimSpace(out)

	if text.CountRunes(out) <= maxLength {
		return out
	}
	return strings.TrimSpace(text.TruncateRunes(out, maxLength)) + "..."
}

// ExtractTitle returns the text of the first level-1 heading in the content,
// or an empty string when the content has no level-1 heading.
func ExtractTitle(markdown string) string {
	match := titlePattern.FindStringSubmatch(markdown)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

package preview

import (
	"regexp"
	"strings"
)

var (
	inlineCode   = regexp.MustCompile("`([^`\n]+)`")
	inlineBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineItalic = regexp.MustCompile(`\*([^*]+)\*`)
	inlineLink   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// renderInline escapes the text and applies inline substitutions.
// Code spans are carved out first so emphasis and link markers inside them
// are left untouched.
func renderInline(text string) string {
	escaped := escapeHTML(text)

	var sb strings.Builder
	last := 0
	for _, m := range inlineCode.FindAllStringSubmatchIndex(escaped, -1) {
		sb.WriteString(renderEmphasis(escaped[last:m[0]]))
		sb.WriteString("<code>")
		sb.WriteString(escaped[m[2]:m[3]])
		sb.WriteString("</code>")
		last = m[1]
	}
	sb.WriteString(renderEmphasis(escaped[last:]))
	return sb.String()
}

func renderEmphasis(text string) string {
	text = inlineBold.ReplaceAllString(text, "<strong>$1</strong>")
	text = inlineItalic.ReplaceAllString(text, "<em>$1</em>")
	text = inlineLink.ReplaceAllString(text, `<a href="$2">$1</a>`)
	return text
}

func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

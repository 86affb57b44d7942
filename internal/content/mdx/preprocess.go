// Package mdx prepares raw editor Markdown for the MDX publish pipeline.
// It rewrites the editor's shorthand syntax into the JSX components the site
// renders with, and extracts the table of contents used for in-page navigation.
package mdx

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	liveBlockPattern = regexp.MustCompile("(?s)```(\\w+)[ \t]+live[ \t]*\n(.*?)```")
	calloutPattern   = regexp.MustCompile(`(?s):::(info|tip|warning|danger|note)(?:[ \t]+([^\n]+))?\n(.*?):::`)
)

// Preprocess rewrites editor shorthand into MDX components.
//
// Fenced code blocks marked "live" become <LivePlayground> components with the
// code embedded in a template literal, and admonition blocks become <Callout>
// components with an optional title. Everything else passes through unchanged.
func Preprocess(markdown string) string {
	out := liveBlockPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		groups := liveBlockPattern.FindStringSubmatch(match)
		language := groups[1]
		code := escapeTemplateLiteral(strings.TrimSpace(groups[2]))
		return fmt.Sprintf("<LivePlayground code={`%s`} language=%q />", code, language)
	})

	out = calloutPattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := calloutPattern.FindStringSubmatch(match)
		typ := groups[1]
		title := strings.TrimSpace(groups[2])
		body := strings.TrimSpace(groups[3])
		if title != "" {
			return fmt.Sprintf("<Callout type=%q title=%q>\n%s\n</Callout>", typ, title, body)
		}
		return fmt.Sprintf("<Callout type=%q>\n%s\n</Callout>", typ, body)
	})

	return out
}

// escapeTemplateLiteral escapes backticks and dollar signs so the code can be
// embedded in a JavaScript template literal without terminating it or
// triggering interpolation.
func escapeTemplateLiteral(code string) string {
	code = strings.ReplaceAll(code, "`", "\\`")
	code = strings.ReplaceAll(code, "$", "\\$")
	return code
}

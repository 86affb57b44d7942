// Package preview renders the constrained Markdown dialect used by the
// article editor into HTML for live preview. It is intentionally not a full
// Markdown implementation: the published read path uses a real renderer,
// while this one mirrors exactly what the editor supports, never fails, and
// degrades unknown syntax to plain paragraphs.
package preview

import (
	"fmt"
	"strings"

	"portfolio-blog/internal/content"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockCode
	blockCallout
	blockQuote
	blockList
	blockOrderedList
	blockRule
)

// block is a node of the small block-level AST produced by parseBlocks.
type block struct {
	kind  blockKind
	level int    // heading level, 1-3
	lang  string // fenced code language, may be empty
	typ   string // callout type
	lines []string
}

// calloutTypes are the admonition types the editor dialect recognizes.
var calloutTypes = map[string]struct{}{
	"info":    {},
	"tip":     {},
	"warning": {},
	"danger":  {},
	"note":    {},
}

// Render converts editor Markdown to preview HTML.
// It never returns an error; malformed constructs fall through as paragraphs
// and an unterminated code fence is closed at end of input.
func Render(markdown string) string {
	blocks := parseBlocks(strings.Split(markdown, "\n"))

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b))
	}
	return strings.Join(parts, "\n")
}

func parseBlocks(lines []string) []block {
	var blocks []block
	var para []string

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, block{kind: blockParagraph, lines: para})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushPara()

		case strings.HasPrefix(trimmed, "```"):
			flushPara()
			b := block{kind: blockCode, lang: strings.TrimSpace(trimmed[3:])}
			for i++; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == "```" {
					break
				}
				b.lines = append(b.lines, lines[i])
			}
			blocks = append(blocks, b)

		case isCalloutOpen(trimmed):
			flushPara()
			b := block{kind: blockCallout, typ: trimmed[3:]}
			for i++; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == ":::" {
					break
				}
				b.lines = append(b.lines, lines[i])
			}
			blocks = append(blocks, b)

		case strings.HasPrefix(line, "### "):
			flushPara()
			blocks = append(blocks, block{kind: blockHeading, level: 3, lines: []string{line[4:]}})

		case strings.HasPrefix(line, "## "):
			flushPara()
			blocks = append(blocks, block{kind: blockHeading, level: 2, lines: []string{line[3:]}})

		case strings.HasPrefix(line, "# "):
			flushPara()
			blocks = append(blocks, block{kind: blockHeading, level: 1, lines: []string{line[2:]}})

		case strings.HasPrefix(line, "> "):
			flushPara()
			quote := []string{line[2:]}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "> ") {
				i++
				quote = append(quote, lines[i][2:])
			}
			blocks = append(blocks, block{kind: blockQuote, lines: quote})

		case trimmed == "---":
			flushPara()
			blocks = append(blocks, block{kind: blockRule})

		case strings.HasPrefix(line, "- "):
			flushPara()
			items := []string{line[2:]}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "- ") {
				i++
				items = append(items, lines[i][2:])
			}
			blocks = append(blocks, block{kind: blockList, lines: items})

		case orderedItem(line) != "":
			flushPara()
			items := []string{orderedItem(line)}
			for i+1 < len(lines) && orderedItem(lines[i+1]) != "" {
				i++
				items = append(items, orderedItem(lines[i]))
			}
			blocks = append(blocks, block{kind: blockOrderedList, lines: items})

		default:
			para = append(para, line)
		}
	}
	flushPara()

	return blocks
}

func isCalloutOpen(trimmed string) bool {
	if !strings.HasPrefix(trimmed, ":::") || len(trimmed) == 3 {
		return false
	}
	_, ok := calloutTypes[trimmed[3:]]
	return ok
}

// orderedItem returns the item text of an ordered list line ("1. text"),
// or an empty string when the line is not an ordered list item.
func orderedItem(line string) string {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' && i > 0 && i+1 < len(line) && line[i+1] == ' ' {
			return line[i+2:]
		}
		return ""
	}
	return ""
}

func renderBlock(b block) string {
	switch b.kind {
	case blockHeading:
		text := b.lines[0]
		return fmt.Sprintf(`<h%d id="%s">%s</h%d>`,
			b.level, content.HeadingID(text), renderInline(text), b.level)

	case blockCode:
		code := escapeHTML(strings.Join(b.lines, "\n"))
		if b.lang != "" {
			return fmt.Sprintf(
				`<div class="code-block" data-language="%s"><pre><code>%s</code></pre></div>`,
				escapeHTML(b.lang), code)
		}
		return fmt.Sprintf(`<div class="code-block"><pre><code>%s</code></pre></div>`, code)

	case blockCallout:
		body := renderInline(strings.TrimSpace(strings.Join(b.lines, " ")))
		return fmt.Sprintf(
			`<div class="callout callout-%s"><span class="callout-label">%s</span><div class="callout-body">%s</div></div>`,
			b.typ, strings.ToUpper(b.typ), body)

	case blockQuote:
		return "<blockquote>" + renderInline(strings.Join(b.lines, " ")) + "</blockquote>"

	case blockList:
		return wrapItems("ul", b.lines)

	case blockOrderedList:
		return wrapItems("ol", b.lines)

	case blockRule:
		return "<hr />"

	default:
		return "<p>" + renderInline(strings.Join(b.lines, " ")) + "</p>"
	}
}

func wrapItems(tag string, items []string) string {
	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	for _, item := range items {
		sb.WriteString("<li>" + renderInline(item) + "</li>")
	}
	sb.WriteString("</" + tag + ">")
	return sb.String()
}

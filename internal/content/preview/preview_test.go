package preview

import (
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"h1", "# Hello World", `<h1 id="hello-world">Hello World</h1>`},
		{"h2", "## Section Two", `<h2 id="section-two">Section Two</h2>`},
		{"h3", "### Deep Dive", `<h3 id="deep-dive">Deep Dive</h3>`},
		{"inline in heading", "## With *em*", `<h2 id="with-em">With <em>em</em></h2>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderInlineElements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "Some **bold** text", "<p>Some <strong>bold</strong> text</p>"},
		{"italic", "Some *italic* text", "<p>Some <em>italic</em> text</p>"},
		{"inline code", "Use `fmt.Println` here", "<p>Use <code>fmt.Println</code> here</p>"},
		{"link", "See [docs](https://example.com)", `<p>See <a href="https://example.com">docs</a></p>`},
		{"escapes html", "a < b & c > d", "<p>a &lt; b &amp; c &gt; d</p>"},
		{"markers inside code span stay literal", "use `*not bold*` here", "<p>use <code>*not bold*</code> here</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCodeBlock(t *testing.T) {
	input := "```go\nfmt.Println(1)\n```"
	want := `<div class="code-block" data-language="go"><pre><code>fmt.Println(1)</code></pre></div>`
	if got := Render(input); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCodeBlockEscapesContent(t *testing.T) {
	input := "```\n<script>alert(1)</script>\n```"
	got := Render(input)
	if strings.Contains(got, "<script>") {
		t.Errorf("code block content not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", got)
	}
}

func TestRenderUnterminatedCodeBlock(t *testing.T) {
	input := "```go\nfmt.Println(1)"
	want := `<div class="code-block" data-language="go"><pre><code>fmt.Println(1)</code></pre></div>`
	if got := Render(input); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCallout(t *testing.T) {
	input := ":::warning\nBe careful!\n:::"
	want := `<div class="callout callout-warning"><span class="callout-label">WARNING</span><div class="callout-body">Be careful!</div></div>`
	if got := Render(input); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderUnknownCalloutDegradesToParagraph(t *testing.T) {
	input := ":::custom\ntext\n:::"
	want := "<p>:::custom text :::</p>"
	if got := Render(input); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLists(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unordered", "- one\n- two", "<ul><li>one</li><li>two</li></ul>"},
		{"ordered", "1. first\n2. second", "<ol><li>first</li><li>second</li></ol>"},
		{"ordered multi digit", "10. tenth", "<ol><li>tenth</li></ol>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderBlockquoteAndRule(t *testing.T) {
	if got := Render("> quoted text"); got != "<blockquote>quoted text</blockquote>" {
		t.Errorf("blockquote = %q", got)
	}
	if got := Render("---"); got != "<hr />" {
		t.Errorf("rule = %q", got)
	}
}

func TestRenderParagraphJoining(t *testing.T) {
	input := "line one\nline two\n\nsecond paragraph"
	want := "<p>line one line two</p>\n<p>second paragraph</p>"
	if got := Render(input); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderDocument(t *testing.T) {
	input := strings.Join([]string{
		"# Title",
		"",
		"Intro with **bold**.",
		"",
		"```go",
		"x := 1",
		"```",
		"",
		"- a",
		"- b",
	}, "\n")

	got := Render(input)
	for _, fragment := range []string{
		`<h1 id="title">Title</h1>`,
		"<p>Intro with <strong>bold</strong>.</p>",
		"<code>x := 1</code>",
		"<ul><li>a</li><li>b</li></ul>",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Render output missing %q:\n%s", fragment, got)
		}
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderNeverPanics(t *testing.T) {
	inputs := []string{
		"```",
		":::",
		":::info",
		"> ",
		"1.",
		"[broken](",
		"**unclosed",
		"`unclosed",
	}
	for _, input := range inputs {
		got := Render(input)
		_ = got
	}
}

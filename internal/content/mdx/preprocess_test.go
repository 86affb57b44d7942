package mdx

import (
	"strings"
	"testing"
)

func TestPreprocessLiveBlock(t *testing.T) {
	input := "```jsx live\nconst x = 1\n```"
	want := "<LivePlayground code={`const x = 1`} language=\"jsx\" />"
	if got := Preprocess(input); got != want {
		t.Errorf("Preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessLiveBlockEscapesTemplateLiteral(t *testing.T) {
	input := "```js live\nconst s = `a${b}`\n```"
	got := Preprocess(input)
	if !strings.Contains(got, "\\`a\\${b}\\`") {
		t.Errorf("backticks and dollar signs not escaped: %q", got)
	}
}

func TestPreprocessPlainCodeBlockUntouched(t *testing.T) {
	input := "```go\nfmt.Println(1)\n```"
	if got := Preprocess(input); got != input {
		t.Errorf("plain code block modified: %q", got)
	}
}

func TestPreprocessCalloutWithTitle(t *testing.T) {
	input := ":::info Custom Title\nBody text\n:::"
	want := "<Callout type=\"info\" title=\"Custom Title\">\nBody text\n</Callout>"
	if got := Preprocess(input); got != want {
		t.Errorf("Preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessCalloutWithoutTitle(t *testing.T) {
	input := ":::tip\nUse this trick\n:::"
	want := "<Callout type=\"tip\">\nUse this trick\n</Callout>"
	if got := Preprocess(input); got != want {
		t.Errorf("Preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessUnknownCalloutTypeUntouched(t *testing.T) {
	input := ":::custom\nBody\n:::"
	if got := Preprocess(input); got != input {
		t.Errorf("unknown callout type modified: %q", got)
	}
}

func TestPreprocessMixedDocument(t *testing.T) {
	input := strings.Join([]string{
		"# Title",
		"",
		"Intro paragraph.",
		"",
		"```tsx live",
		"export default () => <b>hi</b>",
		"```",
		"",
		":::warning",
		"Mind the gap.",
		":::",
	}, "\n")

	got := Preprocess(input)
	if !strings.Contains(got, "<LivePlayground") {
		t.Errorf("missing LivePlayground: %q", got)
	}
	if !strings.Contains(got, `<Callout type="warning">`) {
		t.Errorf("missing Callout: %q", got)
	}
	if !strings.Contains(got, "Intro paragraph.") {
		t.Errorf("prose dropped: %q", got)
	}
}

func TestPreprocessPassthrough(t *testing.T) {
	input := "# Title\n\nJust regular **markdown**."
	if got := Preprocess(input); got != input {
		t.Errorf("plain markdown modified: %q", got)
	}
}

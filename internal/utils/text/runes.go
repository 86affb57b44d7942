// Package text provides rune-aware text helpers. Excerpts are truncated by
// character count, and byte-based slicing would split multi-byte characters,
// so counting and truncation both operate on runes.
package text

import "unicode/utf8"

// CountRunes counts the Unicode characters in the given text. Multi-byte
// characters (Japanese, emoji) count as one.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateRunes returns at most max runes of s, never splitting a multi-byte
// character. A max <= 0 returns the empty string.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package content

import "strings"

// wordsPerMinute is the assumed reading speed for reading time estimation.
const wordsPerMinute = 200

// CalculateReadingTime estimates the reading time of Markdown content in minutes.
// Words are counted by whitespace tokenization and divided by the assumed
// reading speed, rounding up. The minimum is 1 minute, even for empty content.
func CalculateReadingTime(markdown string) int {
	words := len(strings.Fields(markdown))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

package content

import (
	"strings"
	"testing"
)

func TestCalculateReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content", "", 1},
		{"single word", "hello", 1},
		{"exactly one minute", words(200), 1},
		{"just over one minute", words(201), 2},
		{"two minutes", words(400), 2},
		{"rounds up", words(401), 3},
		{"whitespace only", "   \n\t  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateReadingTime(tt.content); got != tt.want {
				t.Errorf("CalculateReadingTime = %d, want %d", got, tt.want)
			}
		})
	}
}

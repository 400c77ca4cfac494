package router

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NoRelevantContent is returned when no speaker has qualifying passages.
const NoRelevantContent = "No speakers found with relevant content for this question."

const (
	renderPassages = 2
	excerptLimit   = 300
)

// Render formats ranked results as attributed text: each speaker's name with
// a percentage score, followed by up to two quoted excerpts tagged with
// either the passage timestamp or its transcript position.
func Render(results []Result) string {
	if len(results) == 0 {
		return NoRelevantContent
	}

	var parts []string
	for _, result := range results {
		parts = append(parts, fmt.Sprintf("**%s** (relevance: %.0f%%)", result.Speaker.Name, result.Score*100))
		passages := result.Passages
		if len(passages) > renderPassages {
			passages = passages[:renderPassages]
		}
		for _, scored := range passages {
			p := scored.Passage
			tag := fmt.Sprintf("position %d", p.Position)
			if p.Timestamp != "" {
				tag = p.Timestamp
			}
			parts = append(parts, fmt.Sprintf("  [%s, %s] %q", result.Speaker.Name, tag, excerpt(p.Text)))
		}
		parts = append(parts, "")
	}
	return strings.Join(parts, "\n")
}

// excerpt cuts at the limit in characters, not bytes, so multi-byte text
// never truncates to invalid UTF-8.
func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= excerptLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:excerptLimit]) + "..."
}

package analysis

import (
	"regexp"
	"sort"
	"strings"

	"confmind/internal/lexicon"
	"confmind/internal/mind"
)

var themeWordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

const (
	themeMinFrequency = 5
	themeKeep         = 15
)

// DetectThemes counts content words of four or more letters across every
// speaker's passages, drops stop words, and returns the 15 most frequent
// terms seen at least five times. Equal counts order lexicographically, which
// keeps the ranking deterministic.
func DetectThemes(speakers []*mind.Speaker) []mind.Theme {
	var parts []string
	for _, speaker := range speakers {
		for _, passage := range speaker.Passages {
			parts = append(parts, passage.Text)
		}
	}
	allText := strings.ToLower(strings.Join(parts, " "))

	counts := make(map[string]int)
	for _, word := range themeWordPattern.FindAllString(allText, -1) {
		counts[word]++
	}

	var themes []mind.Theme
	for word, count := range counts {
		if count < themeMinFrequency {
			continue
		}
		if _, stop := lexicon.StopWords[word]; stop {
			continue
		}
		themes = append(themes, mind.Theme{Term: word, Frequency: count})
	}

	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Frequency != themes[j].Frequency {
			return themes[i].Frequency > themes[j].Frequency
		}
		return themes[i].Term < themes[j].Term
	})

	if len(themes) > themeKeep {
		themes = themes[:themeKeep]
	}
	return themes
}

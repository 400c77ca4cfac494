package router

import (
	"regexp"
	"sort"
	"strings"

	"confmind/internal/mind"
)

var queryWordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

const (
	overlapFloor    = 0.1
	passageKeep     = 3
	speakerKeep     = 3
	passageWeight   = 0.7
	skillWeight     = 0.3
	skillDomainBump = 0.2
)

// ScoredPassage pairs a passage with its question-overlap score.
type ScoredPassage struct {
	Passage mind.Passage
	Overlap float64
}

// Result ranks one speaker for a question with its best passages attached.
type Result struct {
	Speaker  *mind.Speaker
	Score    float64
	Passages []ScoredPassage
}

// Route scores every candidate speaker's passages against the question and
// returns up to three speakers, each with up to three passages sorted by
// descending overlap. A non-empty targetSpeaker restricts candidates to
// speakers whose name contains it case-insensitively; no match means an
// empty result, not an error.
func Route(question string, m *mind.ConferenceMind, targetSpeaker string) []Result {
	questionWords := tokenize(question)
	denominator := len(questionWords)
	if denominator < 1 {
		denominator = 1
	}

	target := strings.ToLower(strings.TrimSpace(targetSpeaker))

	var results []Result
	for _, speaker := range m.Speakers {
		if target != "" && !strings.Contains(strings.ToLower(speaker.Name), target) {
			continue
		}

		var scored []ScoredPassage
		for _, passage := range speaker.Passages {
			passageWords := tokenize(passage.Text)
			overlap := float64(intersectionSize(questionWords, passageWords)) / float64(denominator)
			if overlap > overlapFloor {
				scored = append(scored, ScoredPassage{Passage: passage, Overlap: overlap})
			}
		}
		if len(scored) == 0 {
			continue
		}

		// Equal overlaps keep transcript order.
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Overlap > scored[j].Overlap
		})
		if len(scored) > passageKeep {
			scored = scored[:passageKeep]
		}

		score := passageWeight*scored[0].Overlap + skillWeight*skillBonus(speaker, questionWords)
		results = append(results, Result{Speaker: speaker, Score: score, Passages: scored})
	}

	// Equal scores keep speaker-list order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > speakerKeep {
		results = results[:speakerKeep]
	}
	return results
}

// skillBonus adds a fixed bump for every qualifying skill domain whose name
// tokens intersect the question words. Accumulation is unbounded; a strongly
// matched expert can score past 1.0.
func skillBonus(speaker *mind.Speaker, questionWords map[string]struct{}) float64 {
	bonus := 0.0
	for _, skill := range speaker.Skills {
		for _, token := range strings.Split(strings.ToLower(skill.Domain), "/") {
			if _, ok := questionWords[token]; ok {
				bonus += skillDomainBump
				break
			}
		}
	}
	return bonus
}

func tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range queryWordPattern.FindAllString(strings.ToLower(text), -1) {
		words[word] = struct{}{}
	}
	return words
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for word := range a {
		if _, ok := b[word]; ok {
			count++
		}
	}
	return count
}

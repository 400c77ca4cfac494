package profile

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"confmind/internal/lexicon"
	"confmind/internal/mind"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

const (
	phraseMinOccurrences = 3
	phraseMinLength      = 5
	phraseKeep           = 5
)

// BuildStyle computes a speaker's style profile from its passages and stores
// it on the speaker, replacing any prior profile whole.
func BuildStyle(speaker *mind.Speaker) mind.StyleProfile {
	allText := speaker.AllText()
	words := strings.Fields(allText)

	fragments := sentenceSplitPattern.Split(allText, -1)
	fragmentCount := len(fragments)
	if fragmentCount < 1 {
		fragmentCount = 1
	}

	wordTotal := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			wordTotal += len(strings.Fields(fragment))
		}
	}
	avgSentenceLen := float64(wordTotal) / float64(fragmentCount)

	var structure string
	switch {
	case avgSentenceLen <= 12:
		structure = "concise, direct"
	case avgSentenceLen <= 20:
		structure = "balanced, measured"
	default:
		structure = "complex, expansive"
	}

	questionRatio := float64(strings.Count(allText, "?")) / float64(fragmentCount)
	var questionFrequency string
	switch {
	case questionRatio > 0.15:
		questionFrequency = "high"
	case questionRatio >= 0.05:
		questionFrequency = "moderate"
	default:
		questionFrequency = "low"
	}

	register := vocabularyRegister(words)

	profile := mind.StyleProfile{
		SentenceStructure:  structure,
		VocabularyRegister: register,
		QuestionFrequency:  questionFrequency,
		AvgSentenceLength:  math.Round(avgSentenceLen*10) / 10,
		SignaturePhrases:   signaturePhrases(words),
		PassageCount:       len(speaker.Passages),
		WordCount:          len(words),
	}
	speaker.SetProfile(profile)
	return profile
}

func vocabularyRegister(words []string) string {
	techTerms := make(map[string]struct{}, len(lexicon.TechTerms))
	for _, term := range lexicon.TechTerms {
		techTerms[term] = struct{}{}
	}

	techCount := 0
	for _, word := range words {
		token := strings.ToLower(strings.Trim(word, ".,;:"))
		if _, ok := techTerms[token]; ok {
			techCount++
		}
	}

	wordCount := len(words)
	if wordCount < 1 {
		wordCount = 1
	}
	density := float64(techCount) / float64(wordCount)

	switch {
	case density > 0.03:
		return "highly technical"
	case density >= 0.01:
		return "technical-accessible blend"
	default:
		return "accessible, general audience"
	}
}

// signaturePhrases returns the most frequent lower-cased bigrams that occur
// at least three times and render longer than five characters. Count ties
// break lexicographically so output is stable across platforms.
func signaturePhrases(words []string) []string {
	counts := make(map[string]int)
	for i := 0; i+1 < len(words); i++ {
		bigram := strings.ToLower(words[i] + " " + words[i+1])
		counts[bigram]++
	}

	var qualifying []string
	for bigram, count := range counts {
		if count >= phraseMinOccurrences && utf8.RuneCountInString(bigram) > phraseMinLength {
			qualifying = append(qualifying, bigram)
		}
	}
	sort.Slice(qualifying, func(i, j int) bool {
		if counts[qualifying[i]] != counts[qualifying[j]] {
			return counts[qualifying[i]] > counts[qualifying[j]]
		}
		return qualifying[i] < qualifying[j]
	})

	if len(qualifying) > phraseKeep {
		qualifying = qualifying[:phraseKeep]
	}
	return qualifying
}

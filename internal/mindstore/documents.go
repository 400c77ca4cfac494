package mindstore

import (
	"fmt"
	"strings"

	"confmind/internal/mind"
)

// renderSoul formats a speaker's style profile as a markdown document.
func renderSoul(speaker *mind.Speaker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Communication Soul\n\n", speaker.Name)
	b.WriteString("## Voice\n")
	fmt.Fprintf(&b, "- sentence_structure: %s\n", speaker.Profile.SentenceStructure)
	fmt.Fprintf(&b, "- vocabulary_register: %s\n", speaker.Profile.VocabularyRegister)
	fmt.Fprintf(&b, "- question_frequency: %s\n", speaker.Profile.QuestionFrequency)
	fmt.Fprintf(&b, "- avg_sentence_length: %.1f\n", speaker.Profile.AvgSentenceLength)
	b.WriteString("\n## Signature Phrases\n")
	for _, phrase := range speaker.Profile.SignaturePhrases {
		fmt.Fprintf(&b, "- %q\n", phrase)
	}
	fmt.Fprintf(&b, "\n## Corpus\n- passages: %d\n- words: %d\n",
		speaker.Profile.PassageCount, speaker.Profile.WordCount)
	return b.String()
}

// renderSkills formats a speaker's ranked expertise as a markdown document.
func renderSkills(speaker *mind.Speaker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Expertise\n\n", speaker.Name)
	for _, skill := range speaker.Skills {
		fmt.Fprintf(&b, "- **%s**: %s (%d references)\n", skill.Domain, skill.Strength, skill.HitCount)
	}
	return b.String()
}

// RenderSummit formats the whole-conference composite overview document. It
// is written as summit_mind.md on save and reused by the export command.
func RenderSummit(m *mind.ConferenceMind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Summit Mind\n\n", m.Name)
	fmt.Fprintf(&b, "Created: %s\n", m.Created.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Speakers: %d\n\n", len(m.Speakers))

	b.WriteString("## Themes\n")
	themes := m.Themes
	if len(themes) > 10 {
		themes = themes[:10]
	}
	for _, theme := range themes {
		fmt.Fprintf(&b, "- %s (%d mentions)\n", theme.Term, theme.Frequency)
	}

	b.WriteString("\n## Tensions\n")
	for _, tension := range m.Tensions {
		fmt.Fprintf(&b, "- %s vs %s: %s\n", tension.Speakers[0], tension.Speakers[1], tension.Note)
	}

	b.WriteString("\n## Speakers\n")
	for _, speaker := range m.Speakers {
		fmt.Fprintf(&b, "- **%s**: %d passages", speaker.Name, len(speaker.Passages))
		if len(speaker.Skills) > 0 {
			domains := make([]string, 0, 3)
			for i, skill := range speaker.Skills {
				if i == 3 {
					break
				}
				domains = append(domains, skill.Domain)
			}
			fmt.Fprintf(&b, " | %s", strings.Join(domains, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package profile

import (
	"sort"
	"strings"

	"confmind/internal/lexicon"
	"confmind/internal/mind"
)

const (
	skillDetectThreshold = 3
	skillStrongThreshold = 10
)

// ExtractSkills counts expertise-domain keyword hits in a speaker's passages
// and stores the ranked qualifying domains on the speaker, replacing any
// prior list whole. Keywords count as substrings, so multi-word phrases match
// too. Ties keep lexicon declaration order.
func ExtractSkills(speaker *mind.Speaker) []mind.Skill {
	allText := strings.ToLower(speaker.AllText())

	skills := make([]mind.Skill, 0, len(lexicon.Domains))
	for _, domain := range lexicon.Domains {
		hits := 0
		for _, keyword := range domain.Keywords {
			hits += strings.Count(allText, keyword)
		}
		if hits < skillDetectThreshold {
			continue
		}
		strength := "moderate"
		if hits >= skillStrongThreshold {
			strength = "strong"
		}
		skills = append(skills, mind.Skill{
			Domain:   domain.Name,
			Strength: strength,
			HitCount: hits,
		})
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].HitCount > skills[j].HitCount
	})

	speaker.SetSkills(skills)
	return skills
}

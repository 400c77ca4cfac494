package analysis

import (
	"strings"

	"confmind/internal/lexicon"
	"confmind/internal/mind"
)

const tensionThreshold = 3

// TensionNote is the fixed explanation attached to every detected tension.
const TensionNote = "Potential disagreement detected via linguistic markers"

// DetectTensions counts contrastive marker phrases in each speaker's text and
// emits one record per unordered pair whose combined count reaches the
// threshold. Pairs enumerate in speaker-list order, i before j, so (A,B) and
// (B,A) can never both appear.
func DetectTensions(speakers []*mind.Speaker) []mind.Tension {
	contrasts := make([]int, len(speakers))
	for i, speaker := range speakers {
		text := strings.ToLower(speaker.AllText())
		for _, marker := range lexicon.ContrastMarkers {
			contrasts[i] += strings.Count(text, marker)
		}
	}

	var tensions []mind.Tension
	for i := 0; i < len(speakers); i++ {
		for j := i + 1; j < len(speakers); j++ {
			signals := contrasts[i] + contrasts[j]
			if signals < tensionThreshold {
				continue
			}
			tensions = append(tensions, mind.Tension{
				Speakers:        [2]string{speakers[i].Name, speakers[j].Name},
				ContrastSignals: signals,
				Note:            TensionNote,
			})
		}
	}
	return tensions
}

package segment

import (
	"regexp"
	"strings"

	"confmind/internal/mind"
)

// UnknownSpeaker attributes text that appears before the first speaker label.
const UnknownSpeaker = "Unknown"

// speakerPattern matches an attribution label at the start of a line: one or
// more words starting with an uppercase letter (letters, spaces, periods,
// apostrophes), followed by a colon and the rest of the line.
var speakerPattern = regexp.MustCompile(`^([A-Z][a-zA-Z\s.']+?):\s*(.*)`)

// Segment scans clean transcript text and returns speakers in first-appearance
// order, each owning its passages in transcript order. Passage positions form
// a single zero-based sequence across all speakers.
func Segment(cleanText string) []*mind.Speaker {
	byName := make(map[string]*mind.Speaker)
	var order []string

	currentSpeaker := UnknownSpeaker
	var buffer []string
	position := 0

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		speaker, ok := byName[currentSpeaker]
		if !ok {
			speaker = &mind.Speaker{Name: currentSpeaker}
			byName[currentSpeaker] = speaker
			order = append(order, currentSpeaker)
		}
		speaker.Passages = append(speaker.Passages, mind.Passage{
			Speaker:  currentSpeaker,
			Text:     strings.Join(buffer, " "),
			Position: position,
		})
		position++
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(cleanText, "\n") {
		line = strings.TrimSpace(line)
		if match := speakerPattern.FindStringSubmatch(line); match != nil {
			flush()
			currentSpeaker = strings.TrimSpace(match[1])
			if remaining := strings.TrimSpace(match[2]); remaining != "" {
				buffer = append(buffer, remaining)
			}
			continue
		}
		if line != "" {
			buffer = append(buffer, line)
		}
	}
	flush()

	speakers := make([]*mind.Speaker, 0, len(order))
	for _, name := range order {
		speakers = append(speakers, byName[name])
	}
	return speakers
}

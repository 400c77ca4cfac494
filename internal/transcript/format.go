package transcript

import (
	"regexp"
	"strings"
)

// Format identifies a supported transcript layout.
type Format string

const (
	FormatSRT     Format = "srt"
	FormatVTT     Format = "vtt"
	FormatYouTube Format = "youtube"
	FormatLabeled Format = "labeled"
	FormatRaw     Format = "raw"
)

const detectWindow = 20

var (
	bareNumberPattern = regexp.MustCompile(`^\d+$`)
	clockPattern      = regexp.MustCompile(`^\d{1,2}:\d{2}`)
	labelPattern      = regexp.MustCompile(`^[A-Z][a-zA-Z\s.]+:`)
)

// Detect classifies transcript text by inspecting its first 20 lines. The
// checks run in a fixed order and the first match wins; anything ambiguous
// falls through to FormatRaw.
func Detect(text string) Format {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > detectWindow {
		lines = lines[:detectWindow]
	}

	if hasBareNumber(lines, 5) && hasTimeRange(lines, 10) {
		return FormatSRT
	}

	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "WEBVTT") {
		return FormatVTT
	}

	for _, line := range prefix(lines, 10) {
		if clockPattern.MatchString(strings.TrimSpace(line)) {
			return FormatYouTube
		}
	}

	labelCount := 0
	for _, line := range lines {
		if labelPattern.MatchString(strings.TrimSpace(line)) {
			labelCount++
		}
	}
	if labelCount >= 3 {
		return FormatLabeled
	}

	return FormatRaw
}

func hasBareNumber(lines []string, limit int) bool {
	for _, line := range prefix(lines, limit) {
		if bareNumberPattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func hasTimeRange(lines []string, limit int) bool {
	for _, line := range prefix(lines, limit) {
		if strings.Contains(line, "-->") {
			return true
		}
	}
	return false
}

func prefix(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

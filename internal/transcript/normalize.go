package transcript

import (
	"regexp"
	"strings"
)

var (
	vttTimestampPattern = regexp.MustCompile(`^\d{2}:\d{2}`)
	youtubeClockPrefix  = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?\s*`)
)

// Normalize strips format-specific markup and returns a newline-joined block
// of content lines. It is a pure function of its inputs and idempotent:
// re-normalizing already-clean text changes nothing.
func Normalize(text string, format Format) string {
	switch format {
	case FormatSRT:
		return normalizeSRT(text)
	case FormatVTT:
		return normalizeVTT(text)
	case FormatYouTube:
		return normalizeYouTube(text)
	default:
		return normalizeRaw(text)
	}
}

func normalizeSRT(text string) string {
	var cleaned []string
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if bareNumberPattern.MatchString(line) {
			continue
		}
		if strings.Contains(line, "-->") {
			continue
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func normalizeVTT(text string) string {
	var cleaned []string
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "NOTE") {
			continue
		}
		if strings.Contains(line, "-->") {
			continue
		}
		if vttTimestampPattern.MatchString(line) {
			continue
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func normalizeYouTube(text string) string {
	var cleaned []string
	for _, line := range splitLines(text) {
		line = youtubeClockPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func normalizeRaw(text string) string {
	var cleaned []string
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSpace(text), "\n")
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"confmind/internal/mindstore"
	"confmind/internal/pipeline"
)

var errNoConferences = errors.New("no conferences ingested yet; run 'confmind ingest' first")

// resolveConference returns the explicit conference name when given,
// otherwise the most recently ingested one.
func resolveConference(p *pipeline.Pipeline, flagValue string) (string, error) {
	name := strings.TrimSpace(flagValue)
	if name != "" {
		return name, nil
	}

	entries, err := p.List()
	if err != nil {
		return "", fmt.Errorf("list conferences: %w", err)
	}
	if len(entries) == 0 {
		return "", errNoConferences
	}

	latest := entries[0]
	for _, entry := range entries[1:] {
		if entry.Created.After(latest.Created) {
			latest = entry
		}
	}
	return latest.Name, nil
}

func tensionPair(speakers [2]string) string {
	return speakers[0] + " ↔ " + speakers[1]
}

func formatCreated(meta mindstore.Metadata) string {
	return meta.Created.Format("2006-01-02 15:04")
}

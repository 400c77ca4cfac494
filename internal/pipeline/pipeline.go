package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"confmind/internal/analysis"
	"confmind/internal/config"
	"confmind/internal/logging"
	"confmind/internal/mind"
	"confmind/internal/mindstore"
	"confmind/internal/profile"
	"confmind/internal/router"
	"confmind/internal/segment"
	"confmind/internal/transcript"
)

// Pipeline runs ingests and answers queries against the configured store.
type Pipeline struct {
	store  *mindstore.Store
	logger *slog.Logger
}

// New opens the store and returns a ready pipeline. A nil logger discards
// stage logging.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	store, err := mindstore.Open(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{store: store, logger: logger}, nil
}

// Store exposes the underlying mind store for callers that need listings or
// storage paths directly.
func (p *Pipeline) Store() *mindstore.Store {
	return p.store
}

// Ingest runs the full extraction pipeline over transcript text and persists
// the resulting mind. Blank input is rejected before anything runs. An empty
// name is auto-generated from the current time.
func (p *Pipeline) Ingest(ctx context.Context, transcriptText, name, sourceLabel string) (*mind.ConferenceMind, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return nil, fmt.Errorf("%w: empty transcript", ErrValidation)
	}

	now := time.Now()
	if strings.TrimSpace(name) == "" {
		name = "Conference " + now.Format("2006-01-02 15:04")
	}
	if mindstore.Slugify(name) == "" {
		return nil, fmt.Errorf("%w: name %q has no usable characters", ErrValidation, name)
	}

	format := transcript.Detect(transcriptText)
	clean := transcript.Normalize(transcriptText, format)
	p.logger.Debug("transcript normalized",
		logging.String("format", string(format)),
		logging.Int("clean_bytes", len(clean)))

	speakers := segment.Segment(clean)
	for _, speaker := range speakers {
		profile.BuildStyle(speaker)
		profile.ExtractSkills(speaker)
	}

	m := &mind.ConferenceMind{
		ID:              uuid.NewString(),
		Name:            name,
		Created:         now,
		SourceFile:      sourceLabel,
		Speakers:        speakers,
		Themes:          analysis.DetectThemes(speakers),
		Tensions:        analysis.DetectTensions(speakers),
		RawTranscript:   transcriptText,
		CleanTranscript: clean,
	}

	if err := p.store.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save mind: %w", err)
	}

	p.logger.Info("conference ingested",
		logging.String("name", m.Name),
		logging.String("format", string(format)),
		logging.Int("speakers", len(m.Speakers)),
		logging.Int("passages", m.PassageCount()),
		logging.Int("themes", len(m.Themes)),
		logging.Int("tensions", len(m.Tensions)))
	return m, nil
}

// Ask loads a stored mind and answers the question with attributed excerpts.
// An optional target speaker restricts candidates by name substring.
func (p *Pipeline) Ask(ctx context.Context, question, conferenceName, targetSpeaker string) (string, error) {
	m, err := p.Load(ctx, conferenceName)
	if err != nil {
		return "", err
	}
	results := router.Route(question, m, targetSpeaker)
	return router.Render(results), nil
}

// Load returns a stored mind or ErrNotFound.
func (p *Pipeline) Load(ctx context.Context, name string) (*mind.ConferenceMind, error) {
	m, err := p.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load mind: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: conference %q", ErrNotFound, name)
	}
	return m, nil
}

// List returns the metadata records of all stored minds.
func (p *Pipeline) List() ([]mindstore.Metadata, error) {
	return p.store.List()
}

// Delete removes a stored mind by name, reporting ErrNotFound when nothing
// was stored under it.
func (p *Pipeline) Delete(name string) error {
	removed, err := p.store.Delete(name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: conference %q", ErrNotFound, name)
	}
	p.logger.Info("conference deleted", logging.String("name", name))
	return nil
}

package mindstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	_ "modernc.org/sqlite"

	"confmind/internal/config"
	"confmind/internal/mind"
)

const (
	metaFile            = "meta.json"
	rawTranscriptFile   = "transcript_raw.md"
	cleanTranscriptFile = "transcript_clean.md"
	mindDBFile          = "mind.db"
	speakersDir         = "speakers"
	soulFile            = "soul.md"
	skillsFile          = "skills.md"
	summitFile          = "summit_mind.md"
	lockFile            = ".lock"
)

// ErrUnusableName marks a display name that slugifies to nothing, which would
// make its storage location the store root.
var ErrUnusableName = errors.New("name has no usable characters")

// Metadata is the per-conference metadata record. Its presence defines a
// conference; its summary fields feed listings.
type Metadata struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Created      time.Time      `json:"created"`
	SourceFile   string         `json:"source_file"`
	SpeakerCount int            `json:"speaker_count"`
	Themes       []mind.Theme   `json:"themes"`
	Tensions     []mind.Tension `json:"tensions"`
}

// Store persists conference minds under a single root directory.
type Store struct {
	root string
	lock *flock.Flock
}

// Open prepares a store rooted at the configured minds directory.
func Open(cfg *config.Config) (*Store, error) {
	root := strings.TrimSpace(cfg.Paths.MindsDir)
	if root == "" {
		return nil, errors.New("minds directory not configured")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create minds directory: %w", err)
	}
	return &Store{
		root: root,
		lock: flock.New(filepath.Join(root, lockFile)),
	}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// MindDir returns the storage location for a display name or slug.
func (s *Store) MindDir(name string) string {
	return filepath.Join(s.root, Slugify(name))
}

// Save writes a conference mind to its storage location, replacing any
// previous contents whole. Writers serialize on the store lock; two saves of
// the same name are last-write-wins. A name whose slug is empty would resolve
// to the store root itself, so it is refused before anything is removed.
func (s *Store) Save(ctx context.Context, m *mind.ConferenceMind) error {
	if Slugify(m.Name) == "" {
		return fmt.Errorf("%w: %q", ErrUnusableName, m.Name)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	dir := s.MindDir(m.Name)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear previous mind: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create mind directory: %w", err)
	}

	meta := Metadata{
		ID:           m.ID,
		Name:         m.Name,
		Created:      m.Created,
		SourceFile:   m.SourceFile,
		SpeakerCount: len(m.Speakers),
		Themes:       m.Themes,
		Tensions:     m.Tensions,
	}
	if err := writeJSON(filepath.Join(dir, metaFile), meta); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, rawTranscriptFile), []byte(m.RawTranscript), 0o644); err != nil {
		return fmt.Errorf("write raw transcript: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cleanTranscriptFile), []byte(m.CleanTranscript), 0o644); err != nil {
		return fmt.Errorf("write clean transcript: %w", err)
	}

	if err := s.saveMindDB(ctx, dir, m); err != nil {
		return err
	}

	for _, speaker := range m.Speakers {
		speakerDir := filepath.Join(dir, speakersDir, Slugify(speaker.Name))
		if err := os.MkdirAll(speakerDir, 0o755); err != nil {
			return fmt.Errorf("create speaker directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(speakerDir, soulFile), []byte(renderSoul(speaker)), 0o644); err != nil {
			return fmt.Errorf("write soul document: %w", err)
		}
		if err := os.WriteFile(filepath.Join(speakerDir, skillsFile), []byte(renderSkills(speaker)), 0o644); err != nil {
			return fmt.Errorf("write skills document: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, summitFile), []byte(RenderSummit(m)), 0o644); err != nil {
		return fmt.Errorf("write summit document: %w", err)
	}
	return nil
}

func (s *Store) saveMindDB(ctx context.Context, dir string, m *mind.ConferenceMind) error {
	db, err := openMindDB(filepath.Join(dir, mindDBFile))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for rank, speaker := range m.Speakers {
		soulJSON, err := json.Marshal(speaker.Profile)
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
		skillsJSON, err := json.Marshal(speaker.Skills)
		if err != nil {
			return fmt.Errorf("marshal skills: %w", err)
		}
		claimsJSON, err := json.Marshal(speaker.Claims)
		if err != nil {
			return fmt.Errorf("marshal claims: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO speakers (name, rank, role, affiliation, soul_json, skills_json, claims_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			speaker.Name, rank, speaker.Role, speaker.Affiliation,
			string(soulJSON), string(skillsJSON), string(claimsJSON),
		); err != nil {
			return fmt.Errorf("insert speaker %q: %w", speaker.Name, err)
		}

		for _, passage := range speaker.Passages {
			topicsJSON, err := json.Marshal(passage.Topics)
			if err != nil {
				return fmt.Errorf("marshal topics: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO passages (position, speaker, text, timestamp, topics_json)
				 VALUES (?, ?, ?, ?, ?)`,
				passage.Position, passage.Speaker, passage.Text, passage.Timestamp, string(topicsJSON),
			); err != nil {
				return fmt.Errorf("insert passage %d: %w", passage.Position, err)
			}
		}
	}
	return tx.Commit()
}

// Load reconstructs a conference mind from its storage location. A location
// without a metadata record is absent and returns (nil, nil); missing
// individual artifacts degrade to empty fields.
func (s *Store) Load(ctx context.Context, name string) (*mind.ConferenceMind, error) {
	dir := s.MindDir(name)

	metaBytes, err := os.ReadFile(filepath.Join(dir, metaFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	m := &mind.ConferenceMind{
		ID:         meta.ID,
		Name:       meta.Name,
		Created:    meta.Created,
		SourceFile: meta.SourceFile,
		Themes:     meta.Themes,
		Tensions:   meta.Tensions,
	}
	m.RawTranscript = readOptional(filepath.Join(dir, rawTranscriptFile))
	m.CleanTranscript = readOptional(filepath.Join(dir, cleanTranscriptFile))

	speakers, err := s.loadSpeakers(ctx, dir)
	if err != nil {
		return nil, err
	}
	m.Speakers = speakers
	return m, nil
}

func (s *Store) loadSpeakers(ctx context.Context, dir string) ([]*mind.Speaker, error) {
	dbPath := filepath.Join(dir, mindDBFile)
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		// Degrade: recover speaker identities from the document layout.
		return speakersFromDirs(filepath.Join(dir, speakersDir)), nil
	}

	db, err := openMindDB(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := checkSchema(ctx, db); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT name, role, affiliation, soul_json, skills_json, claims_json FROM speakers ORDER BY rank")
	if err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}
	defer rows.Close()

	var speakers []*mind.Speaker
	byName := make(map[string]*mind.Speaker)
	for rows.Next() {
		var (
			speaker                           mind.Speaker
			soulJSON, skillsJSON, claimsJSON string
		)
		if err := rows.Scan(&speaker.Name, &speaker.Role, &speaker.Affiliation, &soulJSON, &skillsJSON, &claimsJSON); err != nil {
			return nil, fmt.Errorf("scan speaker: %w", err)
		}
		// Derived fields degrade to zero values when unparseable.
		_ = json.Unmarshal([]byte(soulJSON), &speaker.Profile)
		_ = json.Unmarshal([]byte(skillsJSON), &speaker.Skills)
		_ = json.Unmarshal([]byte(claimsJSON), &speaker.Claims)
		speakers = append(speakers, &speaker)
		byName[speaker.Name] = &speaker
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate speakers: %w", err)
	}

	passageRows, err := db.QueryContext(ctx,
		"SELECT position, speaker, text, timestamp, topics_json FROM passages ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query passages: %w", err)
	}
	defer passageRows.Close()

	for passageRows.Next() {
		var (
			passage    mind.Passage
			topicsJSON string
		)
		if err := passageRows.Scan(&passage.Position, &passage.Speaker, &passage.Text, &passage.Timestamp, &topicsJSON); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}
		_ = json.Unmarshal([]byte(topicsJSON), &passage.Topics)
		if speaker, ok := byName[passage.Speaker]; ok {
			speaker.Passages = append(speaker.Passages, passage)
		}
	}
	if err := passageRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passages: %w", err)
	}
	return speakers, nil
}

// List returns the metadata records of every stored conference, ordered by
// storage slug.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read minds directory: %w", err)
	}

	var metas []Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaBytes, err := os.ReadFile(filepath.Join(s.root, entry.Name(), metaFile))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(metaBytes, &meta); err != nil {
			continue
		}
		metas = append(metas, meta)
	}
	sort.Slice(metas, func(i, j int) bool {
		return Slugify(metas[i].Name) < Slugify(metas[j].Name)
	})
	return metas, nil
}

// Delete removes a conference's entire storage location. It reports whether
// anything was there to remove. Empty-slug names are refused for the same
// reason Save refuses them.
func (s *Store) Delete(name string) (bool, error) {
	if Slugify(name) == "" {
		return false, fmt.Errorf("%w: %q", ErrUnusableName, name)
	}
	if err := s.lock.Lock(); err != nil {
		return false, fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	dir := s.MindDir(name)
	if _, err := os.Stat(filepath.Join(dir, metaFile)); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("remove mind: %w", err)
	}
	return true, nil
}

func openMindDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open mind db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return db, nil
}

var titleCaser = cases.Title(language.English)

// speakersFromDirs recovers speaker names from document directories when the
// passage database is gone. Names round-trip through slugs, so this is a
// lossy best effort: slugs title-case back to display-ish names.
func speakersFromDirs(dir string) []*mind.Speaker {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var speakers []*mind.Speaker
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := titleCaser.String(strings.ReplaceAll(entry.Name(), "-", " "))
		speakers = append(speakers, &mind.Speaker{Name: name})
	}
	return speakers
}

func readOptional(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

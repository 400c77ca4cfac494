package mind

import "time"

// Passage is a single attributed utterance. Position is a zero-based index
// assigned at segmentation time, counted across the whole transcript rather
// than per speaker, and stable thereafter.
type Passage struct {
	Speaker   string   `json:"speaker"`
	Text      string   `json:"text"`
	Position  int      `json:"position"`
	Timestamp string   `json:"timestamp,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// StyleProfile summarizes how a speaker talks. It is derived from the
// speaker's passages and always recomputed as a whole.
type StyleProfile struct {
	SentenceStructure  string   `json:"sentence_structure"`
	VocabularyRegister string   `json:"vocabulary_register"`
	QuestionFrequency  string   `json:"question_frequency"`
	AvgSentenceLength  float64  `json:"avg_sentence_length"`
	SignaturePhrases   []string `json:"signature_phrases"`
	PassageCount       int      `json:"passage_count"`
	WordCount          int      `json:"word_count"`
}

// Skill is a detected expertise domain with its keyword hit count.
type Skill struct {
	Domain   string `json:"domain"`
	Strength string `json:"strength"`
	HitCount int    `json:"hit_count"`
}

// Speaker is one extracted conference participant. Passages keep transcript
// appearance order. Role, Affiliation, and Claims are reserved for deeper
// analysis passes and persist round-trip even while unpopulated.
type Speaker struct {
	Name        string      `json:"name"`
	Role        string      `json:"role,omitempty"`
	Affiliation string      `json:"affiliation,omitempty"`
	Passages    []Passage   `json:"passages"`
	Profile     StyleProfile `json:"soul"`
	Skills      []Skill     `json:"skills"`
	Claims      []string    `json:"claims,omitempty"`
}

// SetProfile replaces the speaker's style profile in one shot.
func (s *Speaker) SetProfile(p StyleProfile) {
	s.Profile = p
}

// SetSkills replaces the speaker's ranked skill list in one shot.
func (s *Speaker) SetSkills(skills []Skill) {
	s.Skills = skills
}

// AllText joins the speaker's passage texts with single spaces, the form
// every per-speaker derivation works from.
func (s *Speaker) AllText() string {
	total := 0
	for _, p := range s.Passages {
		total += len(p.Text) + 1
	}
	buf := make([]byte, 0, total)
	for i, p := range s.Passages {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, p.Text...)
	}
	return string(buf)
}

// Theme is a high-frequency content word across the whole corpus. Frequency
// is a plain token count, not a salience score.
type Theme struct {
	Term      string `json:"theme"`
	Frequency int    `json:"frequency"`
}

// Tension records a heuristic disagreement signal between two speakers. The
// pair is unordered; the analyzer emits at most one record per pair.
type Tension struct {
	Speakers        [2]string `json:"speakers"`
	ContrastSignals int       `json:"contrast_signals"`
	Note            string    `json:"note"`
}

// ConferenceMind is the aggregate root for one ingested conference. Themes
// and tensions are functions of the speakers list and are recomputed whole on
// every ingest.
type ConferenceMind struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Created         time.Time  `json:"created"`
	SourceFile      string     `json:"source_file"`
	Speakers        []*Speaker `json:"speakers"`
	Themes          []Theme    `json:"themes"`
	Tensions        []Tension  `json:"tensions"`
	RawTranscript   string     `json:"-"`
	CleanTranscript string     `json:"-"`
}

// SpeakerByName returns the speaker with the exact (case-sensitive) name, or
// nil when absent.
func (m *ConferenceMind) SpeakerByName(name string) *Speaker {
	for _, s := range m.Speakers {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// PassageCount reports the total number of passages across all speakers.
func (m *ConferenceMind) PassageCount() int {
	count := 0
	for _, s := range m.Speakers {
		count += len(s.Passages)
	}
	return count
}

package ipc

import "time"

// SpeakerSummary is the wire representation of one extracted speaker.
type SpeakerSummary struct {
	Name              string   `json:"name"`
	PassageCount      int      `json:"passage_count"`
	SentenceStructure string   `json:"sentence_structure"`
	Register          string   `json:"register"`
	TopDomains        []string `json:"top_domains"`
}

// ThemeSummary is the wire representation of one corpus theme.
type ThemeSummary struct {
	Term      string `json:"theme"`
	Frequency int    `json:"frequency"`
}

// TensionSummary is the wire representation of one pairwise tension.
type TensionSummary struct {
	Speakers        [2]string `json:"speakers"`
	ContrastSignals int       `json:"contrast_signals"`
	Note            string    `json:"note"`
}

// MindSummary mirrors the stored metadata record for listings.
type MindSummary struct {
	Name         string    `json:"name"`
	Created      time.Time `json:"created"`
	SourceFile   string    `json:"source_file"`
	SpeakerCount int       `json:"speaker_count"`
	ThemeCount   int       `json:"theme_count"`
	TensionCount int       `json:"tension_count"`
}

// IngestRequest submits transcript text for a full pipeline run.
type IngestRequest struct {
	Transcript  string `json:"transcript"`
	Name        string `json:"name"`
	SourceLabel string `json:"source_label"`
}

// IngestResponse summarizes a completed ingest.
type IngestResponse struct {
	OK           bool             `json:"ok"`
	Message      string           `json:"message,omitempty"`
	Name         string           `json:"name"`
	Speakers     []SpeakerSummary `json:"speakers"`
	ThemeCount   int              `json:"theme_count"`
	TensionCount int              `json:"tension_count"`
}

// AskRequest routes a question to a stored conference mind.
type AskRequest struct {
	Question   string `json:"question"`
	Conference string `json:"conference"`
	Speaker    string `json:"speaker,omitempty"`
}

// AskResponse carries the rendered attributed answer.
type AskResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Answer  string `json:"answer"`
}

// ConferenceRequest names a stored conference mind.
type ConferenceRequest struct {
	Conference string `json:"conference"`
}

// SpeakersResponse lists a conference's speakers.
type SpeakersResponse struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Speakers []SpeakerSummary `json:"speakers"`
}

// ThemesResponse lists a conference's ranked themes.
type ThemesResponse struct {
	OK      bool           `json:"ok"`
	Message string         `json:"message,omitempty"`
	Themes  []ThemeSummary `json:"themes"`
}

// TensionsResponse lists a conference's detected tensions.
type TensionsResponse struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Tensions []TensionSummary `json:"tensions"`
}

// ListRequest enumerates stored conference minds.
type ListRequest struct{}

// ListResponse carries the stored metadata summaries.
type ListResponse struct {
	Minds []MindSummary `json:"minds"`
}

// DeleteRequest removes a stored conference mind by name.
type DeleteRequest struct {
	Name string `json:"name"`
}

// DeleteResponse reports the deletion outcome.
type DeleteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

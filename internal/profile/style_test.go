package profile

import (
	"strings"
	"testing"

	"confmind/internal/mind"
)

func speakerWith(texts ...string) *mind.Speaker {
	s := &mind.Speaker{Name: "Test Speaker"}
	for i, text := range texts {
		s.Passages = append(s.Passages, mind.Passage{
			Speaker:  s.Name,
			Text:     text,
			Position: i,
		})
	}
	return s
}

func TestBuildStyleConcise(t *testing.T) {
	s := speakerWith("Short one. Very short. Yes. No. Sure thing.")
	p := BuildStyle(s)

	if p.SentenceStructure != "concise, direct" {
		t.Errorf("structure = %q, want concise", p.SentenceStructure)
	}
	if p.PassageCount != 1 {
		t.Errorf("passage count = %d, want 1", p.PassageCount)
	}
	if p.WordCount != 9 {
		t.Errorf("word count = %d, want 9", p.WordCount)
	}
}

func TestBuildStyleComplex(t *testing.T) {
	long := strings.Repeat("word ", 30)
	s := speakerWith(strings.TrimSpace(long) + ".")
	p := BuildStyle(s)

	if p.SentenceStructure != "complex, expansive" {
		t.Errorf("structure = %q, want complex for 30-word sentences", p.SentenceStructure)
	}
}

func TestBuildStyleQuestionFrequency(t *testing.T) {
	s := speakerWith("Why? How? Really? You think so? Sure.")
	p := BuildStyle(s)
	if p.QuestionFrequency != "high" {
		t.Errorf("question frequency = %q, want high", p.QuestionFrequency)
	}

	s = speakerWith("Statement one. Statement two. Statement three.")
	p = BuildStyle(s)
	if p.QuestionFrequency != "low" {
		t.Errorf("question frequency = %q, want low", p.QuestionFrequency)
	}
}

func TestBuildStyleTechnicalRegister(t *testing.T) {
	s := speakerWith("The algorithm drives the pipeline. Our runtime uses the framework. Every endpoint hits the cluster.")
	p := BuildStyle(s)
	if p.VocabularyRegister != "highly technical" {
		t.Errorf("register = %q, want highly technical", p.VocabularyRegister)
	}

	s = speakerWith("We talked about gardens and weather and lunch plans for the whole afternoon.")
	p = BuildStyle(s)
	if p.VocabularyRegister != "accessible, general audience" {
		t.Errorf("register = %q, want accessible", p.VocabularyRegister)
	}
}

func TestBuildStyleTechTermsMatchThroughPunctuation(t *testing.T) {
	// Trailing punctuation must not hide a term, and matching is
	// case-insensitive.
	s := speakerWith("Model, model; MODEL: model. " + strings.Repeat("filler ", 8))
	p := BuildStyle(s)
	if p.VocabularyRegister == "accessible, general audience" {
		t.Errorf("register = %q, tech terms not counted", p.VocabularyRegister)
	}
}

func TestSignaturePhrases(t *testing.T) {
	repeated := strings.Repeat("the agent figured it out. ", 4)
	s := speakerWith(repeated)
	p := BuildStyle(s)

	found := false
	for _, phrase := range p.SignaturePhrases {
		if phrase == "the agent" {
			found = true
		}
	}
	if !found {
		t.Errorf("signature phrases %v missing %q", p.SignaturePhrases, "the agent")
	}
	if len(p.SignaturePhrases) > 5 {
		t.Errorf("kept %d phrases, want at most 5", len(p.SignaturePhrases))
	}
}

func TestBuildStyleEmptySpeaker(t *testing.T) {
	s := speakerWith()
	p := BuildStyle(s)
	if p.WordCount != 0 || p.PassageCount != 0 {
		t.Errorf("empty speaker produced counts %d/%d", p.WordCount, p.PassageCount)
	}
	if p.AvgSentenceLength != 0 {
		t.Errorf("avg sentence length = %v, want 0", p.AvgSentenceLength)
	}
}

func TestBuildStyleReplacesWhole(t *testing.T) {
	s := speakerWith("First text. Plain talk.")
	first := BuildStyle(s)
	if len(first.SignaturePhrases) != 0 {
		t.Fatalf("unexpected phrases on first build: %v", first.SignaturePhrases)
	}

	s.Passages = append(s.Passages, mind.Passage{
		Speaker:  s.Name,
		Text:     strings.Repeat("open models win. ", 4),
		Position: 1,
	})
	second := BuildStyle(s)
	if second.PassageCount != 2 {
		t.Errorf("rebuild kept stale passage count %d", second.PassageCount)
	}
	if s.Profile.PassageCount != 2 {
		t.Error("profile on speaker not replaced whole")
	}
}

func TestSignaturePhrasesCountCharactersNotBytes(t *testing.T) {
	// "héé a" is seven bytes but only five characters, so it must not qualify.
	words := strings.Fields(strings.Repeat("héé a ", 3))
	if got := signaturePhrases(words); len(got) != 0 {
		t.Errorf("signature phrases = %v, want none", got)
	}

	// "café au" is seven characters and qualifies despite its multi-byte runes.
	words = strings.Fields(strings.Repeat("café au ", 3))
	got := signaturePhrases(words)
	if len(got) != 1 || got[0] != "café au" {
		t.Errorf("signature phrases = %v, want [café au]", got)
	}
}

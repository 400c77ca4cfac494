package analysis

import (
	"testing"

	"confmind/internal/mind"
)

func TestDetectTensionsThreshold(t *testing.T) {
	speakers := speakersFrom(
		"However, I see it differently. However, the data disagrees.",
		"I would argue the opposite. I would argue it again.",
	)
	tensions := DetectTensions(speakers)
	if len(tensions) != 1 {
		t.Fatalf("expected 1 tension, got %v", tensions)
	}
	tension := tensions[0]
	if tension.ContrastSignals != 4 {
		t.Errorf("contrast signals = %d, want 4", tension.ContrastSignals)
	}
	if tension.Speakers[0] != "A" || tension.Speakers[1] != "B" {
		t.Errorf("pair = %v, want [A B]", tension.Speakers)
	}
	if tension.Note != TensionNote {
		t.Errorf("note = %q", tension.Note)
	}
}

func TestDetectTensionsBelowThreshold(t *testing.T) {
	speakers := speakersFrom(
		"However, one marker only.",
		"Agreed on every point here.",
	)
	if tensions := DetectTensions(speakers); len(tensions) != 0 {
		t.Errorf("expected no tensions, got %v", tensions)
	}
}

func TestDetectTensionsSymmetric(t *testing.T) {
	speakers := speakersFrom(
		"However however however.",
		"However however however.",
		"Nothing contrastive at all.",
	)
	tensions := DetectTensions(speakers)
	seen := map[[2]string]bool{}
	for _, tension := range tensions {
		reversed := [2]string{tension.Speakers[1], tension.Speakers[0]}
		if seen[reversed] {
			t.Errorf("both (A,B) and (B,A) emitted: %v", tension.Speakers)
		}
		seen[tension.Speakers] = true
	}
	// A and B each carry three markers, so every pair reaches the threshold.
	if len(tensions) != 3 {
		t.Errorf("expected 3 pairwise tensions, got %d", len(tensions))
	}
}

func TestDetectTensionsSingleSpeaker(t *testing.T) {
	speakers := []*mind.Speaker{{
		Name:     "Solo",
		Passages: []mind.Passage{{Speaker: "Solo", Text: "However however however however.", Position: 0}},
	}}
	if tensions := DetectTensions(speakers); len(tensions) != 0 {
		t.Errorf("single speaker produced tensions: %v", tensions)
	}
}

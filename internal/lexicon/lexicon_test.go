package lexicon

import (
	"strings"
	"testing"
)

func TestTechTermsLowercased(t *testing.T) {
	for _, term := range TechTerms {
		if term != strings.ToLower(term) {
			t.Errorf("tech term %q is not lower-cased", term)
		}
	}
}

func TestDomainsHaveKeywords(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Domains {
		if d.Name == "" {
			t.Fatal("domain with empty name")
		}
		if seen[d.Name] {
			t.Errorf("duplicate domain %q", d.Name)
		}
		seen[d.Name] = true
		if len(d.Keywords) == 0 {
			t.Errorf("domain %q has no keywords", d.Name)
		}
		for _, kw := range d.Keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("domain %q keyword %q is not lower-cased", d.Name, kw)
			}
		}
	}
}

func TestDomainDeclarationOrder(t *testing.T) {
	// Declaration order is the documented tie-break for skill ranking; a
	// reorder is a behavior change, not a cleanup.
	want := []string{"AI/ML", "Infrastructure", "Security", "Product", "Business", "Open Source", "Education", "Governance"}
	if len(Domains) != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), len(Domains))
	}
	for i, d := range Domains {
		if d.Name != want[i] {
			t.Errorf("domain %d = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestStopWordsAreThemeShaped(t *testing.T) {
	// Theme tokens are >=4 lower-case letters; a stop word outside that shape
	// could never match anything.
	for word := range StopWords {
		if len(word) < 4 {
			t.Errorf("stop word %q shorter than the 4-letter theme threshold", word)
		}
		if word != strings.ToLower(word) {
			t.Errorf("stop word %q is not lower-cased", word)
		}
	}
}

func TestContrastMarkersLowercased(t *testing.T) {
	for _, m := range ContrastMarkers {
		if m != strings.ToLower(m) {
			t.Errorf("contrast marker %q is not lower-cased", m)
		}
	}
}

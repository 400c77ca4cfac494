package lexicon

// Version identifies the vocabulary tables below. Analysis results are only
// comparable between minds ingested under the same lexicon version.
const Version = 1

// TechTerms are the words counted toward a speaker's technical-vocabulary
// density. Matching is case-insensitive against punctuation-stripped tokens.
var TechTerms = []string{
	"algorithm", "infrastructure", "protocol", "api", "model",
	"architecture", "deploy", "inference", "latency", "compute",
	"runtime", "framework", "pipeline", "endpoint", "cluster",
	"gpu", "token", "vector", "embedding", "fine-tune",
}

// Domain is one named expertise area with its keyword set. Keywords may be
// multi-word phrases; they are counted as substrings of the lower-cased text.
type Domain struct {
	Name     string
	Keywords []string
}

// Domains lists the detectable expertise areas. Declaration order is
// significant: it breaks ties between domains with equal hit counts.
var Domains = []Domain{
	{Name: "AI/ML", Keywords: []string{"ai", "machine learning", "neural", "model", "training", "inference", "llm", "gpt", "claude", "agent"}},
	{Name: "Infrastructure", Keywords: []string{"cloud", "server", "deploy", "kubernetes", "docker", "infrastructure", "compute", "gpu", "cluster"}},
	{Name: "Security", Keywords: []string{"security", "privacy", "encryption", "auth", "vulnerability", "trust", "permission"}},
	{Name: "Product", Keywords: []string{"user", "product", "feature", "experience", "interface", "design", "customer"}},
	{Name: "Business", Keywords: []string{"revenue", "market", "strategy", "growth", "enterprise", "startup", "investment", "valuation"}},
	{Name: "Open Source", Keywords: []string{"open source", "github", "community", "contributor", "fork", "repository", "license"}},
	{Name: "Education", Keywords: []string{"learn", "teach", "student", "course", "curriculum", "training", "workshop"}},
	{Name: "Governance", Keywords: []string{"policy", "regulation", "compliance", "governance", "ethics", "responsible"}},
}

// StopWords are excluded from theme detection regardless of frequency.
var StopWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "have": {}, "from": {}, "they": {}, "been": {},
	"were": {}, "their": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"about": {}, "which": {}, "there": {}, "when": {}, "what": {}, "your": {},
	"just": {}, "like": {}, "know": {}, "think": {}, "going": {}, "really": {},
	"very": {}, "also": {}, "some": {}, "more": {}, "than": {}, "then": {},
	"into": {}, "other": {}, "people": {}, "because": {}, "something": {},
}

// ContrastMarkers are the phrases counted as disagreement signals during
// tension detection. Counted as substrings of each speaker's lower-cased text.
var ContrastMarkers = []string{
	"however", "disagree", "but actually",
	"on the contrary", "not necessarily",
	"i would argue", "the problem with",
}

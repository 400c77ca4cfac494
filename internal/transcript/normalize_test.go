package transcript

import "testing"

func TestNormalizeSRT(t *testing.T) {
	text := "1\n00:00:01,000 --> 00:00:04,000\nHello everyone.\n\n2\n00:00:05,000 --> 00:00:08,000\nWelcome back."
	want := "Hello everyone.\nWelcome back."
	if got := Normalize(text, FormatSRT); got != want {
		t.Errorf("Normalize(srt) = %q, want %q", got, want)
	}
}

func TestNormalizeVTT(t *testing.T) {
	text := "WEBVTT\nNOTE internal comment\n\n00:01.000 --> 00:04.000\nHello everyone.\n00:05 stray timestamp line\nActual content."
	want := "Hello everyone.\nActual content."
	if got := Normalize(text, FormatVTT); got != want {
		t.Errorf("Normalize(vtt) = %q, want %q", got, want)
	}
}

func TestNormalizeYouTube(t *testing.T) {
	text := "0:00 welcome everyone\n1:23:45 closing remarks\n2:10"
	want := "welcome everyone\nclosing remarks"
	if got := Normalize(text, FormatYouTube); got != want {
		t.Errorf("Normalize(youtube) = %q, want %q", got, want)
	}
}

func TestNormalizeRawDropsBlanksOnly(t *testing.T) {
	text := "Alice: Hello.\n\n   \nBob: Hi there.\n"
	want := "Alice: Hello.\nBob: Hi there."
	if got := Normalize(text, FormatRaw); got != want {
		t.Errorf("Normalize(raw) = %q, want %q", got, want)
	}
	if got := Normalize(text, FormatLabeled); got != want {
		t.Errorf("Normalize(labeled) = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := map[Format]string{
		FormatSRT:     "1\n00:00:01,000 --> 00:00:04,000\nHello everyone.\n\n2\n00:00:05,000 --> 00:00:08,000\nWelcome back.",
		FormatVTT:     "WEBVTT\n\n00:01.000 --> 00:04.000\nHello everyone.",
		FormatYouTube: "0:00 welcome everyone\n0:15 first speaker",
		FormatLabeled: "Alice: Hello.\nBob: Hi.",
		FormatRaw:     "line one\n\nline two",
	}
	for format, text := range inputs {
		once := Normalize(text, format)
		twice := Normalize(once, format)
		if once != twice {
			t.Errorf("Normalize(%s) not idempotent: %q vs %q", format, once, twice)
		}
		// Clean output must also survive the raw pass untouched.
		if raw := Normalize(once, FormatRaw); raw != once {
			t.Errorf("raw pass altered clean %s output: %q vs %q", format, once, raw)
		}
	}
}

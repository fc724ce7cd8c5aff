package notes

import (
	"strings"
	"testing"
)

func TestLinkify(t *testing.T) {
	abc, err := NewTracker([]string{"ABC"}, "https://t/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	any, err := NewTracker(nil, "https://t/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		tracker *Tracker
		input   string
		want    string
	}{
		{
			name:    "key at start of subject",
			tracker: abc,
			input:   "ABC-123: fix thing",
			want:    "[ABC-123](https://t/ABC-123): fix thing",
		},
		{
			name:    "separator preserved",
			tracker: abc,
			input:   "fix (ABC-7) handling",
			want:    "fix ([ABC-7](https://t/ABC-7)) handling",
		},
		{
			name:    "other prefixes ignored with allow-list",
			tracker: abc,
			input:   "XYZ-9: not ours",
			want:    "XYZ-9: not ours",
		},
		{
			name:    "default pattern matches any uppercase prefix",
			tracker: any,
			input:   "see WIDGET-42 for details",
			want:    "see [WIDGET-42](https://t/WIDGET-42) for details",
		},
		{
			name:    "left word boundary respected",
			tracker: any,
			input:   "sha1ABC-12 is not a key",
			want:    "sha1ABC-12 is not a key",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tracker.Linkify(tc.input)
			if got != tc.want {
				t.Fatalf("Linkify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLinkifyIsIdempotent(t *testing.T) {
	tracker, err := NewTracker([]string{"ABC"}, "https://t/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	once := tracker.Linkify("ABC-123: fix thing")
	twice := tracker.Linkify(once)
	if once != twice {
		t.Fatalf("Linkify not idempotent: %q != %q", once, twice)
	}
	if strings.Count(twice, "[ABC-123](https://t/ABC-123)") != 1 {
		t.Fatalf("expected exactly one link, got %q", twice)
	}
}

func TestLinkifyWithoutURLIsNoop(t *testing.T) {
	tracker, err := NewTracker(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tracker.Linkify("ABC-1: thing"); got != "ABC-1: thing" {
		t.Fatalf("expected passthrough without URL, got %q", got)
	}
}

func TestTrackerHeaderAndKey(t *testing.T) {
	tracker, err := NewTracker([]string{"JIRA"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for line, want := range map[string]bool{
		"JIRA-12: update docs":   true,
		"[JIRA-12]: update docs": true,
		"feat: add widget":       false,
		"JIRA-12 update docs":    false,
	} {
		if got := tracker.MatchesHeader(line); got != want {
			t.Fatalf("MatchesHeader(%q) = %v, want %v", line, got, want)
		}
	}

	if !tracker.IsKey("JIRA-12") {
		t.Fatalf("expected JIRA-12 to be a key")
	}
	if tracker.IsKey("JIRA-12:") {
		t.Fatalf("expected trailing colon to break full-key match")
	}

	var nilTracker *Tracker
	if nilTracker.IsKey("JIRA-12") || nilTracker.MatchesHeader("JIRA-12: x") {
		t.Fatalf("nil tracker must match nothing")
	}
	if got := nilTracker.Linkify("JIRA-12"); got != "JIRA-12" {
		t.Fatalf("nil tracker must pass text through, got %q", got)
	}
}

func TestRegexPrefixesAreQuoted(t *testing.T) {
	// A prefix containing regex metacharacters must be treated
	// literally, not break the compiled pattern.
	tracker, err := NewTracker([]string{"A+B"}, "https://t/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tracker.Linkify("AAB-1"); got != "AAB-1" {
		t.Fatalf("metacharacter prefix matched literally-unrelated key: %q", got)
	}
	if got := tracker.Linkify("A+B-1"); got != "[A+B-1](https://t/A+B-1)" {
		t.Fatalf("literal prefix not matched: %q", got)
	}
}

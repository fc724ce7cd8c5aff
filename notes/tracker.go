package notes

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTrackerConfig reports a tracker prefix list that does not compile
// into a usable key pattern. It is returned at construction, never at
// match time.
var ErrTrackerConfig = errors.New("invalid tracker configuration")

// defaultKeyPattern matches tracker keys like ABC-123 when no prefix
// allow-list is configured.
const defaultKeyPattern = `[A-Z][A-Z0-9]*-\d+`

// Tracker recognizes issue-tracker keys and rewrites them into Markdown
// links. All patterns are compiled once per configuration; a Tracker is
// immutable after construction. A nil Tracker matches nothing and
// passes text through unchanged.
type Tracker struct {
	url     string
	key     *regexp.Regexp
	header  *regexp.Regexp
	linkify *regexp.Regexp
}

// NewTracker builds a Tracker from an optional prefix allow-list and an
// optional base URL. Without prefixes any uppercase-starting key is
// recognized; without a URL keys are recognized but never linkified.
func NewTracker(prefixes []string, url string) (*Tracker, error) {
	keyExpr := defaultKeyPattern
	if len(prefixes) > 0 {
		quoted := make([]string, len(prefixes))
		for i, p := range prefixes {
			quoted[i] = regexp.QuoteMeta(p)
		}
		keyExpr = `(?:` + strings.Join(quoted, "|") + `)-\d+`
	}

	key, err := regexp.Compile(`^` + keyExpr + `$`)
	if err != nil {
		return nil, fmt.Errorf("%w: key pattern: %v", ErrTrackerConfig, err)
	}
	header, err := regexp.Compile(`^\[?` + keyExpr + `\]?:`)
	if err != nil {
		return nil, fmt.Errorf("%w: header pattern: %v", ErrTrackerConfig, err)
	}
	// The leading class excludes alphanumerics (word-boundary-safe on
	// the left), "[" (already-linkified key text) and "/" (the key
	// inside its own link URL), which keeps Linkify idempotent.
	linkify, err := regexp.Compile(`(^|[^0-9A-Za-z/\[])(` + keyExpr + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: linkify pattern: %v", ErrTrackerConfig, err)
	}

	return &Tracker{url: url, key: key, header: header, linkify: linkify}, nil
}

// IsKey reports whether s is exactly a tracker key.
func (t *Tracker) IsKey(s string) bool {
	if t == nil {
		return false
	}
	return t.key.MatchString(s)
}

// MatchesHeader reports whether a commit header line starts with a
// tracker key, bracketed or bare, followed by a colon.
func (t *Tracker) MatchesHeader(line string) bool {
	if t == nil {
		return false
	}
	return t.header.MatchString(line)
}

// Linkify replaces every tracker key in text with a Markdown link to
// the configured base URL, preserving the separator character before
// the key. Without a base URL the text is returned unchanged.
func (t *Tracker) Linkify(text string) string {
	if t == nil || t.url == "" {
		return text
	}
	return t.linkify.ReplaceAllStringFunc(text, func(m string) string {
		sub := t.linkify.FindStringSubmatch(m)
		return sub[1] + "[" + sub[2] + "](" + t.url + sub[2] + ")"
	})
}

package notes

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	breakingNoteTitle  = "BREAKING CHANGE"
	releaseAsNoteTitle = "RELEASE AS"
)

var (
	conventionalHeaderPattern = regexp.MustCompile(`^[A-Za-z]+(\([^)]*\))?!?: `)
	releaseCommitPattern      = regexp.MustCompile(`^chore\(main\): release`)
	issueRefPattern           = regexp.MustCompile(`\(#(\d+)\)`)
)

// Classify turns parsed commits plus raw recovery commits into ordered
// changelog entries. It never fails: malformed commit text falls
// through untouched rather than erroring.
func Classify(commits []Commit, raw []RawCommit, sections SectionMap, tracker *Tracker, bctx BuildContext) []Entry {
	entries := make([]Entry, 0, len(commits)+len(raw))
	seen := make(map[string]struct{}, len(commits)+len(raw))

	for _, c := range commits {
		header := firstLine(c.Message)

		typ := c.Type
		subject := c.BareMessage
		if tracker.MatchesHeader(header) {
			// A tracker-issue header is not a conventional commit even
			// when it parses like one; keep the full header as subject.
			typ = OthersType
			subject = header
		} else if tracker.IsKey(typ) {
			// Upstream parsers sometimes mistake "ABC-123: fix" for a
			// conventional commit with type "ABC-123". Re-bucket unless
			// the section map really configures that type.
			if _, ok := sections.Lookup(typ); !ok {
				typ = OthersType
			}
		}

		entries = append(entries, Entry{
			Subject:    tracker.Linkify(Sanitize(subject)),
			Type:       typ,
			Scope:      c.Scope,
			Notes:      breakingNotes(c.Notes, bctx),
			References: c.References,
			Header:     header,
			Footer:     releaseAsFooter(c.Notes),
			SHA:        c.SHA,
			Mentions:   []string{},
		})
		if c.SHA != "" {
			seen[c.SHA] = struct{}{}
		}
	}

	for _, rc := range raw {
		if _, ok := seen[rc.SHA]; ok {
			continue
		}
		header := firstLine(rc.Message)
		if !includeRawHeader(header, tracker) {
			continue
		}
		entries = append(entries, Entry{
			Subject:    tracker.Linkify(Sanitize(header)),
			Type:       OthersType,
			Notes:      []Note{},
			References: []Reference{},
			Header:     header,
			SHA:        rc.SHA,
			Mentions:   []string{},
		})
		if rc.SHA != "" {
			seen[rc.SHA] = struct{}{}
		}
	}

	return entries
}

// includeRawHeader decides whether a non-conventional commit header is
// worth recovering into the Others section.
func includeRawHeader(header string, tracker *Tracker) bool {
	if !strings.ContainsFunc(header, unicode.IsLetter) {
		// Pure numeric/version strings are noise, not changelog entries.
		return false
	}
	if tracker.MatchesHeader(header) {
		return true
	}
	if conventionalHeaderPattern.MatchString(header) {
		return false
	}
	if strings.HasPrefix(header, "Merge ") {
		return false
	}
	if strings.Contains(header, "release-please") || releaseCommitPattern.MatchString(header) {
		return false
	}
	return true
}

// breakingNotes keeps only BREAKING CHANGE notes, with the first
// trailing (#N) reference in each rewritten into an issue link.
func breakingNotes(in []Note, bctx BuildContext) []Note {
	out := make([]Note, 0, len(in))
	for _, n := range in {
		if n.Title != breakingNoteTitle {
			continue
		}
		out = append(out, Note{Title: n.Title, Text: linkFirstIssueRef(n.Text, bctx)})
	}
	return out
}

// releaseAsFooter emits one Release-As line per RELEASE AS note.
func releaseAsFooter(in []Note) string {
	var lines []string
	for _, n := range in {
		if n.Title == releaseAsNoteTitle {
			lines = append(lines, "Release-As: "+n.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func linkFirstIssueRef(text string, bctx BuildContext) string {
	m := issueRefPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	num := text[m[2]:m[3]]
	link := "([#" + num + "](" + issueURL(bctx, num) + "))"
	return text[:m[0]] + link + text[m[1]:]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r")
}

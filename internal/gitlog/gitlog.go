package gitlog

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"release-notes/notes"
)

// Collector wraps git operations. We keep it small and focused on
// readability.
type Collector struct {
	RepoPath string
}

// LogEntry is one commit as git reports it, before any parsing.
type LogEntry struct {
	SHA     string
	Message string
	Files   []string
}

// CommitsBetween pulls commit messages and touched files for a ref range.
func (c Collector) CommitsBetween(fromRef, toRef string) ([]LogEntry, error) {
	rangeSpec := fmt.Sprintf("%s..%s", fromRef, toRef)
	shas, err := c.commitSHAs(rangeSpec)
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	for _, sha := range shas {
		message, err := c.commitMessage(sha)
		if err != nil {
			return nil, err
		}
		files, err := c.commitFiles(sha)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{SHA: sha, Message: message, Files: files})
	}

	return entries, nil
}

func (c Collector) commitSHAs(rangeSpec string) ([]string, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "log", "--pretty=format:%H", rangeSpec)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	var shas []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			shas = append(shas, line)
		}
	}
	return shas, nil
}

func (c Collector) commitMessage(sha string) (string, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "show", "-s", "--format=%B", sha)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git show message %s: %w", sha, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (c Collector) commitFiles(sha string) ([]string, error) {
	cmd := exec.Command("git", "-C", c.RepoPath, "show", "--name-only", "--pretty=format:", sha)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git show files %s: %w", sha, err)
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if path := strings.TrimSpace(line); path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

var (
	headerPattern    = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^)]*)\))?(!)?: (.+)$`)
	footerPattern    = regexp.MustCompile(`^(BREAKING[ -]CHANGE|Release-As): ?(.*)$`)
	prNumberPattern  = regexp.MustCompile(`\(#(\d+)\)`)
	referencePattern = regexp.MustCompile(`#(\d+)`)
)

// Split parses each log entry's header against the conventional-commit
// grammar. Commits that parse become notes.Commit values with their
// footer notes and issue references attached; everything else is routed
// to the raw recovery source.
func Split(entries []LogEntry) ([]notes.Commit, []notes.RawCommit) {
	var commits []notes.Commit
	var raw []notes.RawCommit

	for _, e := range entries {
		header, body, _ := strings.Cut(e.Message, "\n")
		m := headerPattern.FindStringSubmatch(strings.TrimRight(header, "\r"))
		if m == nil {
			raw = append(raw, notes.RawCommit{
				SHA:         e.SHA,
				Message:     e.Message,
				PullRequest: pullRequestNumber(header),
				Files:       e.Files,
			})
			continue
		}

		ns := footerNotes(body)
		breaking := m[3] == "!"
		for _, n := range ns {
			if n.Title == "BREAKING CHANGE" {
				breaking = true
			}
		}

		commits = append(commits, notes.Commit{
			SHA:         e.SHA,
			Message:     e.Message,
			BareMessage: m[4],
			Type:        m[1],
			Scope:       m[2],
			Notes:       ns,
			References:  references(e.Message),
			Breaking:    breaking,
		})
	}

	return commits, raw
}

// footerNotes collects BREAKING CHANGE and Release-As footers. A note's
// text runs until the next blank line or footer token.
func footerNotes(body string) []notes.Note {
	var ns []notes.Note
	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		m := footerPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		text := m[2]
		for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" && !footerPattern.MatchString(lines[i+1]) {
			i++
			text += " " + strings.TrimSpace(lines[i])
		}
		title := "BREAKING CHANGE"
		if m[1] == "Release-As" {
			title = "RELEASE AS"
		}
		ns = append(ns, notes.Note{Title: title, Text: strings.TrimSpace(text)})
	}
	return ns
}

func references(message string) []notes.Reference {
	var refs []notes.Reference
	for _, m := range referencePattern.FindAllStringSubmatch(message, -1) {
		refs = append(refs, notes.Reference{Issue: m[1]})
	}
	return refs
}

func pullRequestNumber(header string) int {
	m := prNumberPattern.FindStringSubmatch(header)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Package notes turns parsed commit records into Markdown release
// notes: it classifies commits into changelog sections, rewrites
// tracker keys and issue references into links, renders the grouped
// document, and recovers entries the renderer dropped.
package notes

import "context"

// BuildOptions collects everything one BuildNotes invocation needs.
type BuildOptions struct {
	Host        string // repository host, defaults to DefaultHost
	Owner       string
	Repository  string
	Version     string
	PreviousTag string
	CurrentTag  string

	// Sections overrides the default section map.
	Sections SectionMap

	// RawCommits are unparsed commits from the same range, used to
	// recover entries the conventional parse missed.
	RawCommits []RawCommit

	// TrackerPrefixes restricts recognized issue keys; TrackerURL
	// enables linkification.
	TrackerPrefixes []string
	TrackerURL      string

	// Renderer overrides the built-in template renderer.
	Renderer Renderer
}

// BuildNotes builds the release-notes Markdown for one range of
// commits. The returned document has no trailing newline; an empty
// commit list yields an empty or header-only document, not an error.
func BuildNotes(ctx context.Context, commits []Commit, opts BuildOptions) (string, error) {
	sections := opts.Sections
	if sections == nil {
		sections = DefaultSections()
	}

	tracker, err := NewTracker(opts.TrackerPrefixes, opts.TrackerURL)
	if err != nil {
		return "", err
	}

	bctx := NewBuildContext(opts)
	entries := Classify(commits, opts.RawCommits, sections, tracker, bctx)

	renderer := opts.Renderer
	if renderer == nil {
		renderer = TemplateRenderer{}
	}
	rendered, err := renderer.Render(ctx, entries, bctx, NewWriterOptions(sections))
	if err != nil {
		return "", err
	}

	return assemble(rendered, entries, sections, bctx), nil
}

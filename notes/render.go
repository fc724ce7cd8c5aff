package notes

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

// Renderer produces the Markdown body for a set of classified entries.
// Implementations may drop entries whose type has no section; the
// fallback assembler recovers those afterwards.
type Renderer interface {
	Render(ctx context.Context, entries []Entry, bctx BuildContext, opts WriterOptions) (string, error)
}

// WriterOptions configures a Renderer: the section map plus the header
// and bullet templates of the fixed template grammar.
type WriterOptions struct {
	Sections       SectionMap
	HeaderTemplate string
	EntryTemplate  string
}

const (
	defaultHeaderTemplate = `## {{if .LinkCompare}}[{{.Version}}]({{.CompareURL}}){{else}}{{.Version}}{{end}}`
	defaultEntryTemplate  = `* {{if .Scope}}**{{.Scope}}:** {{end}}{{.Subject}}{{if .SHA}} ([{{.ShortSHA}}]({{.CommitURL}})){{end}}`
)

// NewWriterOptions is the preset factory: it turns a section map into
// renderer options with the default template grammar.
func NewWriterOptions(sections SectionMap) WriterOptions {
	return WriterOptions{
		Sections:       sections,
		HeaderTemplate: defaultHeaderTemplate,
		EntryTemplate:  defaultEntryTemplate,
	}
}

// TemplateRenderer is the built-in Renderer. It groups entries under
// their section heading in map order, suppresses hidden sections, and
// silently drops entries with no matching section.
type TemplateRenderer struct{}

type headerData struct {
	Version     string
	LinkCompare bool
	CompareURL  string
}

type entryData struct {
	Subject   string
	Scope     string
	SHA       string
	ShortSHA  string
	CommitURL string
}

func (TemplateRenderer) Render(ctx context.Context, entries []Entry, bctx BuildContext, opts WriterOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	headerTmpl, err := template.New("header").Parse(opts.HeaderTemplate)
	if err != nil {
		return "", fmt.Errorf("parse header template: %w", err)
	}
	entryTmpl, err := template.New("entry").Parse(opts.EntryTemplate)
	if err != nil {
		return "", fmt.Errorf("parse entry template: %w", err)
	}

	byType := make(map[string][]Entry, len(opts.Sections))
	for _, e := range entries {
		byType[e.Type] = append(byType[e.Type], e)
	}

	var blocks []string

	if bctx.Version != "" {
		var b strings.Builder
		err := headerTmpl.Execute(&b, headerData{
			Version:     bctx.Version,
			LinkCompare: bctx.LinkCompare,
			CompareURL:  compareURL(bctx),
		})
		if err != nil {
			return "", fmt.Errorf("render header: %w", err)
		}
		blocks = append(blocks, b.String())
	}

	if breaking := breakingBlock(entries); breaking != "" {
		blocks = append(blocks, breaking)
	}

	for _, section := range opts.Sections {
		group := byType[section.Type]
		if len(group) == 0 || section.Hidden {
			continue
		}
		var b strings.Builder
		b.WriteString("### " + section.Heading + "\n")
		for _, e := range group {
			b.WriteString("\n")
			err := entryTmpl.Execute(&b, entryData{
				Subject:   e.Subject,
				Scope:     e.Scope,
				SHA:       e.SHA,
				ShortSHA:  shortSHA(e.SHA),
				CommitURL: commitURL(bctx, e.SHA),
			})
			if err != nil {
				return "", fmt.Errorf("render entry %s: %w", e.SHA, err)
			}
		}
		blocks = append(blocks, b.String())
	}

	if footer := footerBlock(entries); footer != "" {
		blocks = append(blocks, footer)
	}

	return strings.Join(blocks, "\n\n"), nil
}

// breakingBlock surfaces BREAKING CHANGE notes from every entry, hidden
// sections included.
func breakingBlock(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		for _, n := range e.Notes {
			if n.Title != breakingNoteTitle {
				continue
			}
			if b.Len() == 0 {
				b.WriteString("### ⚠ BREAKING CHANGES\n")
			}
			b.WriteString("\n* " + n.Text)
		}
	}
	return b.String()
}

func footerBlock(entries []Entry) string {
	var lines []string
	for _, e := range entries {
		if e.Footer != "" {
			lines = append(lines, e.Footer)
		}
	}
	return strings.Join(lines, "\n")
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

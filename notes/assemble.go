package notes

import "strings"

// assemble guarantees that others-classified entries survive rendering.
// The renderer drops entries whose type has no section, and some
// configurations render nothing but the version header; in both cases
// the recovered commits are appended as a manual Others block. The
// block is only added when the rendered Markdown does not already carry
// the Others heading, which keeps every entry in the document exactly
// once.
func assemble(rendered string, entries []Entry, sections SectionMap, bctx BuildContext) string {
	rendered = strings.TrimSpace(rendered)

	others := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == OthersType {
			others = append(others, e)
		}
	}
	if len(others) == 0 {
		return rendered
	}

	heading := "Others"
	if s, ok := sections.Lookup(OthersType); ok && !s.Hidden {
		heading = s.Heading
	}
	if containsHeading(rendered, heading) {
		return rendered
	}

	block := othersBlock(others, bctx)
	switch {
	case rendered == "":
		return block
	case hasSectionsOrBullets(rendered):
		return rendered + "\n\n" + block
	default:
		// Only a bare version header came back; keep it on top.
		return firstLine(rendered) + "\n\n" + block
	}
}

func othersBlock(others []Entry, bctx BuildContext) string {
	lines := []string{"### Others", ""}
	for _, e := range others {
		line := "* " + e.Subject
		if e.SHA != "" {
			line += " ([" + shortSHA(e.SHA) + "](" + commitURL(bctx, e.SHA) + "))"
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

func containsHeading(markdown, heading string) bool {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "### "+heading {
			return true
		}
	}
	return false
}

func hasSectionsOrBullets(markdown string) bool {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "### ") || strings.HasPrefix(line, "* ") {
			return true
		}
	}
	return false
}

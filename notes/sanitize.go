package notes

import (
	"regexp"
	"strings"
)

// codeSpanPattern matches inline code delimited by one or two backticks.
// A span never runs past the next backtick boundary.
var codeSpanPattern = regexp.MustCompile("``[^`]*``|`[^`]*`")

var htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Sanitize escapes bare < and > so commit text cannot inject raw HTML
// into the changelog. Content inside inline code spans passes through
// untouched.
func Sanitize(text string) string {
	spans := codeSpanPattern.FindAllStringIndex(text, -1)
	if spans == nil {
		return htmlEscaper.Replace(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range spans {
		b.WriteString(htmlEscaper.Replace(text[last:span[0]]))
		b.WriteString(text[span[0]:span[1]])
		last = span[1]
	}
	b.WriteString(htmlEscaper.Replace(text[last:]))
	return b.String()
}

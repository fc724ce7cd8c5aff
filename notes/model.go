package notes

// Note is a typed block from a commit message footer, e.g. a breaking
// change description.
type Note struct {
	Title string
	Text  string
}

// Reference points at an issue mentioned by a commit.
type Reference struct {
	Issue string
}

// Commit is a conventionally parsed commit. Parsing happens upstream;
// the pipeline treats these as immutable input.
type Commit struct {
	SHA         string
	Message     string
	BareMessage string
	Type        string
	Scope       string
	Notes       []Note
	References  []Reference
	Breaking    bool
}

// RawCommit is a commit known to exist in the range but not parsed into
// conventional form. It is only used to recover entries the classifier
// would otherwise drop.
type RawCommit struct {
	SHA         string
	Message     string
	PullRequest int
	Files       []string
}

// Entry is one classified changelog line, ready for rendering.
type Entry struct {
	Subject    string
	Type       string
	Scope      string
	Notes      []Note
	References []Reference
	Header     string
	Footer     string
	SHA        string

	// The classifier never attempts merge/revert detection, so these
	// stay empty. They exist because writers expect the fields.
	Mentions []string
	Merge    *string
	Revert   *string
}

// BuildContext carries the repository coordinates and tag range for one
// invocation. Consumed read-only by rendering.
type BuildContext struct {
	Host        string
	Owner       string
	Repository  string
	Version     string
	PreviousTag string
	CurrentTag  string
	LinkCompare bool
}

// Section maps one commit type to a changelog heading. Hidden sections
// are grouped but suppressed from output.
type Section struct {
	Type    string `yaml:"type"`
	Heading string `yaml:"heading"`
	Hidden  bool   `yaml:"hidden,omitempty"`
}

// SectionMap is an ordered list of sections; order is rendering order.
type SectionMap []Section

// OthersType is the catch-all section type for commits that match no
// configured conventional type.
const OthersType = "others"

// DefaultSections returns the section map used when the caller does not
// supply one.
func DefaultSections() SectionMap {
	return SectionMap{
		{Type: "feat", Heading: "Features"},
		{Type: "fix", Heading: "Bug Fixes"},
		{Type: "perf", Heading: "Performance Improvements"},
		{Type: "deps", Heading: "Dependencies"},
		{Type: "revert", Heading: "Reverts"},
		{Type: OthersType, Heading: "Others"},
		{Type: "docs", Heading: "Documentation", Hidden: true},
		{Type: "style", Heading: "Styles", Hidden: true},
		{Type: "chore", Heading: "Miscellaneous Chores", Hidden: true},
		{Type: "refactor", Heading: "Code Refactoring", Hidden: true},
		{Type: "test", Heading: "Tests", Hidden: true},
		{Type: "build", Heading: "Build System", Hidden: true},
		{Type: "ci", Heading: "Continuous Integration", Hidden: true},
	}
}

// Lookup returns the section configured for a type, if any.
func (m SectionMap) Lookup(typ string) (Section, bool) {
	for _, s := range m {
		if s.Type == typ {
			return s, true
		}
	}
	return Section{}, false
}

// HasOthers reports whether the map configures an Others heading.
func (m SectionMap) HasOthers() bool {
	_, ok := m.Lookup(OthersType)
	return ok
}

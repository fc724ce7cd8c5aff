package notes

import "strings"

// DefaultHost is the repository host assumed when BuildOptions does not
// name one.
const DefaultHost = "https://github.com"

// NewBuildContext resolves defaults and derives the link-compare flag
// from the presence of a previous tag.
func NewBuildContext(opts BuildOptions) BuildContext {
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	return BuildContext{
		Host:        strings.TrimRight(host, "/"),
		Owner:       opts.Owner,
		Repository:  opts.Repository,
		Version:     opts.Version,
		PreviousTag: opts.PreviousTag,
		CurrentTag:  opts.CurrentTag,
		LinkCompare: opts.PreviousTag != "",
	}
}

func repoURL(bctx BuildContext) string {
	return bctx.Host + "/" + bctx.Owner + "/" + bctx.Repository
}

func issueURL(bctx BuildContext, number string) string {
	return repoURL(bctx) + "/issues/" + number
}

func commitURL(bctx BuildContext, sha string) string {
	return repoURL(bctx) + "/commit/" + sha
}

func compareURL(bctx BuildContext) string {
	return repoURL(bctx) + "/compare/" + bctx.PreviousTag + "..." + bctx.CurrentTag
}

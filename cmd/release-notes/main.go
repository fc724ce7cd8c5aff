package main

import (
	"flag"
	"fmt"
	"os"

	"release-notes/internal/app"
)

func main() {
	var f app.FlagValues
	flag.StringVar(&f.FromTag, "from-tag", "", "starting tag of the release range (exclusive)")
	flag.StringVar(&f.ToTag, "to-tag", "", "ending tag of the release range (default HEAD)")
	flag.StringVar(&f.FromCommit, "from-commit", "", "starting commit of the release range (exclusive)")
	flag.StringVar(&f.ToCommit, "to-commit", "", "ending commit of the release range (default HEAD)")
	flag.StringVar(&f.Version, "version", "", "version to print in the notes header (default: the ending tag)")
	flag.StringVar(&f.RepoPath, "repo", ".", "path to the git repository")
	flag.StringVar(&f.ConfigPath, "config", "release-notes.yaml", "path to the YAML configuration file")
	flag.StringVar(&f.OutputPath, "out", "RELEASE_NOTES.md", "path to write the generated Markdown")
	flag.Parse()

	opts, err := app.OptionsFromFlags(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

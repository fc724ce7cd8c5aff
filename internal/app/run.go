package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"release-notes/internal/config"
	"release-notes/internal/gitlog"
	"release-notes/notes"
)

// Run orchestrates the full workflow: git data -> classification -> rendered Markdown output.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if cfg.Owner == "" || cfg.Repository == "" {
		fmt.Fprintln(os.Stderr, "warning: owner/repository not configured, commit and issue links will be incomplete")
	}

	fromRef, toRef := refPair(opts)

	collector := gitlog.Collector{RepoPath: opts.RepoPath}
	entries, err := collector.CommitsBetween(fromRef, toRef)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("no commits found in the specified range")
	}

	commits, raw := gitlog.Split(entries)

	markdown, err := notes.BuildNotes(context.Background(), commits, notes.BuildOptions{
		Host:            cfg.Host,
		Owner:           cfg.Owner,
		Repository:      cfg.Repository,
		Version:         opts.Version,
		PreviousTag:     opts.FromTag,
		CurrentTag:      opts.ToTag,
		Sections:        cfg.Sections,
		RawCommits:      raw,
		TrackerPrefixes: cfg.Tracker.Prefixes,
		TrackerURL:      cfg.Tracker.URL,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.OutputPath, []byte(markdown+"\n"), 0o644); err != nil {
		return fmt.Errorf("write release notes: %w", err)
	}
	return nil
}

func refPair(opts Options) (string, string) {
	if opts.FromTag != "" {
		return opts.FromTag, opts.ToTag
	}
	return opts.FromCommit, opts.ToCommit
}

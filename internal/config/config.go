package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"release-notes/notes"
)

// TrackerConfig names the issue-tracker prefixes to recognize and the
// base URL keys are linked against.
type TrackerConfig struct {
	Prefixes []string `yaml:"prefixes,omitempty"`
	URL      string   `yaml:"url,omitempty"`
}

// Config is the on-disk configuration. Everything is optional; absent
// values fall back to the pipeline defaults.
type Config struct {
	Host       string           `yaml:"host,omitempty"`
	Owner      string           `yaml:"owner,omitempty"`
	Repository string           `yaml:"repository,omitempty"`
	Sections   notes.SectionMap `yaml:"sections,omitempty"`
	Tracker    TrackerConfig    `yaml:"tracker,omitempty"`
}

// Load reads a YAML config file. A missing file is not an error: it
// yields the zero config so the defaults apply.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	for _, s := range cfg.Sections {
		if s.Type == "" {
			return Config{}, fmt.Errorf("parse config: section with empty type")
		}
	}

	return cfg, nil
}

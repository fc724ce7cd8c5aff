package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"release-notes/notes"
)

func TestLoad(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		content := `
host: https://git.example.com
owner: acme
repository: widget
sections:
  - type: feat
    heading: Features
  - type: chore
    heading: Chores
    hidden: true
tracker:
  prefixes: [WIDGET, OPS]
  url: https://jira.example.com/browse/
`
		path := filepath.Join(t.TempDir(), "release-notes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://git.example.com", cfg.Host)
		assert.Equal(t, "acme", cfg.Owner)
		assert.Equal(t, "widget", cfg.Repository)
		assert.Equal(t, notes.SectionMap{
			{Type: "feat", Heading: "Features"},
			{Type: "chore", Heading: "Chores", Hidden: true},
		}, cfg.Sections)
		assert.Equal(t, []string{"WIDGET", "OPS"}, cfg.Tracker.Prefixes)
		assert.Equal(t, "https://jira.example.com/browse/", cfg.Tracker.URL)
	})

	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		require.NoError(t, err)
		assert.Zero(t, cfg)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sections: {not: [a, list"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("SectionWithoutType", func(t *testing.T) {
		content := `
sections:
  - heading: Features
`
		path := filepath.Join(t.TempDir(), "release-notes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty type")
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/naka-gawa/pr-changelog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	expected := &Config{
		Labels: []Label{
			{Name: "Ember", Repos: []string{"ember-engines/ember-engines", "ember-cli/ember-cli"}},
			{Name: "Atom", Repos: []string{"atom/atom"}},
		},
		Header:  []string{"# Changelog"},
		Users:   []string{"mansona"},
		Exclude: []string{"mansona/dotfiles"},
	}

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
  "labels": [
    {"name": "Ember", "repos": ["ember-engines/ember-engines", "ember-cli/ember-cli"]},
    {"name": "Atom", "repos": ["atom/atom"]}
  ],
  "header": ["# Changelog"],
  "users": ["mansona"],
  "exclude": ["mansona/dotfiles"]
}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `labels:
  - name: Ember
    repos: [ember-engines/ember-engines, ember-cli/ember-cli]
  - name: Atom
    repos: [atom/atom]
header: ["# Changelog"]
users: [mansona]
exclude: [mansona/dotfiles]
`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `header = ["# Changelog"]
users = ["mansona"]
exclude = ["mansona/dotfiles"]

[[labels]]
name = "Ember"
repos = ["ember-engines/ember-engines", "ember-cli/ember-cli"]

[[labels]]
name = "Atom"
repos = ["atom/atom"]
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, expected, cfg)
		})
	}
}

func TestLoad_OptionalFields(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", `{"labels": []}`))
	require.NoError(t, err)
	assert.Empty(t, cfg.Labels)
	assert.Empty(t, cfg.Header)
	assert.Empty(t, cfg.Users)
	assert.False(t, cfg.Excludes("any/repo"))
}

func TestLoad_LabelWithoutName(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", `{"labels": [{"name": "", "repos": ["a/b"]}, {"name": "Empty", "repos": []}]}`))
	require.NoError(t, err)
	require.Len(t, cfg.Labels, 2)
	assert.Equal(t, "", cfg.Labels[0].Name)
	assert.Equal(t, []string{"a/b"}, cfg.Labels[0].Repos)
	assert.Empty(t, cfg.Labels[1].Repos)
}

func TestLoad_Unreadable(t *testing.T) {
	testCases := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string { return writeFile(t, "config.json", `{"labels": [`) },
		},
		{
			name: "labels missing",
			path: func(t *testing.T) string { return writeFile(t, "config.json", `{"users": ["mansona"]}`) },
		},
		{
			name: "label without repos",
			path: func(t *testing.T) string { return writeFile(t, "config.yml", "labels:\n  - name: Ember\n") },
		},
		{
			name: "wrong type",
			path: func(t *testing.T) string { return writeFile(t, "config.toml", `labels = "Ember"`) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.path(t))
			assert.ErrorIs(t, err, domain.ErrConfigUnreadable)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_LabelGroups(t *testing.T) {
	cfg := &Config{Labels: []Label{
		{Name: "Zeta", Repos: []string{"z/z"}},
		{Name: "Alpha", Repos: []string{"a/a"}},
	}}

	groups := cfg.LabelGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Zeta", groups[0].Name)
	assert.Equal(t, "Alpha", groups[1].Name)
	assert.True(t, groups[0].Contains("z/z"))
	assert.Empty(t, groups[1].Items)
}

// Package config loads the report configuration file: the label groups,
// an optional document header, an optional user list and repositories to exclude.
//
// The format is chosen by file extension:
//   - .json (default for unknown extensions)
//   - .yaml / .yml
//   - .toml
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/naka-gawa/pr-changelog/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Label is one label definition as written in the config file.
type Label struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Repos []string `json:"repos" yaml:"repos" toml:"repos"`
}

// Config is the parsed report configuration.
type Config struct {
	Labels  []Label  `json:"labels" yaml:"labels" toml:"labels"`
	Header  []string `json:"header" yaml:"header" toml:"header"`
	Users   []string `json:"users" yaml:"users" toml:"users"`
	Exclude []string `json:"exclude" yaml:"exclude" toml:"exclude"`
}

// Load reads and validates the config file at path.
// Every failure wraps domain.ErrConfigUnreadable.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigUnreadable, err)
	}

	cfg, err := parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrConfigUnreadable, path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfigUnreadable, path, err)
	}
	return cfg, nil
}

func parse(ext string, data []byte) (*Config, error) {
	var cfg Config
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Labels == nil {
		return fmt.Errorf("missing required field \"labels\"")
	}
	for i, l := range c.Labels {
		if l.Repos == nil {
			return fmt.Errorf("label #%d (%q) is missing required field \"repos\"", i+1, l.Name)
		}
	}
	return nil
}

// LabelGroups returns empty label groups in configured order.
func (c *Config) LabelGroups() []domain.LabelGroup {
	groups := make([]domain.LabelGroup, 0, len(c.Labels))
	for _, l := range c.Labels {
		groups = append(groups, domain.NewLabelGroup(l.Name, l.Repos))
	}
	return groups
}

// Excludes reports whether items from repo must be left out of the report.
func (c *Config) Excludes(repo string) bool {
	for _, r := range c.Exclude {
		if r == repo {
			return true
		}
	}
	return false
}

// Package commitconfig loads commit-types.json, the single source of truth
// that every generated configuration file is derived from.
package commitconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shu-go/orderedmap"
)

// SourceFile is the name of the source of truth, relative to the repo root.
const SourceFile = "commit-types.json"

// DefaultTagPattern matches release tags like v1.2.3.
const DefaultTagPattern = "v[0-9].*"

// TypeConfig describes a single conventional-commit type.
type TypeConfig struct {
	Description    string  `json:"description,omitempty"`
	ChangelogGroup *string `json:"changelog_group,omitempty"`
}

// InChangelog reports whether commits of this type get their own changelog
// section. Types without a group still exist for linting purposes but are
// filtered into the ignored bucket when the changelog is generated.
func (t TypeConfig) InChangelog() bool {
	return t.ChangelogGroup != nil && *t.ChangelogGroup != ""
}

// Config is the parsed commit-types.json document. Types is an ordered map
// because the rendered parser rules must preserve source order; a plain
// map[string]TypeConfig would shuffle them on every unmarshal.
type Config struct {
	Project    string
	TagPattern string
	Types      *orderedmap.OrderedMap[string, TypeConfig]
}

// UnmarshalJSON decodes the document in two passes: the ordered map supplies
// the key order only, while every TypeConfig is decoded from a standard map
// into its own fresh value. The ordered map's decoder reuses a single value
// across entries, so entries decoded through it may carry state left over
// from their predecessors.
func (c *Config) UnmarshalJSON(data []byte) error {
	var doc struct {
		Project    string                     `json:"project"`
		TagPattern string                     `json:"tag_pattern"`
		Types      map[string]json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var order struct {
		Types *orderedmap.OrderedMap[string, json.RawMessage] `json:"types"`
	}
	if err := json.Unmarshal(data, &order); err != nil {
		return err
	}

	c.Project = doc.Project
	c.TagPattern = doc.TagPattern
	c.Types = nil
	if order.Types == nil {
		return nil
	}

	c.Types = orderedmap.New[string, TypeConfig]()
	for _, name := range order.Types.Keys() {
		var tc TypeConfig
		if raw, ok := doc.Types[name]; ok {
			if err := json.Unmarshal(raw, &tc); err != nil {
				return err
			}
		}
		c.Types.Set(name, tc)
	}

	return nil
}

// Load reads and parses the commit-types.json document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if cfg.Types == nil || cfg.Types.Len() == 0 {
		return nil, fmt.Errorf("%s has no top-level \"types\" mapping", filepath.Base(path))
	}

	return &cfg, nil
}

// TypeNames returns every commit-type name in source order.
func (c *Config) TypeNames() []string {
	return c.Types.Keys()
}

// ResolvedTagPattern returns the configured tag pattern, or the default.
func (c *Config) ResolvedTagPattern() string {
	if c.TagPattern != "" {
		return c.TagPattern
	}
	return DefaultTagPattern
}

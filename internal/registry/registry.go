// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry loads the expected-command registry: a YAML file naming
// the commands a description document is supposed to carry, with the
// metadata they must agree on. Drift between registry and document is how
// emitter regressions get caught before release.
package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Command is one expected command entry.
type Command struct {
	Tag    string   `yaml:"tag"`
	Module string   `yaml:"module"`
	Perm   string   `yaml:"perm"`
	Args   []string `yaml:"args"` // required argument names, in order
}

// Registry is the full expected-command list.
type Registry struct {
	Commands []Command `yaml:"commands"`
}

// Load reads and validates a registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks structural rules: every entry has a unique tag and any
// perm is spelled from the rwx set.
func (r *Registry) Validate() error {
	seen := make(map[string]bool)
	for i, c := range r.Commands {
		if c.Tag == "" {
			return fmt.Errorf("registry entry at index %d missing tag", i)
		}
		if seen[c.Tag] {
			return fmt.Errorf("duplicate registry tag %s", c.Tag)
		}
		seen[c.Tag] = true

		if c.Perm != "" && strings.Trim(c.Perm, "rwx") != "" {
			return fmt.Errorf("registry tag %s has invalid perm %q", c.Tag, c.Perm)
		}
	}
	return nil
}

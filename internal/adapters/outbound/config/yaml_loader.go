// Package config loads the rule configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eventlint/eventlint/internal/domain"
)

const fileName = ".eventlint.yaml"

// YAMLLoader implements domain.RuleLoader by reading .eventlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads a rule file. With an empty path it looks for .eventlint.yaml in
// the working directory and falls back to the built-in default rules when the
// file does not exist. An explicit path that cannot be read is an error.
func (l *YAMLLoader) Load(path string) (domain.RuleConfig, error) {
	explicit := path != ""
	if !explicit {
		path = fileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return domain.DefaultRules(), nil
		}
		return domain.RuleConfig{}, fmt.Errorf("reading rules: %w", err)
	}

	var cfg domain.RuleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RuleConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Validate before use so typos surface at load time, not scan time.
	if err := cfg.Validate(); err != nil {
		return domain.RuleConfig{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

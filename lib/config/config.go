// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ease-build/ease/lib/manifest"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for ease.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Repositories configures where artifacts are resolved from.
	Repositories RepositoriesConfig `yaml:"repositories"`

	// Aggregate configures defaults for the aggregate goal.
	Aggregate AggregateConfig `yaml:"aggregate"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Repositories *RepositoriesConfig `yaml:"repositories,omitempty"`
	Aggregate    *AggregateConfig    `yaml:"aggregate,omitempty"`
}

// RepositoriesConfig configures repository locations.
type RepositoriesConfig struct {
	// Local is the local repository base directory where frozen
	// artifact lists and installed artifacts live.
	// Default: ~/.m2/repository
	Local string `yaml:"local"`

	// Thaw is the default thaw repository base directory, used by
	// the thaw goal when --thaw-repository is not given. Empty means
	// thaw from the local repository.
	Thaw string `yaml:"thaw"`
}

// AggregateConfig configures defaults for the aggregate goal. Flags
// on the command line take precedence over these.
type AggregateConfig struct {
	// Includes and Excludes are default coordinate patterns applied
	// to candidate dependencies.
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`

	// Merge selects the merge rule: "dependencies" or "lines".
	// Default: dependencies
	Merge string `yaml:"merge"`
}

// Default returns the default configuration. These defaults are the
// complete configuration for a stock setup; a config file is only
// needed to change them.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Environment: Development,
		Repositories: RepositoriesConfig{
			Local: filepath.Join(homeDir, ".m2", "repository"),
		},
		Aggregate: AggregateConfig{
			Merge: string(manifest.MergeDependencies),
		},
	}
}

// Load loads configuration from the EASE_CONFIG environment variable,
// falling back to the built-in defaults when it is not set.
func Load() (*Config, error) {
	configPath := os.Getenv("EASE_CONFIG")
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment
// variables do not override config values; the only expansion
// performed is ${VAR} and leading ~ in repository paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.Repositories != nil {
		if overrides.Repositories.Local != "" {
			c.Repositories.Local = overrides.Repositories.Local
		}
		if overrides.Repositories.Thaw != "" {
			c.Repositories.Thaw = overrides.Repositories.Thaw
		}
	}
	if overrides.Aggregate != nil {
		if overrides.Aggregate.Includes != nil {
			c.Aggregate.Includes = overrides.Aggregate.Includes
		}
		if overrides.Aggregate.Excludes != nil {
			c.Aggregate.Excludes = overrides.Aggregate.Excludes
		}
		if overrides.Aggregate.Merge != "" {
			c.Aggregate.Merge = overrides.Aggregate.Merge
		}
	}
}

// expandVariables expands ${VAR} patterns and a leading ~ in
// repository paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Repositories.Local = expandPath(c.Repositories.Local, vars)
	c.Repositories.Thaw = expandPath(c.Repositories.Thaw, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandPath(s string, vars map[string]string) string {
	if s == "~" || strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = home + s[1:]
		}
	}
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Repositories.Local == "" {
		errs = append(errs, fmt.Errorf("repositories.local is required"))
	}

	if _, err := manifest.ParsePolicy(c.Aggregate.Merge); err != nil {
		errs = append(errs, fmt.Errorf("aggregate.merge: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
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

// Config is the master configuration for the console.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// API configures the back-office REST API connection.
	API APIConfig `yaml:"api"`

	// UI configures console behavior.
	UI UIConfig `yaml:"ui"`

	// Per-environment overrides, applied after the base config.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains the fields that can be overridden per environment.
type Overrides struct {
	API *APIConfig `yaml:"api,omitempty"`
	UI  *UIConfig  `yaml:"ui,omitempty"`
}

// APIConfig configures the REST API connection.
type APIConfig struct {
	// BaseURL is the API root, including any path prefix.
	BaseURL string `yaml:"base_url"`

	// TokenFile is the path of the file holding the bearer token.
	// Keeping the token out of the config file keeps the config
	// shareable.
	TokenFile string `yaml:"token_file"`
}

// UIConfig configures console behavior.
type UIConfig struct {
	// PageSize is the default list page size. Default: 10. A page
	// size stored in the state file overrides it.
	PageSize int `yaml:"page_size"`

	// StateFile is where notifications and preferences persist.
	// Default: ${HOME}/.local/state/gestia/console.state
	StateFile string `yaml:"state_file"`

	// KeymapFile is an optional JSONC file overriding key bindings.
	KeymapFile string `yaml:"keymap_file"`

	// ExportDir is where binary exports are written.
	// Default: ${HOME}/Downloads
	ExportDir string `yaml:"export_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: Development,
		UI: UIConfig{
			PageSize:  10,
			StateFile: "${HOME}/.local/state/gestia/console.state",
			ExportDir: "${HOME}/Downloads",
		},
	}
}

// Load loads configuration from the GESTIA_CONFIG environment variable.
// There are no fallbacks: if GESTIA_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("GESTIA_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("GESTIA_CONFIG environment variable not set; " +
			"set it to the path of your gestia.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth; environment variables do not
// override values. The only expansion performed is ${HOME} and similar
// path variables for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: api.base_url is required")
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
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

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.TokenFile != "" {
			c.API.TokenFile = overrides.API.TokenFile
		}
	}
	if overrides.UI != nil {
		if overrides.UI.PageSize != 0 {
			c.UI.PageSize = overrides.UI.PageSize
		}
		if overrides.UI.StateFile != "" {
			c.UI.StateFile = overrides.UI.StateFile
		}
		if overrides.UI.KeymapFile != "" {
			c.UI.KeymapFile = overrides.UI.KeymapFile
		}
		if overrides.UI.ExportDir != "" {
			c.UI.ExportDir = overrides.UI.ExportDir
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.API.TokenFile = expandVars(c.API.TokenFile, vars)
	c.UI.StateFile = expandVars(c.UI.StateFile, vars)
	c.UI.KeymapFile = expandVars(c.UI.KeymapFile, vars)
	c.UI.ExportDir = expandVars(c.UI.ExportDir, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
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

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

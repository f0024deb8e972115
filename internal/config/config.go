// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// EnvRoot is the environment variable consulted when no root argument is given.
const EnvRoot = "DOCCHECK_ROOT"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; missing values fall back to defaults.
type Config struct {
	// Root is the documentation module root to check.
	Root string `json:"root,omitempty"`

	// ExcludedDirs are directory names skipped at any depth of the walk.
	ExcludedDirs []string `json:"excluded_dirs,omitempty" validate:"required,min=1,dive,required"`

	// PrimaryFile is the default-language lesson file name.
	PrimaryFile string `json:"primary_file,omitempty" validate:"required,endswith=.md"`

	// SecondaryFile is the alternate-language lesson file name.
	SecondaryFile string `json:"secondary_file,omitempty" validate:"required,endswith=.md,nefield=PrimaryFile"`
}

// Default returns the built-in configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Root: ".",
		ExcludedDirs: []string{
			"node_modules",
			".git",
			"validation",
			"solutions",
			"starter",
			".kiro",
			"assets",
		},
		PrimaryFile:   "README.md",
		SecondaryFile: "README_ID.md",
	}
}

// Load reads a JSON config file and merges it over the defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overlay Config
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg := Default()
	if overlay.Root != "" {
		cfg.Root = overlay.Root
	}
	if len(overlay.ExcludedDirs) > 0 {
		cfg.ExcludedDirs = overlay.ExcludedDirs
	}
	if overlay.PrimaryFile != "" {
		cfg.PrimaryFile = overlay.PrimaryFile
	}
	if overlay.SecondaryFile != "" {
		cfg.SecondaryFile = overlay.SecondaryFile
	}

	return cfg, nil
}

// Validate validates the Config using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ResolveRoot picks the documentation root: explicit argument first, then
// the DOCCHECK_ROOT environment variable, then the configured default.
func (c *Config) ResolveRoot(arg string) string {
	if arg != "" {
		return arg
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return env
	}
	return c.Root
}

// IsExcluded reports whether a directory name is on the exclusion list.
func (c *Config) IsExcluded(name string) bool {
	for _, ex := range c.ExcludedDirs {
		if name == ex {
			return true
		}
	}
	return false
}

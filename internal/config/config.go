// Package config loads the readability CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration.
type Config struct {
	// Dictionary is the path to a CMUdict-format pronunciation dictionary.
	// Empty means the library's built-in dictionary.
	Dictionary string `yaml:"dictionary"`

	// Database is the path to the SQLite score-history database.
	Database string `yaml:"database"`

	// LogLevel sets the zerolog level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CacheSize is the number of analysis reports kept in the LRU cache.
	// Zero disables caching.
	CacheSize int `yaml:"cache_size"`

	// Abbreviations extends the sentence splitter's non-terminating
	// abbreviation set.
	Abbreviations []string `yaml:"abbreviations"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Database: filepath.Join(baseDir(), "history.db"),
		LogLevel: "info",
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = filepath.Join(baseDir(), "config.yaml")
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Database == "" {
		cfg.Database = Default().Database
	}
	return cfg, nil
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".readability"
	}
	return filepath.Join(home, ".readability")
}

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the scripture reference tool.
type Config struct {
	Matcher Matcher `yaml:"matcher"`
	Suggest Suggest `yaml:"suggest"`
	Bounds  Bounds  `yaml:"bounds"`
	Store   Store   `yaml:"store"`
	Ingest  Ingest  `yaml:"ingest"`
	Logging Logging `yaml:"logging"`
}

// Matcher holds book matching configuration.
type Matcher struct {
	// ConfidentScore is the match score at or above which a book
	// resolution is accepted without a "did you mean" prompt.
	ConfidentScore int `yaml:"confident_score"`
	// FuzzyMinSimilarity is the Levenshtein similarity floor below
	// which fuzzy candidates are discarded.
	FuzzyMinSimilarity float64 `yaml:"fuzzy_min_similarity"`
}

// Suggest holds autocomplete configuration.
type Suggest struct {
	Limit    int `yaml:"limit"`
	TopBooks int `yaml:"top_books"`
}

// Bounds holds verse bounds cache configuration.
type Bounds struct {
	// FallbackVerses is assumed for a chapter whose verses cannot
	// be fetched.
	FallbackVerses int `yaml:"fallback_verses"`
	// Capacity caps the number of cached (book, version) entries.
	Capacity int `yaml:"capacity"`
}

// Store holds verse store configuration.
type Store struct {
	Driver         string `yaml:"driver"` // "bolt", "sqlite", "memory"
	Path           string `yaml:"path"`
	DefaultVersion string `yaml:"default_version"`
}

// Ingest holds verse file ingest configuration.
type Ingest struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// Logging holds logging configuration.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Matcher: Matcher{
			ConfidentScore:     800,
			FuzzyMinSimilarity: 0.3,
		},
		Suggest: Suggest{
			Limit:    8,
			TopBooks: 3,
		},
		Bounds: Bounds{
			FallbackVerses: 31,
			Capacity:       128,
		},
		Store: Store{
			Driver:         "bolt",
			Path:           "", // resolved against the working directory when empty
			DefaultVersion: "kjv",
		},
		Ingest: Ingest{
			Includes: []string{"**/*.txt", "**/*.tsv"},
			Excludes: []string{"**/node_modules/**", "**/.git/**"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// scriptureref.yaml, then .scriptureref/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "scriptureref.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".scriptureref", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StorePath returns the verse store path, falling back to the standard
// location under dir when the config leaves it empty.
func (c *Config) StorePath(dir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	name := "verses.db"
	if c.Store.Driver == "sqlite" {
		name = "verses.sqlite"
	}
	return filepath.Join(dir, ".scriptureref", name)
}

// EnsureConfigDir ensures the .scriptureref directory exists.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".scriptureref"), 0755)
}

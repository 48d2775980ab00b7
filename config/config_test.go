package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Matcher.ConfidentScore != 800 {
		t.Errorf("expected ConfidentScore=800, got %d", cfg.Matcher.ConfidentScore)
	}
	if cfg.Matcher.FuzzyMinSimilarity != 0.3 {
		t.Errorf("expected FuzzyMinSimilarity=0.3, got %f", cfg.Matcher.FuzzyMinSimilarity)
	}
	if cfg.Suggest.TopBooks != 3 {
		t.Errorf("expected TopBooks=3, got %d", cfg.Suggest.TopBooks)
	}
	if cfg.Bounds.FallbackVerses != 31 {
		t.Errorf("expected FallbackVerses=31, got %d", cfg.Bounds.FallbackVerses)
	}
	if cfg.Bounds.Capacity != 128 {
		t.Errorf("expected Capacity=128, got %d", cfg.Bounds.Capacity)
	}
	if cfg.Store.Driver != "bolt" {
		t.Errorf("expected Driver=bolt, got %s", cfg.Store.Driver)
	}
	if cfg.Store.DefaultVersion != "kjv" {
		t.Errorf("expected DefaultVersion=kjv, got %s", cfg.Store.DefaultVersion)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scriptureref.yaml")

	content := `
matcher:
  confident_score: 750
suggest:
  limit: 5
store:
  driver: sqlite
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Matcher.ConfidentScore != 750 {
		t.Errorf("expected ConfidentScore=750, got %d", cfg.Matcher.ConfidentScore)
	}
	if cfg.Suggest.Limit != 5 {
		t.Errorf("expected Limit=5, got %d", cfg.Suggest.Limit)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("expected Driver=sqlite, got %s", cfg.Store.Driver)
	}
	// Untouched sections keep their defaults.
	if cfg.Bounds.FallbackVerses != 31 {
		t.Errorf("expected FallbackVerses=31, got %d", cfg.Bounds.FallbackVerses)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scriptureref.yaml")

	content := `
suggest:
  limit: 12
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Suggest.Limit != 12 {
		t.Errorf("expected Limit=12, got %d", cfg.Suggest.Limit)
	}
}

func TestLoadFromDir_HiddenFallback(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureConfigDir(tmpDir); err != nil {
		t.Fatal(err)
	}

	content := `
logging:
  level: debug
`
	configPath := filepath.Join(tmpDir, ".scriptureref", "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scriptureref.yaml")

	cfg := DefaultConfig()
	cfg.Store.DefaultVersion = "web"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Store.DefaultVersion != "web" {
		t.Errorf("expected DefaultVersion=web, got %s", loaded.Store.DefaultVersion)
	}
}

func TestStorePath(t *testing.T) {
	cfg := DefaultConfig()

	path := cfg.StorePath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".scriptureref", "verses.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}

	cfg.Store.Driver = "sqlite"
	path = cfg.StorePath("/home/user/project")
	expected = filepath.Join("/home/user/project", ".scriptureref", "verses.sqlite")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}

	cfg.Store.Path = "/tmp/custom.db"
	if got := cfg.StorePath("/home/user/project"); got != "/tmp/custom.db" {
		t.Errorf("explicit path should win, got %s", got)
	}
}

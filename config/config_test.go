package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tokenizer.Model != "gpt2" {
		t.Errorf("expected Tokenizer.Model=gpt2, got %s", cfg.Tokenizer.Model)
	}
	if cfg.Tokenizer.Backend != "remote" {
		t.Errorf("expected Tokenizer.Backend=remote, got %s", cfg.Tokenizer.Backend)
	}
	if cfg.Ask.Model != "o1" {
		t.Errorf("expected Ask.Model=o1, got %s", cfg.Ask.Model)
	}
	if cfg.Ask.MaxCompletionTokens != 10000 {
		t.Errorf("expected MaxCompletionTokens=10000, got %d", cfg.Ask.MaxCompletionTokens)
	}
	if cfg.Congress.SummaryChars != 400 {
		t.Errorf("expected SummaryChars=400, got %d", cfg.Congress.SummaryChars)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache to be disabled by default")
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
	configPath := filepath.Join(tmpDir, "robotreadme.yaml")

	content := `
tokenizer:
  model: cl100k_base
  backend: offline
congress:
  limit: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Tokenizer.Model != "cl100k_base" {
		t.Errorf("expected model cl100k_base, got %s", cfg.Tokenizer.Model)
	}
	if cfg.Tokenizer.Backend != "offline" {
		t.Errorf("expected backend offline, got %s", cfg.Tokenizer.Backend)
	}
	if cfg.Congress.Limit != 5 {
		t.Errorf("expected Limit=5, got %d", cfg.Congress.Limit)
	}
	// untouched sections keep their defaults
	if cfg.Ask.Model != "o1" {
		t.Errorf("expected Ask.Model=o1, got %s", cfg.Ask.Model)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "robotreadme.yaml")
	if err := os.WriteFile(configPath, []byte("tokenizer: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".robotreadme"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".robotreadme", "config.yaml")

	content := `
render:
  max_description: 500
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Render.MaxDescription != 500 {
		t.Errorf("expected MaxDescription=500, got %d", cfg.Render.MaxDescription)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robotreadme.yaml")
	cfg := DefaultConfig()
	cfg.Tokenizer.Model = "whitespace"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Tokenizer.Model != "whitespace" {
		t.Errorf("expected whitespace, got %s", loaded.Tokenizer.Model)
	}
}

func TestCacheDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Path = "/tmp/counts.db"

	path, err := cfg.CacheDBPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/counts.db" {
		t.Errorf("expected explicit path, got %s", path)
	}
}

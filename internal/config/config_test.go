package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
vocabulary:
  source_path: ./words.txt
  index_path: /var/lib/vartani/index.gob
checker:
  max_candidates: 10
ranking:
  edit_penalty: 25
report:
  database_path: ./reports.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Vocabulary.SourcePath != filepath.Join(dir, "words.txt") {
		t.Errorf("SourcePath = %q, want it resolved against the config dir", cfg.Vocabulary.SourcePath)
	}
	if cfg.Vocabulary.IndexPath != "/var/lib/vartani/index.gob" {
		t.Errorf("IndexPath = %q, absolute paths must pass through", cfg.Vocabulary.IndexPath)
	}
	if cfg.Checker.MaxCandidates != 10 {
		t.Errorf("MaxCandidates = %d, want 10", cfg.Checker.MaxCandidates)
	}
	if cfg.Ranking.EditPenalty != 25 {
		t.Errorf("EditPenalty = %v, want 25", cfg.Ranking.EditPenalty)
	}
	if cfg.Report.DatabasePath != filepath.Join(dir, "reports.db") {
		t.Errorf("DatabasePath = %q, want it resolved against the config dir", cfg.Report.DatabasePath)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Checker.MaxCandidates != 5 {
		t.Errorf("default MaxCandidates = %d, want 5", cfg.Checker.MaxCandidates)
	}
	if cfg.Checker.SecondOrderLimit != 50 {
		t.Errorf("default SecondOrderLimit = %d, want 50", cfg.Checker.SecondOrderLimit)
	}
	if cfg.Ranking.FrequencyWeight != 100 || cfg.Ranking.EditPenalty != 10 || cfg.Ranking.LengthPenalty != 0.5 {
		t.Errorf("default ranking weights = %+v", cfg.Ranking)
	}
	if cfg.Report.DatabasePath != "" {
		t.Errorf("report DatabasePath = %q, want empty (persistence opt-in)", cfg.Report.DatabasePath)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded, want error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ] not yaml ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid YAML succeeded, want error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Vocabulary.SourcePath != "telugu_vocabulary.txt" {
		t.Errorf("default SourcePath = %q", cfg.Vocabulary.SourcePath)
	}
	if cfg.Vocabulary.IndexPath != "spellcheck_index.gob" {
		t.Errorf("default IndexPath = %q", cfg.Vocabulary.IndexPath)
	}
	if len(cfg.Corpus.Extensions) == 0 {
		t.Error("default corpus extensions empty")
	}
}

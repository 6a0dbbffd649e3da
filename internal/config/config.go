// Package config provides configuration loading and structs for vartani.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Checker    CheckerConfig    `yaml:"checker"`
	Ranking    RankingConfig    `yaml:"ranking"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Report     ReportConfig     `yaml:"report"`
}

// VocabularyConfig holds the word-list source and index snapshot locations.
type VocabularyConfig struct {
	SourcePath string `yaml:"source_path"`
	IndexPath  string `yaml:"index_path"`
}

// CheckerConfig holds candidate search limits.
type CheckerConfig struct {
	// MaxCandidates is the number of ranked candidates kept per misspelled word.
	MaxCandidates int `yaml:"max_candidates"`
	// SecondOrderLimit bounds the two-edit expansion when no one-edit
	// candidate exists; the search stops once this many distinct
	// in-vocabulary candidates are collected.
	SecondOrderLimit int `yaml:"second_order_limit"`
}

// RankingConfig holds the candidate scoring weights. These are tunable
// parameters, not laws; recalibrate them here rather than in code.
type RankingConfig struct {
	FrequencyWeight float64 `yaml:"frequency_weight"`
	EditPenalty     float64 `yaml:"edit_penalty"`
	LengthPenalty   float64 `yaml:"length_penalty"`
}

// CorpusConfig holds the offline corpus pipeline paths.
type CorpusConfig struct {
	// RawDir is the drop directory for raw corpus files (watched by
	// `corpus watch`).
	RawDir string `yaml:"raw_dir"`
	// CleanedDir receives cleaned Telugu text, one file per raw source.
	CleanedDir string `yaml:"cleaned_dir"`
	// Extensions filters which raw files are ingested.
	Extensions []string `yaml:"extensions"`
}

// ReportConfig holds check-report persistence settings.
type ReportConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Vocabulary.SourcePath = expandPath(cfg.Vocabulary.SourcePath, configDir)
	cfg.Vocabulary.IndexPath = expandPath(cfg.Vocabulary.IndexPath, configDir)
	cfg.Corpus.RawDir = expandPath(cfg.Corpus.RawDir, configDir)
	cfg.Corpus.CleanedDir = expandPath(cfg.Corpus.CleanedDir, configDir)
	if cfg.Report.DatabasePath != "" {
		cfg.Report.DatabasePath = expandPath(cfg.Report.DatabasePath, configDir)
	}

	return &cfg, nil
}

// Default returns a config with all defaults applied and no path expansion;
// used when no config file exists.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the working
// directory (the original tool ran against files in its own directory).
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

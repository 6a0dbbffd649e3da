package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Vocabulary.SourcePath == "" {
		cfg.Vocabulary.SourcePath = "telugu_vocabulary.txt"
	}
	if cfg.Vocabulary.IndexPath == "" {
		cfg.Vocabulary.IndexPath = "spellcheck_index.gob"
	}
	if cfg.Checker.MaxCandidates == 0 {
		cfg.Checker.MaxCandidates = 5
	}
	if cfg.Checker.SecondOrderLimit == 0 {
		cfg.Checker.SecondOrderLimit = 50
	}
	if cfg.Ranking.FrequencyWeight == 0 {
		cfg.Ranking.FrequencyWeight = 100
	}
	if cfg.Ranking.EditPenalty == 0 {
		cfg.Ranking.EditPenalty = 10
	}
	if cfg.Ranking.LengthPenalty == 0 {
		cfg.Ranking.LengthPenalty = 0.5
	}
	if cfg.Corpus.RawDir == "" {
		cfg.Corpus.RawDir = "corpus/raw"
	}
	if cfg.Corpus.CleanedDir == "" {
		cfg.Corpus.CleanedDir = "corpus/cleaned"
	}
	if cfg.Corpus.Extensions == nil {
		cfg.Corpus.Extensions = []string{".txt", ".pdf", ".docx", ".xlsx"}
	}
}

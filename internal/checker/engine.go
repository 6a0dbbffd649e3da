// Package checker implements the spell-checking engine: tokenization,
// candidate search over the edit neighborhood, ranking, per-document results,
// and session statistics.
package checker

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/telugutools/vartani/internal/config"
	"github.com/telugutools/vartani/internal/distance"
	"github.com/telugutools/vartani/internal/editops"
	"github.com/telugutools/vartani/internal/models"
	"github.com/telugutools/vartani/internal/ranker"
	"github.com/telugutools/vartani/internal/script"
	"github.com/telugutools/vartani/internal/vocab"
)

// Engine checks documents against a vocabulary index. It keeps checked
// documents and per-word candidate lists in memory for the session; the
// vocabulary itself is immutable once loaded.
type Engine struct {
	index  *vocab.Index
	ranker *ranker.Ranker
	cfg    *config.Config
	logger *zap.Logger

	mu         sync.RWMutex
	candidates map[string][]*models.Candidate
	documents  map[string]*models.Document
	stats      models.Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine over an already built index.
func New(index *vocab.Index, cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		index:      index,
		ranker:     ranker.New(index, weightsFromConfig(cfg)),
		cfg:        cfg,
		logger:     zap.NewNop(),
		candidates: make(map[string][]*models.Candidate),
		documents:  make(map[string]*models.Document),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BuildOrLoad restores the vocabulary index from its persisted snapshot, or
// rebuilds it from the word-list source and persists a fresh snapshot when
// the restore fails. A failed persist is logged but does not fail the load.
func BuildOrLoad(cfg *config.Config, opts ...Option) (*Engine, error) {
	e := New(nil, cfg, opts...)

	index, meta, err := vocab.Restore(cfg.Vocabulary.IndexPath)
	if err == nil {
		e.logger.Info("vocabulary index restored",
			zap.String("path", cfg.Vocabulary.IndexPath),
			zap.Int("words", index.Len()),
			zap.Time("created", meta.CreatedAt))
	} else {
		e.logger.Warn("index snapshot not usable, rebuilding from source",
			zap.String("path", cfg.Vocabulary.IndexPath),
			zap.Error(err))
		index = vocab.Build(cfg.Vocabulary.SourcePath, e.logger)
		if index.Len() > 0 {
			if perr := vocab.Persist(index, cfg.Vocabulary.IndexPath); perr != nil {
				e.logger.Warn("failed to persist index snapshot", zap.Error(perr))
			}
		}
	}

	e.index = index
	e.ranker = ranker.New(index, weightsFromConfig(cfg))
	return e, nil
}

// RebuildIndex builds a fresh index from the word-list source and persists
// it, ignoring any existing snapshot.
func RebuildIndex(cfg *config.Config, logger *zap.Logger) (*vocab.Index, error) {
	index := vocab.Build(cfg.Vocabulary.SourcePath, logger)
	if index.Len() == 0 {
		return nil, fmt.Errorf("vocabulary source empty or missing: %s", cfg.Vocabulary.SourcePath)
	}
	if err := vocab.Persist(index, cfg.Vocabulary.IndexPath); err != nil {
		return nil, err
	}
	return index, nil
}

func weightsFromConfig(cfg *config.Config) ranker.Weights {
	return ranker.Weights{
		Frequency: cfg.Ranking.FrequencyWeight,
		Edit:      cfg.Ranking.EditPenalty,
		Length:    cfg.Ranking.LengthPenalty,
	}
}

// Check tokenizes text, classifies every token against the vocabulary, and
// ranks candidates for the misspelled ones. The document is stored under id,
// replacing any previous check of the same id.
func (e *Engine) Check(id, text string) []*models.TokenResult {
	tokens := script.Tokenize(text)
	results := make([]*models.TokenResult, 0, len(tokens))

	e.mu.Lock()
	defer e.mu.Unlock()

	misspelled := 0
	for _, word := range tokens {
		e.stats.WordsChecked++
		if e.index.Contains(word) {
			e.stats.CorrectWords++
			results = append(results, &models.TokenResult{Word: word, IsCorrect: true})
			continue
		}

		e.stats.MisspelledWords++
		misspelled++
		cands := e.candidatesLocked(word)
		if len(cands) > 0 {
			e.stats.CandidatesFound++
			e.countOps(cands[0])
		} else {
			e.stats.CandidatesNotFound++
		}
		results = append(results, &models.TokenResult{Word: word, Candidates: cands})
	}

	e.documents[id] = &models.Document{
		ID:              id,
		Text:            text,
		CreatedAt:       time.Now(),
		WordCount:       len(tokens),
		MisspelledCount: misspelled,
		Results:         results,
	}
	e.stats.DocumentsProcessed++

	e.logger.Debug("document checked",
		zap.String("id", id),
		zap.Int("words", len(tokens)),
		zap.Int("misspelled", misspelled))
	return results
}

// countOps attributes the top candidate's edit operations to the session
// counters.
func (e *Engine) countOps(top *models.Candidate) {
	for _, op := range top.Operations {
		switch op {
		case distance.Insertion:
			e.stats.InsertionOps++
		case distance.Deletion:
			e.stats.DeletionOps++
		case distance.Substitution:
			e.stats.SubstitutionOps++
		case distance.Transposition:
			e.stats.TranspositionOps++
		}
	}
}

// Candidates returns up to maxK ranked corrections for word. A vocabulary
// member gets an empty list. maxK <= 0 means the configured maximum.
func (e *Engine) Candidates(word string, maxK int) []*models.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index.Contains(word) {
		return nil
	}
	cands := e.candidatesLocked(word)
	if maxK > 0 && maxK < len(cands) {
		return cands[:maxK]
	}
	return cands
}

// candidatesLocked returns the cached ranked candidate list for word,
// computing and caching it on first use. Caller holds e.mu.
func (e *Engine) candidatesLocked(word string) []*models.Candidate {
	if cached, ok := e.candidates[word]; ok {
		return cached
	}
	ranked := e.ranker.Rank(word, e.collectCandidates(word))
	if max := e.cfg.Checker.MaxCandidates; max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	e.candidates[word] = ranked
	return ranked
}

// collectCandidates gathers distinct in-vocabulary words within one edit of
// word, falling back to the bounded two-edit expansion when the one-edit
// neighborhood is empty.
func (e *Engine) collectCandidates(word string) []string {
	firstOrder := editops.Generate(word)
	seen := make(map[string]bool)
	var found []string
	for _, list := range firstOrder.Lists() {
		for _, edit := range list {
			if !seen[edit] && e.index.Contains(edit) {
				seen[edit] = true
				found = append(found, edit)
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	limit := e.cfg.Checker.SecondOrderLimit
	for _, list := range firstOrder.Lists() {
		for _, edit := range list {
			for _, secondList := range editops.Generate(edit).Lists() {
				for _, second := range secondList {
					if seen[second] || !e.index.Contains(second) {
						continue
					}
					seen[second] = true
					found = append(found, second)
					if limit > 0 && len(found) >= limit {
						return found
					}
				}
			}
		}
	}
	return found
}

// Correct returns the document text with every misspelled word replaced by
// its top candidate. Only the first remaining occurrence of each misspelled
// word is substituted; words without candidates are left as they are.
func (e *Engine) Correct(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc, ok := e.documents[id]
	if !ok {
		return "", fmt.Errorf("document not found: %s", id)
	}

	corrected := doc.Text
	for _, r := range doc.Results {
		if r.IsCorrect || len(r.Candidates) == 0 {
			continue
		}
		corrected = strings.Replace(corrected, r.Word, r.Candidates[0].Word, 1)
		e.stats.TotalCorrections++
	}
	return corrected, nil
}

// Summary returns the summary record for a checked document.
func (e *Engine) Summary(id string) (*models.DocumentSummary, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	doc, ok := e.documents[id]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", id)
	}
	return summarize(doc), nil
}

func summarize(doc *models.Document) *models.DocumentSummary {
	accuracy := 0.0
	if doc.WordCount > 0 {
		accuracy = float64(doc.WordCount-doc.MisspelledCount) / float64(doc.WordCount) * 100
	}
	return &models.DocumentSummary{
		DocumentID:      doc.ID,
		CreatedAt:       doc.CreatedAt,
		WordCount:       doc.WordCount,
		MisspelledCount: doc.MisspelledCount,
		Accuracy:        accuracy,
	}
}

// Export assembles the full check report for a document, including the
// corrected text.
func (e *Engine) Export(id string) (*models.CheckReport, error) {
	corrected, err := e.Correct(id)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	doc := e.documents[id]
	return &models.CheckReport{
		DocumentID:    doc.ID,
		CreatedAt:     doc.CreatedAt,
		OriginalText:  doc.Text,
		CorrectedText: corrected,
		Summary:       summarize(doc),
		Results:       doc.Results,
	}, nil
}

// Reset clears session state: documents, the candidate cache, and all
// statistics. The vocabulary index is untouched.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.documents = make(map[string]*models.Document)
	e.candidates = make(map[string][]*models.Candidate)
	e.stats = models.Stats{}
	e.logger.Info("engine session state cleared")
}

// Stats returns a copy of the session counters.
func (e *Engine) Stats() models.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

// Metrics derives accuracy metrics from the session counters. Returns nil
// when no words have been checked yet.
func (e *Engine) Metrics() *models.Metrics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.stats
	if s.WordsChecked == 0 {
		return nil
	}
	m := &models.Metrics{
		TotalWordsChecked:  s.WordsChecked,
		CorrectWords:       s.CorrectWords,
		MisspelledDetected: s.MisspelledWords,
		CandidatesProvided: s.CandidatesFound,
		CandidatesMissing:  s.CandidatesNotFound,
		VocabularySize:     e.index.Len(),
	}
	m.DetectionAccuracy = float64(s.CorrectWords+s.CandidatesFound) / float64(s.WordsChecked) * 100
	if s.MisspelledWords > 0 {
		m.CorrectionRate = float64(s.CandidatesFound) / float64(s.MisspelledWords) * 100
	}
	return m
}

// Index returns the engine's vocabulary index.
func (e *Engine) Index() *vocab.Index { return e.index }

// DocumentCount returns the number of documents checked this session.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.documents)
}

// CacheSize returns the number of cached candidate lists.
func (e *Engine) CacheSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.candidates)
}

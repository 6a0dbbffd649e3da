// Package models defines core data structures for candidates, token results,
// checked documents, and engine statistics.
package models

import "time"

// Candidate is one ranked correction for a misspelled word.
type Candidate struct {
	Word            string         `json:"word"`
	Frequency       int            `json:"frequency"`
	EditDistance    int            `json:"edit_distance"`
	Operations      []string       `json:"operations"`
	OperationCounts map[string]int `json:"operation_counts"`
	SemanticScore   float64        `json:"semantic_score"`
	CombinedScore   float64        `json:"combined_score"`
}

// TokenResult is the per-token outcome of a document check.
type TokenResult struct {
	Word       string       `json:"word"`
	IsCorrect  bool         `json:"is_correct"`
	Candidates []*Candidate `json:"candidates"`
}

// Document is a checked document held in session memory. It is created by a
// check and only ever replaced wholesale by a re-check of the same ID.
type Document struct {
	ID              string
	Text            string
	CreatedAt       time.Time
	WordCount       int
	MisspelledCount int
	Results         []*TokenResult
}

// DocumentSummary summarizes a checked document. Accuracy is the percentage
// of tokens found in the vocabulary.
type DocumentSummary struct {
	DocumentID      string    `json:"document_id"`
	CreatedAt       time.Time `json:"timestamp"`
	WordCount       int       `json:"word_count"`
	MisspelledCount int       `json:"misspelled_count"`
	Accuracy        float64   `json:"accuracy"`
}

// CheckReport is the full exportable record of a checked document.
type CheckReport struct {
	DocumentID    string           `json:"document_id"`
	CreatedAt     time.Time        `json:"timestamp"`
	OriginalText  string           `json:"original_text"`
	CorrectedText string           `json:"corrected_text"`
	Summary       *DocumentSummary `json:"statistics"`
	Results       []*TokenResult   `json:"detailed_results"`
}

// Stats holds per-engine session counters. They only ever grow, except
// through an explicit reset.
type Stats struct {
	DocumentsProcessed int `json:"documents_processed"`
	WordsChecked       int `json:"words_checked"`
	CorrectWords       int `json:"correct_words"`
	MisspelledWords    int `json:"misspelled_words"`
	CandidatesFound    int `json:"candidates_found"`
	CandidatesNotFound int `json:"candidates_not_found"`
	TotalCorrections   int `json:"total_corrections"`
	InsertionOps       int `json:"insertion_ops"`
	DeletionOps        int `json:"deletion_ops"`
	SubstitutionOps    int `json:"substitution_ops"`
	TranspositionOps   int `json:"transposition_ops"`
}

// Metrics are accuracy-style counters derived from Stats.
type Metrics struct {
	TotalWordsChecked  int     `json:"total_words_checked"`
	CorrectWords       int     `json:"correct_words"`
	MisspelledDetected int     `json:"misspelled_detected"`
	CandidatesProvided int     `json:"candidates_provided"`
	CandidatesMissing  int     `json:"candidates_missing"`
	DetectionAccuracy  float64 `json:"detection_accuracy"`
	CorrectionRate     float64 `json:"correction_rate"`
	VocabularySize     int     `json:"vocabulary_size"`
}

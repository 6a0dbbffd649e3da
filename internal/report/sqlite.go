// Package report persists check reports to SQLite so corrections survive the
// session.
package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/telugutools/vartani/internal/models"
)

// Store persists check reports.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates a SQLite database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS check_reports (
		id TEXT PRIMARY KEY,
		document_id TEXT NOT NULL,
		original_text TEXT NOT NULL,
		corrected_text TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		misspelled_count INTEGER NOT NULL,
		accuracy REAL NOT NULL,
		results TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_document_id ON check_reports(document_id);
	CREATE INDEX IF NOT EXISTS idx_reports_created_at ON check_reports(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Save inserts a report and returns the generated row id.
func (s *Store) Save(ctx context.Context, report *models.CheckReport) (string, error) {
	resultsJSON, err := json.Marshal(report.Results)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO check_reports
		 (id, document_id, original_text, corrected_text, word_count, misspelled_count, accuracy, results, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, report.DocumentID, report.OriginalText, report.CorrectedText,
		report.Summary.WordCount, report.Summary.MisspelledCount, report.Summary.Accuracy,
		string(resultsJSON), report.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}
	return id, nil
}

// Get returns a saved report by row id.
func (s *Store) Get(ctx context.Context, id string) (*models.CheckReport, error) {
	var (
		report      models.CheckReport
		summary     models.DocumentSummary
		resultsJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT document_id, original_text, corrected_text, word_count, misspelled_count, accuracy, results, created_at
		 FROM check_reports WHERE id = ?`, id,
	).Scan(&report.DocumentID, &report.OriginalText, &report.CorrectedText,
		&summary.WordCount, &summary.MisspelledCount, &summary.Accuracy,
		&resultsJSON, &report.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(resultsJSON), &report.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	summary.DocumentID = report.DocumentID
	summary.CreatedAt = report.CreatedAt
	report.Summary = &summary
	return &report, nil
}

// List returns the summaries of the most recent reports, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*models.DocumentSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT document_id, word_count, misspelled_count, accuracy, created_at
		 FROM check_reports ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.DocumentSummary
	for rows.Next() {
		var s models.DocumentSummary
		if err := rows.Scan(&s.DocumentID, &s.WordCount, &s.MisspelledCount, &s.Accuracy, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}

// Count returns the number of saved reports.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM check_reports`).Scan(&n)
	return n, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

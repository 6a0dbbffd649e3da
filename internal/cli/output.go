// Package cli provides output formatting for the vartani CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/telugutools/vartani/internal/models"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat validates an -output flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// WriteCheckReport writes a full check report to w in the given format.
func WriteCheckReport(w io.Writer, report *models.CheckReport, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(report)
	}
	writeCheckReportText(w, report)
	return nil
}

func writeCheckReportText(w io.Writer, report *models.CheckReport) {
	s := report.Summary
	fmt.Fprintf(w, "\nDocument %s: %d words, %d misspelled (%.1f%% accuracy)\n\n",
		s.DocumentID, s.WordCount, s.MisspelledCount, s.Accuracy)

	for _, r := range report.Results {
		if r.IsCorrect {
			continue
		}
		if len(r.Candidates) == 0 {
			fmt.Fprintf(w, "  %s: no suggestions\n", r.Word)
			continue
		}
		fmt.Fprintf(w, "  %s:\n", r.Word)
		for i, c := range r.Candidates {
			fmt.Fprintf(w, "    %d. %s (distance %d, freq %d, %s)\n",
				i+1, c.Word, c.EditDistance, c.Frequency, summarizeOps(c.OperationCounts))
		}
	}
	if s.MisspelledCount > 0 {
		fmt.Fprintf(w, "\nCorrected: %s\n", report.CorrectedText)
	}
}

// summarizeOps renders non-zero operation counts like "1 substitution, 1 insertion".
func summarizeOps(counts map[string]int) string {
	order := []string{"SUBSTITUTION", "DELETION", "INSERTION", "TRANSPOSITION"}
	var parts []string
	for _, op := range order {
		if n := counts[op]; n > 0 {
			label := strings.ToLower(op)
			if n > 1 {
				label += "s"
			}
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	if len(parts) == 0 {
		return "exact"
	}
	return strings.Join(parts, ", ")
}

// WriteCandidates writes ranked candidates for one word.
func WriteCandidates(w io.Writer, word string, candidates []*models.Candidate, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(map[string]any{"word": word, "candidates": candidates})
	}

	if len(candidates) == 0 {
		fmt.Fprintf(w, "No suggestions for %s\n", word)
		return nil
	}
	fmt.Fprintf(w, "Suggestions for %s:\n", word)
	for i, c := range candidates {
		fmt.Fprintf(w, "  %d. %s (score %.2f, distance %d, freq %d)\n",
			i+1, c.Word, c.CombinedScore, c.EditDistance, c.Frequency)
	}
	return nil
}

// WriteMetrics writes engine metrics.
func WriteMetrics(w io.Writer, m *models.Metrics, format OutputFormat) error {
	if m == nil {
		fmt.Fprintln(w, "No words checked yet")
		return nil
	}
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}
	fmt.Fprintf(w, "Words checked:      %d\n", m.TotalWordsChecked)
	fmt.Fprintf(w, "Correct:            %d\n", m.CorrectWords)
	fmt.Fprintf(w, "Misspelled:         %d\n", m.MisspelledDetected)
	fmt.Fprintf(w, "With candidates:    %d\n", m.CandidatesProvided)
	fmt.Fprintf(w, "Without candidates: %d\n", m.CandidatesMissing)
	fmt.Fprintf(w, "Detection accuracy: %.1f%%\n", m.DetectionAccuracy)
	fmt.Fprintf(w, "Correction rate:    %.1f%%\n", m.CorrectionRate)
	fmt.Fprintf(w, "Vocabulary size:    %d\n", m.VocabularySize)
	return nil
}

// Truncate truncates s to maxLen bytes and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/telugutools/vartani/internal/models"
)

func TestWriteCheckReportText(t *testing.T) {
	var buf bytes.Buffer
	report := &models.CheckReport{
		DocumentID:    "doc1",
		CorrectedText: "తెలుగు భాష",
		Summary: &models.DocumentSummary{
			DocumentID: "doc1", WordCount: 2, MisspelledCount: 1, Accuracy: 50,
		},
		Results: []*models.TokenResult{
			{Word: "భాష", IsCorrect: true},
			{Word: "తెులగు", Candidates: []*models.Candidate{{
				Word:            "తెలుగు",
				Frequency:       5,
				EditDistance:    1,
				OperationCounts: map[string]int{"TRANSPOSITION": 1},
			}}},
		},
	}
	if err := WriteCheckReport(&buf, report, OutputText); err != nil {
		t.Fatalf("WriteCheckReport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "2 words, 1 misspelled") {
		t.Errorf("missing summary line: %q", out)
	}
	if !strings.Contains(out, "1 transposition") {
		t.Errorf("missing operation summary: %q", out)
	}
	if !strings.Contains(out, "Corrected: తెలుగు భాష") {
		t.Errorf("missing corrected text: %q", out)
	}
	if strings.Contains(out, "భాష:") {
		t.Errorf("correct word should not be listed: %q", out)
	}
}

func TestWriteCheckReportJSON(t *testing.T) {
	var buf bytes.Buffer
	report := &models.CheckReport{
		DocumentID: "doc1",
		Summary:    &models.DocumentSummary{DocumentID: "doc1"},
	}
	if err := WriteCheckReport(&buf, report, OutputJSON); err != nil {
		t.Fatalf("WriteCheckReport: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["document_id"] != "doc1" {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["statistics"]; !ok {
		t.Errorf("missing statistics key: %v", decoded)
	}
}

func TestWriteCandidates(t *testing.T) {
	var buf bytes.Buffer
	cands := []*models.Candidate{
		{Word: "తెలుగు", CombinedScore: 88.5, EditDistance: 1, Frequency: 5},
	}
	if err := WriteCandidates(&buf, "తెులగు", cands, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1. తెలుగు") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteCandidates(&buf, "తెులగు", nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No suggestions") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestWriteMetrics(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMetrics(&buf, nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No words checked") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	m := &models.Metrics{TotalWordsChecked: 3, DetectionAccuracy: 100, VocabularySize: 2}
	if err := WriteMetrics(&buf, m, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Words checked:      3") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != OutputText {
		t.Errorf("empty format = %q, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != OutputJSON {
		t.Errorf("json format = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hi", 0); got != "hi" {
		t.Errorf("Truncate with 0 = %q", got)
	}
}

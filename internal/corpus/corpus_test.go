package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanStripsMarkupAndNoise(t *testing.T) {
	raw := "== శీర్షిక ==\n" +
		"[[తెలుగు భాష]] ఒక {{మూస|విషయం}} ద్రావిడ భాష అని hello చెబుతారు 123.\n" +
		"<b>హిंदी नहीं</b> తెలుగు లిపి చాలా పురాతనమైనది అని అంటారు.\n"
	got := Clean(raw)

	if strings.ContainsAny(got, "abcdefghijklmnopqrstuvwxyz0123456789<>[]{}=") {
		t.Errorf("cleaned text still contains noise: %q", got)
	}
	if !strings.Contains(got, "తెలుగు భాష") {
		t.Errorf("cleaned text lost wiki link content: %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("cleaned text should end with a full stop: %q", got)
	}
}

func TestCleanDropsShortSentences(t *testing.T) {
	raw := "తెలుగు భాష. తెలుగు భాష చాలా మధురమైన భాష."
	got := Clean(raw)
	if strings.Contains(got, "తెలుగు భాష.\n") {
		t.Errorf("two-word sentence survived: %q", got)
	}
	if !strings.Contains(got, "మధురమైన") {
		t.Errorf("long sentence dropped: %q", got)
	}
}

func TestCleanRemovesSingleLetters(t *testing.T) {
	got := Clean("క తెలుగు భాష మధురము అందము.")
	if strings.Contains(got, "క ") || strings.HasPrefix(got, "క") {
		t.Errorf("standalone letter survived: %q", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean("hello world 123"); got != "" {
		t.Errorf("Clean of non-Telugu input = %q, want empty", got)
	}
}

func TestCleanFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.txt")
	out := filepath.Join(dir, "clean.txt")
	if err := os.WriteFile(in, []byte("తెలుగు భాష చాలా మధురమైనది hello."), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CleanFile(in, out, nil); err != nil {
		t.Fatalf("CleanFile: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "మధురమైనది") {
		t.Errorf("output = %q", data)
	}
}

func TestCleanFileMissingInput(t *testing.T) {
	if err := CleanFile(filepath.Join(t.TempDir(), "absent.txt"), "out.txt", nil); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestMergeLines(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("భాష\nతెలుగు\n\n"), 0o644)
	os.WriteFile(b, []byte("తెలుగు\nలిపి\n"), 0o644)

	merged, err := MergeLines([]string{a, b})
	if err != nil {
		t.Fatalf("MergeLines: %v", err)
	}
	want := []string{"తెలుగు", "భాష", "లిపి"}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("merged[%d] = %q, want %q", i, merged[i], want[i])
		}
	}
}

func TestMergeTokenizedDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	os.WriteFile(a, []byte(`[["తెలుగు","భాష"],["లిపి","పురాతనం"]]`), 0o644)
	os.WriteFile(b, []byte(`[["తెలుగు","భాష"],["కొత్త","వాక్యం"]]`), 0o644)

	merged, err := MergeTokenized([]string{a, b})
	if err != nil {
		t.Fatalf("MergeTokenized: %v", err)
	}
	if len(merged) != 3 {
		t.Fatalf("got %d sequences, want 3: %v", len(merged), merged)
	}
	if merged[0][0] != "తెలుగు" || merged[2][0] != "కొత్త" {
		t.Errorf("merge order broken: %v", merged)
	}
}

func TestSplitAndTokenize(t *testing.T) {
	sentences := SplitSentences("తెలుగు భాష మధురము.\nలిపి చాలా పురాతనం. ")
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sentences))
	}

	tokenized := TokenizeSentences(sentences)
	if len(tokenized[0]) != 3 || len(tokenized[1]) != 3 {
		t.Errorf("tokenized = %v", tokenized)
	}

	vocab := Vocabulary(tokenized)
	if len(vocab) != 6 {
		t.Errorf("vocabulary = %v, want 6 distinct words", vocab)
	}

	words := WordList(tokenized)
	if len(words) != 6 {
		t.Errorf("word list = %v, want 6 occurrences", words)
	}
}

func TestWordListKeepsRepeats(t *testing.T) {
	tokenized := [][]string{{"తెలుగు", "భాష"}, {"తెలుగు", "లిపి"}}
	words := WordList(tokenized)
	if len(words) != 4 {
		t.Errorf("word list length = %d, want 4", len(words))
	}
	if len(Vocabulary(tokenized)) != 3 {
		t.Errorf("vocabulary should deduplicate to 3 words")
	}
}

func TestWriteLinesAndTokenizedJSON(t *testing.T) {
	dir := t.TempDir()
	lines := filepath.Join(dir, "lines.txt")
	if err := WriteLines(lines, []string{"తెలుగు", "భాష"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	data, _ := os.ReadFile(lines)
	if string(data) != "తెలుగు\nభాష\n" {
		t.Errorf("lines file = %q", data)
	}

	jsonPath := filepath.Join(dir, "tok.json")
	if err := WriteTokenizedJSON(jsonPath, [][]string{{"తెలుగు"}}); err != nil {
		t.Fatalf("WriteTokenizedJSON: %v", err)
	}
	merged, err := MergeTokenized([]string{jsonPath})
	if err != nil || len(merged) != 1 || merged[0][0] != "తెలుగు" {
		t.Errorf("round trip = %v, %v", merged, err)
	}
}

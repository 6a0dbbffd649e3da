// Package corpus implements the offline corpus pipeline: cleaning raw text
// dumps down to Telugu sentences, merging shards, and deriving sentence,
// token, and vocabulary files for index building.
package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/telugutools/vartani/internal/script"
)

var (
	headerPattern     = regexp.MustCompile(`(?s)---.*?---|==.*?==`)
	wikiLinkPattern   = regexp.MustCompile(`\[\[(.*?)\]\]`)
	wikiTmplPattern   = regexp.MustCompile(`\{\{(.*?)\}\}`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	latinPattern      = regexp.MustCompile(`[a-zA-Z]+`)
	devanagariPattern = regexp.MustCompile(`[\x{0900}-\x{097F}]+`)
	numericPattern    = regexp.MustCompile(`[0-9+\-*/=()]+`)
	nonTeluguPattern  = regexp.MustCompile(`[^\x{0C00}-\x{0C7F}\s.,]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	multiStopPattern  = regexp.MustCompile(`\.{2,}`)

	// Fragments like "కె.", ",." or a bare "." that survive the bulk pass.
	junkLinePattern = regexp.MustCompile(`^\s*([\x{0C00}-\x{0C7F}]{1,2}\s*[,.]?\s*|\s*,\s*\.\s*|\s*\.\s*)$`)
)

// Clean strips wiki markup, HTML, non-Telugu script, and junk fragments from
// raw text and returns Telugu sentences joined by ".\n". Sentences with two
// or fewer words and standalone single letters are dropped. Returns "" when
// nothing survives.
func Clean(text string) string {
	text = headerPattern.ReplaceAllString(text, "")
	text = wikiLinkPattern.ReplaceAllString(text, "$1")
	text = wikiTmplPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = latinPattern.ReplaceAllString(text, "")
	text = devanagariPattern.ReplaceAllString(text, "")
	text = numericPattern.ReplaceAllString(text, "")
	text = nonTeluguPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))

	var kept []string
	for _, line := range strings.Split(text, ".") {
		line = strings.TrimSpace(line)
		if line == "" || junkLinePattern.MatchString(line) {
			continue
		}
		words := script.Tokenize(line)
		if len(words) <= 2 {
			continue
		}
		multi := words[:0]
		for _, w := range words {
			if len([]rune(w)) > 1 {
				multi = append(multi, w)
			}
		}
		if len(multi) > 0 {
			kept = append(kept, strings.Join(multi, " "))
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return multiStopPattern.ReplaceAllString(strings.Join(kept, ".\n")+".", ".")
}

// CleanFile reads a raw text file, cleans it, and writes the result.
func CleanFile(inPath, outPath string, logger *zap.Logger) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read raw corpus file: %w", err)
	}

	cleaned := Clean(string(data))
	if err := os.WriteFile(outPath, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned corpus file: %w", err)
	}

	if logger != nil {
		logger.Info("corpus file cleaned",
			zap.String("input", inPath),
			zap.String("output", outPath),
			zap.Int("raw_bytes", len(data)),
			zap.Int("cleaned_bytes", len(cleaned)))
	}
	return nil
}

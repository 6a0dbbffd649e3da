package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/telugutools/vartani/internal/script"
)

// SplitSentences splits cleaned text on full stops and trims the parts,
// dropping empties.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// TokenizeSentences tokenizes each sentence into Telugu words.
func TokenizeSentences(sentences []string) [][]string {
	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = script.Tokenize(s)
	}
	return tokenized
}

// Vocabulary returns the sorted distinct words of the tokenized sentences.
func Vocabulary(tokenized [][]string) []string {
	seen := make(map[string]bool)
	for _, sentence := range tokenized {
		for _, word := range sentence {
			seen[word] = true
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordList flattens tokenized sentences into one word per line with repeats,
// so index building sees real occurrence frequencies.
func WordList(tokenized [][]string) []string {
	var words []string
	for _, sentence := range tokenized {
		words = append(words, sentence...)
	}
	return words
}

// WriteTokenizedJSON writes tokenized sentences as a JSON array of arrays.
func WriteTokenizedJSON(path string, tokenized [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tokenized output: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tokenized); err != nil {
		return fmt.Errorf("failed to write tokenized output: %w", err)
	}
	return nil
}

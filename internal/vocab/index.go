// Package vocab provides the vocabulary index: the authoritative set of known
// words with per-word occurrence frequency, built from a word list or restored
// from a persisted snapshot. An Index is immutable once built and safe to
// share across concurrent readers.
package vocab

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Index maps known words to occurrence frequency. Every word with a frequency
// entry is a member and vice versa.
type Index struct {
	freq    map[string]int
	total   int
	maxFreq int
	source  string
}

func newIndex(source string) *Index {
	return &Index{freq: make(map[string]int), source: source}
}

// Build reads a word list (one word per line; repeats increase frequency) and
// returns the index. A missing source is non-fatal: the index is empty and a
// warning is logged, so every checked token will be reported misspelled with
// no candidates.
func Build(path string, logger *zap.Logger) *Index {
	idx := newIndex(path)
	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Warn("vocabulary source not readable, starting with empty index",
				zap.String("path", path), zap.Error(err))
		}
		return idx
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		word := strings.TrimSpace(s.Text())
		if word == "" {
			continue
		}
		idx.add(word, 1)
	}
	if err := s.Err(); err != nil && logger != nil {
		logger.Warn("vocabulary read stopped early",
			zap.String("path", path), zap.Error(err))
	}
	if logger != nil {
		logger.Info("vocabulary index built",
			zap.String("path", path),
			zap.Int("unique_words", idx.Len()),
			zap.Int("total_occurrences", idx.TotalOccurrences()))
	}
	return idx
}

// FromCounts builds an index directly from word frequencies. Used when
// restoring a snapshot and in tests.
func FromCounts(counts map[string]int, source string) *Index {
	idx := newIndex(source)
	for word, n := range counts {
		if word == "" || n <= 0 {
			continue
		}
		idx.add(word, n)
	}
	return idx
}

func (idx *Index) add(word string, n int) {
	idx.freq[word] += n
	idx.total += n
	if idx.freq[word] > idx.maxFreq {
		idx.maxFreq = idx.freq[word]
	}
}

// Contains reports whether word is in the vocabulary.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.freq[word]
	return ok
}

// Frequency returns the occurrence count of word, or 0 when absent.
func (idx *Index) Frequency(word string) int {
	return idx.freq[word]
}

// Len returns the number of unique words.
func (idx *Index) Len() int { return len(idx.freq) }

// TotalOccurrences returns the sum of all frequencies.
func (idx *Index) TotalOccurrences() int { return idx.total }

// MaxFrequency returns the highest frequency in the index, 0 when empty.
func (idx *Index) MaxFrequency() int { return idx.maxFreq }

// Source returns the identifier of the word list the index was built from.
func (idx *Index) Source() string { return idx.source }

// Counts returns a copy of the frequency map.
func (idx *Index) Counts() map[string]int {
	out := make(map[string]int, len(idx.freq))
	for w, n := range idx.freq {
		out[w] = n
	}
	return out
}

package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// MergeLines reads line-oriented files (sentences or vocabulary shards),
// drops blanks and duplicates, and returns the sorted unique lines.
func MergeLines(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open merge input: %w", err)
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				seen[line] = true
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read merge input %s: %w", path, err)
		}
	}

	merged := make([]string, 0, len(seen))
	for line := range seen {
		merged = append(merged, line)
	}
	sort.Strings(merged)
	return merged, nil
}

// MergeTokenized merges tokenized-sentence JSON shards, keeping the first
// occurrence of each distinct token sequence in input order.
func MergeTokenized(paths []string) ([][]string, error) {
	seen := make(map[string]bool)
	var merged [][]string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read tokenized shard: %w", err)
		}
		var shard [][]string
		if err := json.Unmarshal(data, &shard); err != nil {
			return nil, fmt.Errorf("failed to parse tokenized shard %s: %w", path, err)
		}
		for _, tokens := range shard {
			key := strings.Join(tokens, "\x00")
			if !seen[key] {
				seen[key] = true
				merged = append(merged, tokens)
			}
		}
	}
	return merged, nil
}

// WriteLines writes lines to path, one per line.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

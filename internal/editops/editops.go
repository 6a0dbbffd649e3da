// Package editops generates the one-edit neighborhood of a word over the
// Telugu alphabet: every word reachable by a single insertion, deletion,
// substitution, or adjacent transposition.
package editops

import "github.com/telugutools/vartani/internal/script"

// Edits holds the candidates produced by each operation, grouped so callers
// can attribute a candidate to the operation that generated it.
type Edits struct {
	Deletions      []string
	Transpositions []string
	Substitutions  []string
	Insertions     []string
}

// Lists returns the four candidate lists in a fixed order: deletion,
// transposition, substitution, insertion.
func (e *Edits) Lists() [][]string {
	return [][]string{e.Deletions, e.Transpositions, e.Substitutions, e.Insertions}
}

// Total returns the number of generated candidates across all operations.
func (e *Edits) Total() int {
	return len(e.Deletions) + len(e.Transpositions) + len(e.Substitutions) + len(e.Insertions)
}

// Generate eagerly produces all one-edit candidates of word.
//
// Deletions never include the empty string, so a single-character word has no
// deletion candidates. Transpositions of identical adjacent characters still
// emit a duplicate of the input, and substitutions include replacing a
// character with itself; such self-matches trivially pass a vocabulary check
// and must be filtered by the caller.
func Generate(word string) *Edits {
	runes := []rune(word)
	n := len(runes)
	alphabet := script.Alphabet()

	e := &Edits{
		Transpositions: make([]string, 0, max(n-1, 0)),
		Substitutions:  make([]string, 0, n*len(alphabet)),
		Insertions:     make([]string, 0, (n+1)*len(alphabet)),
	}
	if n > 1 {
		e.Deletions = make([]string, 0, n)
		for i := 0; i < n; i++ {
			e.Deletions = append(e.Deletions, string(runes[:i])+string(runes[i+1:]))
		}
	}
	for i := 0; i+1 < n; i++ {
		swapped := make([]rune, n)
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		e.Transpositions = append(e.Transpositions, string(swapped))
	}
	for i := 0; i < n; i++ {
		prefix := string(runes[:i])
		suffix := string(runes[i+1:])
		for _, c := range alphabet {
			e.Substitutions = append(e.Substitutions, prefix+string(c)+suffix)
		}
	}
	for i := 0; i <= n; i++ {
		prefix := string(runes[:i])
		suffix := string(runes[i:])
		for _, c := range alphabet {
			e.Insertions = append(e.Insertions, prefix+string(c)+suffix)
		}
	}
	return e
}

package editops

import (
	"testing"

	"github.com/telugutools/vartani/internal/distance"
	"github.com/telugutools/vartani/internal/script"
)

func TestGenerate_Counts(t *testing.T) {
	word := "తెలుగు" // 6 runes
	n := 6
	a := len(script.Alphabet())

	e := Generate(word)
	if got := len(e.Deletions); got != n {
		t.Errorf("deletions = %d, want %d", got, n)
	}
	if got := len(e.Transpositions); got != n-1 {
		t.Errorf("transpositions = %d, want %d", got, n-1)
	}
	if got := len(e.Substitutions); got != n*a {
		t.Errorf("substitutions = %d, want %d", got, n*a)
	}
	if got := len(e.Insertions); got != (n+1)*a {
		t.Errorf("insertions = %d, want %d", got, (n+1)*a)
	}
	if e.Total() != n+(n-1)+n*a+(n+1)*a {
		t.Errorf("Total() = %d inconsistent with list lengths", e.Total())
	}
}

func TestGenerate_SingleCharacter(t *testing.T) {
	e := Generate("త")
	if len(e.Deletions) != 0 {
		t.Errorf("single-character word produced deletions %v, want none", e.Deletions)
	}
	if len(e.Transpositions) != 0 {
		t.Errorf("single-character word produced transpositions %v", e.Transpositions)
	}
	if len(e.Substitutions) != len(script.Alphabet()) {
		t.Errorf("substitutions = %d, want alphabet size", len(e.Substitutions))
	}
	if len(e.Insertions) != 2*len(script.Alphabet()) {
		t.Errorf("insertions = %d, want twice alphabet size", len(e.Insertions))
	}
}

func TestGenerate_Empty(t *testing.T) {
	e := Generate("")
	if len(e.Deletions) != 0 || len(e.Transpositions) != 0 || len(e.Substitutions) != 0 {
		t.Error("empty word should only have insertion candidates")
	}
	if len(e.Insertions) != len(script.Alphabet()) {
		t.Errorf("insertions = %d, want alphabet size", len(e.Insertions))
	}
}

func TestGenerate_NoEmptyCandidates(t *testing.T) {
	for _, word := range []string{"", "త", "తెలుగు"} {
		e := Generate(word)
		for _, list := range e.Lists() {
			for _, c := range list {
				if c == "" {
					t.Errorf("Generate(%q) emitted an empty candidate", word)
				}
			}
		}
	}
}

// Every generated candidate must be within one edit of the input.
func TestGenerate_AllWithinOneEdit(t *testing.T) {
	word := "పదం"
	e := Generate(word)
	for _, list := range e.Lists() {
		for _, c := range list {
			if d := distance.Distance(word, c); d > 1 {
				t.Errorf("candidate %q has distance %d from %q", c, d, word)
			}
		}
	}
}

func TestGenerate_TranspositionsIncludeNoOpSwaps(t *testing.T) {
	// Identical adjacent runes swap to a duplicate of the input; callers
	// filter self-matches.
	e := Generate("అఅమ")
	found := false
	for _, c := range e.Transpositions {
		if c == "అఅమ" {
			found = true
		}
	}
	if !found {
		t.Error("expected a no-op swap duplicate of the input among transpositions")
	}
}

func TestGenerate_KnownNeighbors(t *testing.T) {
	e := Generate("పుస్తక")
	wantInsert := "పుస్తకం" // insert anusvara at the end
	found := false
	for _, c := range e.Insertions {
		if c == wantInsert {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("%q not among insertion candidates of %q", wantInsert, "పుస్తక")
	}

	e = Generate("పుస్తకం")
	wantDelete := "పుస్తక"
	found = false
	for _, c := range e.Deletions {
		if c == wantDelete {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("%q not among deletion candidates of %q", wantDelete, "పుస్తకం")
	}
}

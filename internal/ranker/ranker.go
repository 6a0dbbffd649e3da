// Package ranker scores and orders correction candidates for a misspelled
// word using frequency, edit distance, and length similarity.
package ranker

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/telugutools/vartani/internal/distance"
	"github.com/telugutools/vartani/internal/models"
	"github.com/telugutools/vartani/internal/vocab"
)

// Weights are the scoring coefficients. Common words stay dominant through
// the log-scaled frequency score while the linear penalties push down distant
// or length-mismatched candidates.
type Weights struct {
	// Frequency multiplies the log-scaled relative frequency score.
	Frequency float64
	// Edit is the penalty per unit of edit distance.
	Edit float64
	// Length is the penalty per rune of length difference.
	Length float64
}

// DefaultWeights returns the hand-tuned coefficients.
func DefaultWeights() Weights {
	return Weights{Frequency: 100, Edit: 10, Length: 0.5}
}

// Ranker orders candidates against a shared read-only vocabulary index.
type Ranker struct {
	index   *vocab.Index
	weights Weights
}

// New returns a Ranker over index. Zero weights fall back to the defaults.
func New(index *vocab.Index, w Weights) *Ranker {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Ranker{index: index, weights: w}
}

// Rank scores every candidate against the misspelled word and returns them
// ordered best first: combined score descending, then edit distance
// ascending, then frequency descending, then word for determinism.
// Candidates are expected to be vocabulary members.
func (r *Ranker) Rank(misspelled string, candidates []string) []*models.Candidate {
	maxFreq := r.index.MaxFrequency()
	if maxFreq == 0 {
		maxFreq = 1
	}
	misspelledLen := utf8.RuneCountInString(misspelled)

	ranked := make([]*models.Candidate, 0, len(candidates))
	for _, word := range candidates {
		freq := r.index.Frequency(word)
		if freq == 0 {
			freq = 1
		}
		semantic := math.Log(float64(freq)+1) * (float64(freq) / float64(maxFreq))

		dist, ops := distance.DistanceWithOps(misspelled, word)
		lenDiff := utf8.RuneCountInString(word) - misspelledLen
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}

		combined := r.weights.Frequency*semantic -
			r.weights.Edit*float64(dist) -
			r.weights.Length*float64(lenDiff)

		ranked = append(ranked, &models.Candidate{
			Word:            word,
			Frequency:       freq,
			EditDistance:    dist,
			Operations:      ops,
			OperationCounts: distance.CountOps(ops),
			SemanticScore:   semantic,
			CombinedScore:   combined,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.CombinedScore != b.CombinedScore {
			return a.CombinedScore > b.CombinedScore
		}
		if a.EditDistance != b.EditDistance {
			return a.EditDistance < b.EditDistance
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Word < b.Word
	})
	return ranked
}

// Weights returns the active scoring coefficients.
func (r *Ranker) Weights() Weights { return r.weights }

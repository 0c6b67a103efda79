// internal/solver/entropy.go
//
// Exact Shannon-entropy maximization.
//
// For every word in the indexed vocabulary, compute the entropy (base 2)
// of the feedback-code distribution it would induce over the live
// candidate set, and guess the maximizer. The batch pass slices matrix
// columns to the candidate indices and accumulates a 243-bucket histogram
// per guess row; rows are independent, so the pass is chunked across
// goroutines (reordering cannot change the sums).
//
// Ties prefer a guess that is itself a live candidate. Guesses already
// played in this game are excluded from re-selection. A single remaining
// candidate short-circuits: its entropy is 0 and the pick is forced.

package solver

import (
	"math"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
)

// defaultOpener is the fixed first guess of the entropy selectors; the
// full-pool entropy argmax is stable, so recomputing it every game buys
// nothing.
const defaultOpener = "tares"

// entropyBits computes -Σ p·log2 p from a code histogram with the given
// total mass.
func entropyBits(counts *[pattern.NumCodes]int, total int) float64 {
	if total <= 0 {
		return 0
	}
	h := 0.0
	n := float64(total)
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// batchEntropies scores every matrix row against the candidate columns.
// The result is index-aligned with the matrix vocabulary.
func batchEntropies(m *pattern.Matrix, cols []int) []float64 {
	out := make([]float64, m.Len())
	if len(cols) == 0 {
		return out
	}

	const chunk = 256
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < m.Len(); start += chunk {
		start := start
		end := min(start+chunk, m.Len())
		g.Go(func() error {
			var counts [pattern.NumCodes]int
			for gi := start; gi < end; gi++ {
				counts = [pattern.NumCodes]int{}
				m.CountCodes(gi, cols, &counts)
				out[gi] = entropyBits(&counts, len(cols))
			}
			return nil
		})
	}
	// Chunks write disjoint ranges and never fail.
	_ = g.Wait()
	return out
}

// singleEntropy scores one guess word against the candidates. Indexed
// words read a matrix row; anything else falls back to encoding against
// each candidate directly (the vocabulary-miss path).
func singleEntropy(m *pattern.Matrix, guess string, cands []string, candIdx []int) float64 {
	if gi, ok := m.Index(guess); ok {
		var counts [pattern.NumCodes]int
		m.CountCodes(gi, candIdx, &counts)
		return entropyBits(&counts, len(candIdx))
	}
	var counts [pattern.NumCodes]int
	for _, secret := range cands {
		counts[pattern.Encode(guess, secret)]++
	}
	return entropyBits(&counts, len(cands))
}

// candidateIndices maps candidate words to matrix column indices, skipping
// any word outside the indexed vocabulary.
func candidateIndices(m *pattern.Matrix, cands []string) []int {
	idx := make([]int, 0, len(cands))
	for _, w := range cands {
		if i, ok := m.Index(w); ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// Entropy is the exact entropy-maximizing selector.
type Entropy struct {
	tracker *Tracker
	m       *pattern.Matrix
	opener  string
	used    map[string]struct{}

	// lastScores is index-aligned with the matrix vocabulary; kept for
	// Suggestions.
	lastScores []float64
	last       Stats
}

// NewEntropy builds the selector. The matrix is required: exact entropy
// over the full vocabulary without the precomputed table is impractical.
func NewEntropy(pool []string, m *pattern.Matrix) *Entropy {
	return &Entropy{
		tracker: NewTracker(pool, m),
		m:       m,
		opener:  defaultOpener,
		used:    make(map[string]struct{}),
	}
}

// Name implements Selector.
func (s *Entropy) Name() string { return "entropy" }

// SetOpener overrides the fixed first guess.
func (s *Entropy) SetOpener(w string) { s.opener = w }

// PickGuess scores every indexed word against the live candidates and
// returns the entropy maximizer.
func (s *Entropy) PickGuess(history []Turn) (string, error) {
	if len(history) == 0 {
		s.used[s.opener] = struct{}{}
		s.last = Stats{Method: s.Name(), Word: s.opener}
		return s.opener, nil
	}

	if err := s.tracker.Apply(history); err != nil {
		return "", err
	}
	cands := s.tracker.Candidates()
	if len(cands) == 1 {
		s.used[cands[0]] = struct{}{}
		s.last = Stats{Method: s.Name(), Word: cands[0]}
		return cands[0], nil
	}

	candIdx := candidateIndices(s.m, cands)
	scores := batchEntropies(s.m, candIdx)

	// Mask already-played guesses.
	for w := range s.used {
		if gi, ok := s.m.Index(w); ok {
			scores[gi] = -1
		}
	}

	bestIdx := 0
	for i, h := range scores {
		if h > scores[bestIdx] {
			bestIdx = i
		}
	}
	best := s.m.WordAt(bestIdx)
	bestH := scores[bestIdx]

	// Tie-break: prefer a guess that is itself a live candidate, in index
	// order.
	if !contains(cands, best) {
		for i, h := range scores {
			if math.Abs(h-bestH) < 1e-9 && contains(cands, s.m.WordAt(i)) {
				best = s.m.WordAt(i)
				break
			}
		}
	}

	s.used[best] = struct{}{}
	s.lastScores = scores
	s.last = Stats{Method: s.Name(), Word: best}
	log.Debug().
		Str("solver", s.Name()).
		Str("word", best).
		Float64("entropy_bits", bestH).
		Int("candidates", len(cands)).
		Msg("entropy argmax")
	return best, nil
}

// Suggestions ranks the vocabulary by the entropies of the most recent
// pick, excluding already-played guesses.
func (s *Entropy) Suggestions() []Suggestion {
	if s.lastScores == nil {
		return []Suggestion{{Word: s.opener}}
	}
	out := make([]Suggestion, 0, len(s.lastScores))
	for i, h := range s.lastScores {
		w := s.m.WordAt(i)
		if _, played := s.used[w]; played {
			continue
		}
		out = append(out, Suggestion{Word: w, Score: h})
	}
	return sortSuggestions(out)
}

// LastStats implements Selector.
func (s *Entropy) LastStats() Stats { return s.last }

// Reset implements Selector.
func (s *Entropy) Reset() {
	s.tracker.Reset()
	s.used = make(map[string]struct{})
	s.lastScores = nil
	s.last = Stats{}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

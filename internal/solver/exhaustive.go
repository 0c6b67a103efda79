// internal/solver/exhaustive.go
//
// Exhaustive trie selector: rebuild the trie over the live candidate set
// every turn and return the first word the depth-first search reaches.
// Always yields a legal, currently-consistent guess whenever candidates
// remain; the node-visit count doubles as the turn's cost metric.

package solver

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/trie"
)

// Exhaustive is the depth-first trie selector.
type Exhaustive struct {
	tracker *Tracker
	last    Stats
}

// NewExhaustive builds the selector over the initial candidate pool.
func NewExhaustive(pool []string, m *pattern.Matrix) *Exhaustive {
	return &Exhaustive{tracker: NewTracker(pool, m)}
}

// Name implements Selector.
func (s *Exhaustive) Name() string { return "exhaustive" }

// PickGuess rebuilds the trie from the live candidates and returns the
// first terminal word found by the exhaustive search.
func (s *Exhaustive) PickGuess(history []Turn) (string, error) {
	if err := s.tracker.Apply(history); err != nil {
		return "", err
	}
	cands := s.tracker.Candidates()
	if len(cands) == 1 {
		s.last = Stats{Method: s.Name(), Word: cands[0]}
		return cands[0], nil
	}

	tr := trie.New(cands)
	word, visited, ok := tr.ExhaustiveSearch()
	if !ok {
		return "", ErrNoCandidates
	}
	s.last = Stats{Method: s.Name(), Word: word, NodesVisited: visited}
	log.Debug().
		Str("solver", s.Name()).
		Str("word", word).
		Int("nodes_visited", visited).
		Int("candidates", len(cands)).
		Msg("exhaustive search")
	return word, nil
}

// Suggestions returns the live candidates in lexicographic order. The
// search has no score to rank by, so every word scores zero.
func (s *Exhaustive) Suggestions() []Suggestion {
	cands := append([]string(nil), s.tracker.Candidates()...)
	sort.Strings(cands)
	if len(cands) > maxSuggestions {
		cands = cands[:maxSuggestions]
	}
	out := make([]Suggestion, len(cands))
	for i, w := range cands {
		out[i] = Suggestion{Word: w}
	}
	return out
}

// LastStats implements Selector.
func (s *Exhaustive) LastStats() Stats { return s.last }

// Reset implements Selector.
func (s *Exhaustive) Reset() {
	s.tracker.Reset()
	s.last = Stats{}
}

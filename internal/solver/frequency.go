// internal/solver/frequency.go
//
// Per-position letter-frequency selectors.
//
// Both variants greedily descend the candidate trie, choosing at each of
// the five positions the child letter with the highest frequency score
// among the letters actually available at that position. They differ only
// in where the frequency table comes from:
//
//   - StaticFrequency: counted once from the full pool (a fixed prior).
//   - DynamicFrequency: recounted every turn from the live candidate set,
//     so the greedy choice reflects current knowledge.
//
// Ties break toward the smaller letter, the trie's fixed child-iteration
// order.

package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/trie"
)

// freqTable holds per-position letter counts.
type freqTable [pattern.WordLen][26]int

func newFreqTable(words []string) *freqTable {
	var f freqTable
	for _, w := range words {
		for i := 0; i < pattern.WordLen; i++ {
			f[i][w[i]-'a']++
		}
	}
	return &f
}

// score sums the per-position counts of a word's letters.
func (f *freqTable) score(w string) float64 {
	total := 0
	for i := 0; i < pattern.WordLen; i++ {
		total += f[i][w[i]-'a']
	}
	return float64(total)
}

// descend builds a word by greedy per-position choice over tr. Every
// complete descent of a fixed-length trie ends on a terminal node, so the
// constructed string is always a trie word. Returns the word and the
// number of nodes touched (root included).
func (f *freqTable) descend(tr *trie.Trie) (string, int) {
	node := tr.Root()
	visited := 1
	word := make([]byte, 0, pattern.WordLen)

	for i := 0; i < pattern.WordLen; i++ {
		labels := node.Labels()
		if len(labels) == 0 {
			break
		}
		best := labels[0]
		for _, c := range labels[1:] {
			if f[i][c-'a'] > f[i][best-'a'] {
				best = c
			}
		}
		word = append(word, best)
		node = node.Child(best)
		visited++
	}
	return string(word), visited
}

// StaticFrequency scores letters by their frequency in the full pool.
type StaticFrequency struct {
	tracker *Tracker
	freq    *freqTable
	last    Stats
}

// NewStaticFrequency builds the selector; the frequency table is computed
// once from pool and never rebuilt.
func NewStaticFrequency(pool []string, m *pattern.Matrix) *StaticFrequency {
	return &StaticFrequency{tracker: NewTracker(pool, m), freq: newFreqTable(pool)}
}

// Name implements Selector.
func (s *StaticFrequency) Name() string { return "static-frequency" }

// PickGuess greedily descends a trie rebuilt over the live candidates.
func (s *StaticFrequency) PickGuess(history []Turn) (string, error) {
	word, visited, err := pickByFrequency(s.tracker, history, s.freq)
	if err != nil {
		return "", err
	}
	s.last = Stats{Method: s.Name(), Word: word, NodesVisited: visited}
	log.Debug().Str("solver", s.Name()).Str("word", word).Int("nodes_visited", visited).Msg("greedy descent")
	return word, nil
}

// Suggestions ranks the live candidates by static frequency score.
func (s *StaticFrequency) Suggestions() []Suggestion {
	return scoreCandidates(s.tracker.Candidates(), s.freq)
}

// LastStats implements Selector.
func (s *StaticFrequency) LastStats() Stats { return s.last }

// Reset implements Selector.
func (s *StaticFrequency) Reset() {
	s.tracker.Reset()
	s.last = Stats{}
}

// DynamicFrequency recounts letter frequencies from the live candidate set
// every turn.
type DynamicFrequency struct {
	tracker *Tracker
	last    Stats
}

// NewDynamicFrequency builds the selector over the initial candidate pool.
func NewDynamicFrequency(pool []string, m *pattern.Matrix) *DynamicFrequency {
	return &DynamicFrequency{tracker: NewTracker(pool, m)}
}

// Name implements Selector.
func (s *DynamicFrequency) Name() string { return "dynamic-frequency" }

// PickGuess rebuilds the frequency table from the live candidates, then
// descends exactly like the static variant.
func (s *DynamicFrequency) PickGuess(history []Turn) (string, error) {
	if err := s.tracker.Apply(history); err != nil {
		return "", err
	}
	freq := newFreqTable(s.tracker.Candidates())
	word, visited, err := pickByFrequency(s.tracker, history, freq)
	if err != nil {
		return "", err
	}
	s.last = Stats{Method: s.Name(), Word: word, NodesVisited: visited}
	log.Debug().Str("solver", s.Name()).Str("word", word).Int("nodes_visited", visited).Msg("greedy descent")
	return word, nil
}

// Suggestions ranks the live candidates by the current turn's frequencies.
func (s *DynamicFrequency) Suggestions() []Suggestion {
	freq := newFreqTable(s.tracker.Candidates())
	return scoreCandidates(s.tracker.Candidates(), freq)
}

// LastStats implements Selector.
func (s *DynamicFrequency) LastStats() Stats { return s.last }

// Reset implements Selector.
func (s *DynamicFrequency) Reset() {
	s.tracker.Reset()
	s.last = Stats{}
}

// pickByFrequency applies history, short-circuits a forced pick, and runs
// the greedy descent with the given table.
func pickByFrequency(t *Tracker, history []Turn, freq *freqTable) (string, int, error) {
	if err := t.Apply(history); err != nil {
		return "", 0, err
	}
	cands := t.Candidates()
	if len(cands) == 1 {
		return cands[0], 0, nil
	}
	tr := trie.New(cands)
	word, visited := freq.descend(tr)
	return word, visited, nil
}

// scoreCandidates ranks words by freq score, best first.
func scoreCandidates(cands []string, freq *freqTable) []Suggestion {
	out := make([]Suggestion, 0, len(cands))
	for _, w := range cands {
		out = append(out, Suggestion{Word: w, Score: freq.score(w)})
	}
	return sortSuggestions(out)
}

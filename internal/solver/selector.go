// internal/solver/selector.go
//
// Shared selector surface.
//
// All five strategies are polymorphic over a single capability: propose a
// next guess given the feedback history. Each implementation owns its own
// tracker/trie/cache state; the only shared resource is the read-only
// pattern matrix passed in at construction.
//
// Selectors tolerate being called with a strictly-growing history (one new
// pair appended per call) and produce results identical to a from-scratch
// replay of the full history.

package solver

import (
	"errors"
	"sort"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
)

// Turn is one (guess, feedback code) pair of the game history, oldest
// first in a history slice.
type Turn struct {
	Guess string
	Code  pattern.Code
}

// Suggestion pairs a word with the score the selector would rank it by.
type Suggestion struct {
	Word  string
	Score float64
}

// Stats describes the work done by the most recent PickGuess call.
type Stats struct {
	Method       string
	Word         string
	NodesVisited int
	CacheSize    int  // sampled entropy: turn cache entries
	Switched     bool // sampled entropy: cache optimum replaced the greedy word
}

// Selector proposes the next guess for a game in progress.
type Selector interface {
	// Name identifies the strategy (used in logs and run records).
	Name() string

	// PickGuess returns the next guess for the given history.
	// Returns ErrNoCandidates when the history is inconsistent with the
	// candidate pool (a feedback/codec contract violation, fatal for the
	// session).
	PickGuess(history []Turn) (string, error)

	// Suggestions returns the ranked words from the most recent pick,
	// best first, at most maxSuggestions entries.
	Suggestions() []Suggestion

	// LastStats reports the work done by the most recent PickGuess.
	LastStats() Stats

	// Reset clears per-game state for a fresh session over the same pool.
	Reset()
}

// ErrNoCandidates signals that narrowing emptied the candidate set: the
// feedback source and the pattern codec disagree. Not recoverable within
// the session.
var ErrNoCandidates = errors.New("solver: no candidates consistent with feedback history")

// maxSuggestions bounds the Suggestions result size.
const maxSuggestions = 100

// sortSuggestions orders by score descending, word ascending on ties, and
// truncates to maxSuggestions.
func sortSuggestions(s []Suggestion) []Suggestion {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		return s[i].Word < s[j].Word
	})
	if len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	return s
}

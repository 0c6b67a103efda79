// internal/solver/tracker.go
//
// Candidate tracking: the set of vocabulary words still consistent with
// the observed feedback history.
//
// Narrowing replays the feedback code of each past guess against every
// retained word (matrix lookup, codec fallback) and drops the words that
// disagree. Because the codec is the same function that produced the
// feedback, a word is removed only if it is provably not the secret, so
// the true secret is always retained. The set is monotonically
// non-increasing across a game; an empty set means the feedback source and
// the codec disagree, which is a contract violation and fatal for the
// session.

package solver

import (
	"fmt"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
)

// State tracks the tracker's lifecycle within one game session.
type State int

const (
	StateUninitialized State = iota
	StateReady                // pool built, no feedback applied
	StateNarrowed             // at least one feedback pair applied
	StateExhausted            // ≤1 candidate left: next pick is forced (1) or fatal (0)
)

// Tracker maintains the live candidate set. Exclusively owned by a single
// selector instance; not safe for concurrent use.
type Tracker struct {
	matrix  *pattern.Matrix
	pool    []string
	live    []string
	applied []Turn
	state   State
}

// NewTracker builds a tracker over the initial candidate pool. The pool
// order is preserved by every narrowing pass, which keeps downstream
// tie-breaks deterministic.
func NewTracker(pool []string, m *pattern.Matrix) *Tracker {
	t := &Tracker{matrix: m, pool: pool, state: StateReady}
	t.live = append([]string(nil), pool...)
	return t
}

// Reset restores the candidate set to the initial pool and clears the
// applied history.
func (t *Tracker) Reset() {
	t.live = append(t.live[:0], t.pool...)
	t.applied = t.applied[:0]
	t.state = StateReady
}

// Apply brings the tracker in sync with history. When history strictly
// extends what has already been applied, only the new suffix is narrowed;
// otherwise the tracker resets and replays from scratch. Either way the
// resulting set is identical to a full replay.
func (t *Tracker) Apply(history []Turn) error {
	if !t.extends(history) {
		t.Reset()
	}
	for _, turn := range history[len(t.applied):] {
		if err := t.Narrow(turn.Guess, turn.Code); err != nil {
			return err
		}
	}
	return nil
}

// extends reports whether history has the already-applied turns as a prefix.
func (t *Tracker) extends(history []Turn) bool {
	if len(history) < len(t.applied) {
		return false
	}
	for i, turn := range t.applied {
		if history[i] != turn {
			return false
		}
	}
	return true
}

// Narrow drops every candidate w for which the feedback of guess against w
// differs from code. Returns ErrNoCandidates if the set empties.
func (t *Tracker) Narrow(guess string, code pattern.Code) error {
	kept := t.live[:0]
	for _, w := range t.live {
		if t.eval(guess, w) == code {
			kept = append(kept, w)
		}
	}
	t.live = kept
	t.applied = append(t.applied, Turn{Guess: guess, Code: code})

	switch {
	case len(t.live) == 0:
		t.state = StateExhausted
		return fmt.Errorf("narrow %q/%d: %w", guess, code, ErrNoCandidates)
	case len(t.live) == 1:
		t.state = StateExhausted
	default:
		t.state = StateNarrowed
	}
	return nil
}

// eval looks the pair up in the shared matrix, falling back to the codec
// for words outside the indexed vocabulary.
func (t *Tracker) eval(guess, secret string) pattern.Code {
	if t.matrix != nil {
		return t.matrix.Eval(guess, secret)
	}
	return pattern.Encode(guess, secret)
}

// Candidates returns the live candidate set in pool order. Callers must
// not mutate it.
func (t *Tracker) Candidates() []string { return t.live }

// Len returns the live candidate count.
func (t *Tracker) Len() int { return len(t.live) }

// State returns the tracker's lifecycle state.
func (t *Tracker) State() State { return t.state }

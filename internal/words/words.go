// internal/words/words.go
//
// Word list management for the solver engine.
//
// Responsibilities:
//   - Load the "possible" (legal secrets) and "allowed" (legal guesses)
//     lists from environment-provided files or fall back to embedded
//     defaults.
//   - Maintain sets for quick membership checks (possible, possible∪extras).
//   - Validate guess strings before they reach the pattern codec
//     (length and alphabet errors are surfaced here, never deeper).
//
// Word Lists:
//   - "possible": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always a superset of possible).
//
// Loading behavior (Load):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load secrets from the first and extra guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both pools.
//   3. If neither is set, fall back to the embedded lists in assets/.
//
// Unlike a package-global registry, Load returns an explicit *Vocabulary
// value; everything downstream (matrix, game, selectors) shares it by
// reference and treats it as immutable.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/khoaphamm/wordle-solver/assets"
)

// WordLen is the fixed word length the whole engine is built around.
const WordLen = 5

// Validation errors, surfaced to callers before a word reaches the codec.
var (
	ErrWordLength = errors.New("words: word must be exactly 5 letters")
	ErrAlphabet   = errors.New("words: word must contain only letters a-z")
)

// Vocabulary holds the two distinguished word pools. Both slices keep their
// load order, which fixes the index layout of the pattern matrix and every
// deterministic tie-break downstream. Immutable after construction.
type Vocabulary struct {
	Possible []string // legal secrets
	Allowed  []string // legal guesses, Possible ∪ extras, Possible first

	possibleSet map[string]struct{}
	allowedSet  map[string]struct{}
}

// Load builds a Vocabulary from environment-provided files or the embedded
// defaults. Returns an error if the possible pool ends up empty.
func Load() (*Vocabulary, error) {
	var possible, extra []string

	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided.
	case answersPath != "" && allowedPath != "":
		var err error
		possible, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		extra, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}

	// Case 2: only an allowed file provided → use it for both pools.
	case answersPath == "" && allowedPath != "":
		var err error
		extra, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		possible = extra

	// Case 3: embedded defaults.
	default:
		var err error
		possible, err = assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		extra, err = assets.AllowedList()
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}

	v := New(possible, extra)
	if len(v.Possible) == 0 {
		return nil, errors.New("words: possible list is empty")
	}
	return v, nil
}

// New constructs a Vocabulary from explicit lists. The allowed pool is
// possible ∪ extra with possible words first; duplicates are dropped while
// preserving first-seen order. Used directly by tests with toy pools.
func New(possible, extra []string) *Vocabulary {
	v := &Vocabulary{
		possibleSet: make(map[string]struct{}, len(possible)),
		allowedSet:  make(map[string]struct{}, len(possible)+len(extra)),
	}
	for _, w := range possible {
		if _, dup := v.possibleSet[w]; dup {
			continue
		}
		v.possibleSet[w] = struct{}{}
		v.allowedSet[w] = struct{}{}
		v.Possible = append(v.Possible, w)
		v.Allowed = append(v.Allowed, w)
	}
	for _, w := range extra {
		if _, dup := v.allowedSet[w]; dup {
			continue
		}
		v.allowedSet[w] = struct{}{}
		v.Allowed = append(v.Allowed, w)
	}
	return v
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if Validate(w) == nil {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Validate reports whether w is a well-formed word: exactly WordLen
// lowercase ASCII letters. Returns ErrWordLength or ErrAlphabet.
func Validate(w string) error {
	if len(w) != WordLen {
		return ErrWordLength
	}
	if !isAlpha(w) {
		return ErrAlphabet
	}
	return nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsAllowed reports whether w is a legal guess (possible ∪ extras).
func (v *Vocabulary) IsAllowed(w string) bool {
	_, ok := v.allowedSet[strings.ToLower(w)]
	return ok
}

// IsPossible reports whether w is a legal secret.
func (v *Vocabulary) IsPossible(w string) bool {
	_, ok := v.possibleSet[strings.ToLower(w)]
	return ok
}

// RandomPossible returns a cryptographically random secret word.
// Falls back to "crane" if the pool is empty.
func (v *Vocabulary) RandomPossible() string {
	if len(v.Possible) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(v.Possible))))
	return v.Possible[nBig.Int64()]
}

// Stats returns counts of loaded words: (possible, allowed).
func (v *Vocabulary) Stats() (possibleCount int, allowedCount int) {
	return len(v.Possible), len(v.Allowed)
}

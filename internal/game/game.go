// internal/game/game.go
//
// Turn-taking game collaborator for the solver engine.
// Responsibilities:
//   - Hold the secret, the attempt history, and win/loss state.
//   - Validate guesses (length, alphabet, allowed list) before scoring.
//   - Evaluate guesses through the shared pattern matrix with a codec
//     fallback, so game feedback and solver narrowing agree bit for bit.
//
// Selectors never see the secret; they consume only the (guess, code)
// history this type produces.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/words"
)

// defaultMaxAttempts matches the classic 6-row board.
const defaultMaxAttempts = 6

var (
	// ErrFinished is returned for guesses after the game ended.
	ErrFinished = errors.New("game: game is already over")
	// ErrNotAllowed is returned for words outside the allowed list.
	ErrNotAllowed = errors.New("game: word not in allowed list")
)

// Attempt is one scored guess.
type Attempt struct {
	Guess string
	Code  pattern.Code
}

// Game holds the state of a single session.
type Game struct {
	ID          string
	MaxAttempts int
	Attempts    []Attempt
	Finished    bool
	Won         bool

	secret string
	vocab  *words.Vocabulary
	matrix *pattern.Matrix // may be nil; Evaluate falls back to the codec
}

// New constructs a game. An empty secret draws a random one from the
// possible pool. The matrix is optional.
func New(vocab *words.Vocabulary, m *pattern.Matrix, secret string) *Game {
	if secret == "" {
		secret = vocab.RandomPossible()
	}
	return &Game{
		ID:          randomID(),
		MaxAttempts: defaultMaxAttempts,
		secret:      strings.ToLower(secret),
		vocab:       vocab,
		matrix:      m,
	}
}

// Secret exposes the answer; harnesses need it, selectors must not.
func (g *Game) Secret() string { return g.secret }

// Evaluate returns the feedback code for guess against secret. It must
// behave identically to pattern.Encode; the matrix is only a cache.
func (g *Game) Evaluate(guess, secret string) pattern.Code {
	if g.matrix != nil {
		return g.matrix.Eval(guess, secret)
	}
	return pattern.Encode(guess, secret)
}

// MakeGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly 5 lowercase letters.
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - Guess equals the secret → Finished, Won.
//   - Attempt count reaches MaxAttempts → Finished (loss).
func (g *Game) MakeGuess(guess string) (pattern.Code, error) {
	if g.Finished {
		return 0, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if err := words.Validate(guess); err != nil {
		return 0, fmt.Errorf("game: %w", err)
	}
	if !g.vocab.IsAllowed(guess) {
		return 0, ErrNotAllowed
	}

	code := g.Evaluate(guess, g.secret)
	g.Attempts = append(g.Attempts, Attempt{Guess: guess, Code: code})

	if guess == g.secret {
		g.Finished, g.Won = true, true
	} else if len(g.Attempts) >= g.MaxAttempts {
		g.Finished = true
	}
	return code, nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

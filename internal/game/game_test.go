package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoaphamm/wordle-solver/internal/game"
	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/words"
)

func testVocab() *words.Vocabulary {
	return words.New(
		[]string{"crane", "aback", "slate", "tares"},
		[]string{"trace"},
	)
}

func TestMakeGuessWin(t *testing.T) {
	v := testVocab()
	g := game.New(v, nil, "crane")

	code, err := g.MakeGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, pattern.Encode("slate", "crane"), code)
	assert.Equal(t, "playing", g.State())

	code, err = g.MakeGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, pattern.AllExact, code)
	assert.True(t, g.Won)
	assert.Equal(t, "won", g.State())

	_, err = g.MakeGuess("tares")
	assert.ErrorIs(t, err, game.ErrFinished)
}

func TestMakeGuessLossAfterMaxAttempts(t *testing.T) {
	v := testVocab()
	g := game.New(v, nil, "crane")
	g.MaxAttempts = 2

	_, err := g.MakeGuess("slate")
	require.NoError(t, err)
	_, err = g.MakeGuess("tares")
	require.NoError(t, err)

	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Equal(t, "lost", g.State())
	assert.Len(t, g.Attempts, 2)
}

func TestMakeGuessValidation(t *testing.T) {
	v := testVocab()
	g := game.New(v, nil, "crane")

	_, err := g.MakeGuess("cran")
	assert.ErrorIs(t, err, words.ErrWordLength)

	_, err = g.MakeGuess("cr4ne")
	assert.ErrorIs(t, err, words.ErrAlphabet)

	_, err = g.MakeGuess("qqqqq")
	assert.ErrorIs(t, err, game.ErrNotAllowed)

	// Rejected guesses never consume an attempt.
	assert.Empty(t, g.Attempts)
}

func TestMakeGuessNormalizesInput(t *testing.T) {
	v := testVocab()
	g := game.New(v, nil, "crane")

	code, err := g.MakeGuess("  CRANE ")
	require.NoError(t, err)
	assert.Equal(t, pattern.AllExact, code)
	assert.True(t, g.Won)
}

func TestEvaluateMatchesCodecWithAndWithoutMatrix(t *testing.T) {
	v := testVocab()
	m := pattern.Build(v.Allowed)

	plain := game.New(v, nil, "aback")
	cached := game.New(v, m, "aback")

	for _, guess := range v.Allowed {
		for _, secret := range v.Allowed {
			want := pattern.Encode(guess, secret)
			assert.Equal(t, want, plain.Evaluate(guess, secret))
			assert.Equal(t, want, cached.Evaluate(guess, secret))
		}
	}
}

func TestNewDrawsRandomSecretFromPossible(t *testing.T) {
	v := testVocab()
	g := game.New(v, nil, "")
	assert.True(t, v.IsPossible(g.Secret()))
	assert.NotEmpty(t, g.ID)
}

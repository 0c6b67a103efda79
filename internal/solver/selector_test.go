package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/solver"
)

var (
	_ solver.Selector = (*solver.Exhaustive)(nil)
	_ solver.Selector = (*solver.StaticFrequency)(nil)
	_ solver.Selector = (*solver.DynamicFrequency)(nil)
	_ solver.Selector = (*solver.Entropy)(nil)
	_ solver.Selector = (*solver.SampledEntropy)(nil)
)

// allSelectors builds one of each strategy over the same pool.
func allSelectors(pool []string, m *pattern.Matrix) []solver.Selector {
	return []solver.Selector{
		solver.NewExhaustive(pool, m),
		solver.NewStaticFrequency(pool, m),
		solver.NewDynamicFrequency(pool, m),
		solver.NewEntropy(pool, m),
		solver.NewSampledEntropy(pool, m, 50, rand.New(rand.NewSource(1))),
	}
}

func TestEverySelectorShortCircuitsSingleCandidate(t *testing.T) {
	m := pattern.Build(trackerPool)
	// All-exact feedback for "aback" leaves exactly one candidate.
	history := []solver.Turn{{Guess: "aback", Code: pattern.AllExact}}

	for _, sel := range allSelectors(trackerPool, m) {
		got, err := sel.PickGuess(history)
		require.NoError(t, err, sel.Name())
		assert.Equal(t, "aback", got, sel.Name())
	}
}

func TestEverySelectorSurfacesEmptyCandidateSet(t *testing.T) {
	m := pattern.Build(trackerPool)
	// Two all-exact codes for different guesses cannot both hold.
	history := []solver.Turn{
		{Guess: "abcde", Code: pattern.AllExact},
		{Guess: "edcba", Code: pattern.AllExact},
	}

	for _, sel := range allSelectors(trackerPool, m) {
		_, err := sel.PickGuess(history)
		assert.ErrorIs(t, err, solver.ErrNoCandidates, sel.Name())
	}
}

func TestExhaustivePicksFirstTrieWord(t *testing.T) {
	m := pattern.Build(trackerPool)
	sel := solver.NewExhaustive(trackerPool, m)

	// tares vs aback leaves exactly {"aabbb", "aback"}.
	history := []solver.Turn{{Guess: "tares", Code: pattern.Encode("tares", "aback")}}
	got, err := sel.PickGuess(history)
	require.NoError(t, err)
	assert.Equal(t, "aabbb", got)

	stats := sel.LastStats()
	assert.Equal(t, "exhaustive", stats.Method)
	assert.Equal(t, "aabbb", stats.Word)
	// Root plus the five letters of "aabbb": the search never leaves the
	// leftmost branch.
	assert.Equal(t, 6, stats.NodesVisited)
}

func TestExhaustiveSuggestionsAreLexicographic(t *testing.T) {
	m := pattern.Build(trackerPool)
	sel := solver.NewExhaustive(trackerPool, m)

	_, err := sel.PickGuess([]solver.Turn{{Guess: "tares", Code: pattern.Encode("tares", "aback")}})
	require.NoError(t, err)

	sugg := sel.Suggestions()
	require.Len(t, sugg, 2)
	assert.Equal(t, "aabbb", sugg[0].Word)
	assert.Equal(t, "aback", sugg[1].Word)
}

// freqPool is crafted so the static and dynamic tables disagree once
// "bbbbb" is eliminated: the full pool favors 'b' in position 0, the
// surviving candidates tie (and ties break toward the smaller letter).
var freqPool = []string{"abbbb", "babbb", "bbbbb"}

func freqHistory(t *testing.T) []solver.Turn {
	t.Helper()
	// "zzzza" scores 1 against both abbbb and babbb but 0 against bbbbb.
	code := pattern.Encode("zzzza", "abbbb")
	require.Equal(t, pattern.Code(1), code)
	require.Equal(t, code, pattern.Encode("zzzza", "babbb"))
	require.NotEqual(t, code, pattern.Encode("zzzza", "bbbbb"))
	return []solver.Turn{{Guess: "zzzza", Code: code}}
}

func TestStaticFrequencyUsesFullPoolPrior(t *testing.T) {
	m := pattern.Build(freqPool)
	sel := solver.NewStaticFrequency(freqPool, m)

	got, err := sel.PickGuess(freqHistory(t))
	require.NoError(t, err)
	assert.Equal(t, "babbb", got)
}

func TestDynamicFrequencyTracksLiveCandidates(t *testing.T) {
	m := pattern.Build(freqPool)
	sel := solver.NewDynamicFrequency(freqPool, m)

	got, err := sel.PickGuess(freqHistory(t))
	require.NoError(t, err)
	assert.Equal(t, "abbbb", got)
}

func TestFrequencySuggestionsRankByScore(t *testing.T) {
	pool := []string{"aaaaa", "aaaab", "zzzzz"}
	m := pattern.Build(pool)
	sel := solver.NewStaticFrequency(pool, m)

	_, err := sel.PickGuess(nil)
	require.NoError(t, err)

	sugg := sel.Suggestions()
	require.Len(t, sugg, 3)
	// "aaaaa" hits the most frequent letter at all five positions.
	assert.Equal(t, "aaaaa", sugg[0].Word)
	assert.Equal(t, "zzzzz", sugg[2].Word)
	assert.Greater(t, sugg[0].Score, sugg[2].Score)
}

func TestSelectorsAreIdempotentAcrossGrowingHistory(t *testing.T) {
	m := pattern.Build(trackerPool)
	secret := "abcde"
	history := []solver.Turn{
		{Guess: "xyzzy", Code: pattern.Encode("xyzzy", secret)},
		{Guess: "tares", Code: pattern.Encode("tares", secret)},
	}

	grown := solver.NewExhaustive(trackerPool, m)
	_, err := grown.PickGuess(history[:1])
	require.NoError(t, err)
	incremental, err := grown.PickGuess(history)
	require.NoError(t, err)

	fresh := solver.NewExhaustive(trackerPool, m)
	scratch, err := fresh.PickGuess(history)
	require.NoError(t, err)

	assert.Equal(t, scratch, incremental)
}

func TestResetRestoresSelectorState(t *testing.T) {
	m := pattern.Build(trackerPool)
	history := []solver.Turn{{Guess: "tares", Code: pattern.Encode("tares", "aback")}}

	for _, sel := range allSelectors(trackerPool, m) {
		first, err := sel.PickGuess(history)
		require.NoError(t, err, sel.Name())

		sel.Reset()
		again, err := sel.PickGuess(history)
		require.NoError(t, err, sel.Name())
		assert.Equal(t, first, again, sel.Name())
	}
}

package results_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoaphamm/wordle-solver/internal/results"
)

func openTestStore(t *testing.T) *results.Store {
	t.Helper()
	st, err := results.Open(filepath.Join(t.TempDir(), "data", "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenCreatesParentDirAndSchema(t *testing.T) {
	st := openTestStore(t)

	// An empty store aggregates to nothing.
	sums, err := st.Summaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sums)
}

func TestInsertRunAndSummaries(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	runs := []results.Run{
		{Solver: "entropy", Secret: "aback", Won: true, Guesses: 3, NodesVisited: 0, ElapsedMs: 12},
		{Solver: "entropy", Secret: "crane", Won: true, Guesses: 5, ElapsedMs: 20},
		{Solver: "entropy", Secret: "slate", Won: false, Guesses: 10, ElapsedMs: 40},
		{Solver: "exhaustive", Secret: "aback", Won: true, Guesses: 6, NodesVisited: 42, ElapsedMs: 4},
	}
	for _, r := range runs {
		require.NoError(t, st.InsertRun(ctx, r))
	}

	sums, err := st.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 2)

	// Ordered by solver name.
	entropy, exhaustive := sums[0], sums[1]
	assert.Equal(t, "entropy", entropy.Solver)
	assert.Equal(t, 3, entropy.Games)
	assert.Equal(t, 2, entropy.Wins)
	// Average guesses counts won games only: (3+5)/2.
	assert.InDelta(t, 4.0, entropy.AvgGuesses, 1e-9)
	assert.InDelta(t, 24.0, entropy.AvgElapsedMs, 1e-9)

	assert.Equal(t, "exhaustive", exhaustive.Solver)
	assert.Equal(t, 1, exhaustive.Games)
	assert.Equal(t, 1, exhaustive.Wins)
	assert.InDelta(t, 6.0, exhaustive.AvgGuesses, 1e-9)
}

func TestSummariesWithNoWins(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertRun(ctx, results.Run{
		Solver: "static-frequency", Secret: "aback", Won: false, Guesses: 10, ElapsedMs: 8,
	}))

	sums, err := st.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, 0, sums[0].Wins)
	assert.Zero(t, sums[0].AvgGuesses)
}

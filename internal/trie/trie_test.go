package trie_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoaphamm/wordle-solver/internal/trie"
)

func TestInsertAndTraverse(t *testing.T) {
	tr := trie.New([]string{"crane", "crank", "aback"})
	assert.Equal(t, 3, tr.Len())

	assert.True(t, tr.Contains("crane"))
	assert.True(t, tr.Contains("crank"))
	assert.False(t, tr.Contains("cran"))
	assert.False(t, tr.Contains("slate"))

	node := tr.Traverse("cran")
	require.NotNil(t, node)
	assert.Equal(t, 4, node.Depth())
	assert.False(t, node.IsWord())
	assert.Equal(t, []byte{'e', 'k'}, node.Labels())

	assert.Nil(t, tr.Traverse("zz"))
}

func TestWordsAreLexicographic(t *testing.T) {
	tr := trie.New([]string{"slate", "aback", "crane", "crank"})
	assert.Equal(t, []string{"aback", "crane", "crank", "slate"}, trie.Words(tr.Root()))

	node := tr.Traverse("cr")
	require.NotNil(t, node)
	assert.Equal(t, []string{"crane", "crank"}, trie.Words(node))
}

func TestWalkStopsEarly(t *testing.T) {
	tr := trie.New([]string{"aback", "crane", "slate"})
	var seen []string
	trie.Walk(tr.Root(), func(w string) bool {
		seen = append(seen, w)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"aback", "crane"}, seen)
}

func TestExhaustiveSearchFindsSmallestWord(t *testing.T) {
	tr := trie.New([]string{"crane", "aback", "slate"})

	word, visited, ok := tr.ExhaustiveSearch()
	require.True(t, ok)
	assert.Equal(t, "aback", word)
	// Root plus the five letters of "aback": nothing else is dequeued.
	assert.Equal(t, 6, visited)

	// Deterministic across repeated calls.
	again, visitedAgain, ok := tr.ExhaustiveSearch()
	require.True(t, ok)
	assert.Equal(t, word, again)
	assert.Equal(t, visited, visitedAgain)
}

func TestExhaustiveSearchEmptyTrie(t *testing.T) {
	tr := trie.New(nil)
	_, visited, ok := tr.ExhaustiveSearch()
	assert.False(t, ok)
	assert.Equal(t, 1, visited) // root only
}

func TestSampleUnderBounds(t *testing.T) {
	words := []string{"aback", "abase", "abate", "crane", "crank", "slate"}
	tr := trie.New(words)
	rng := rand.New(rand.NewSource(7))

	samples := trie.SampleUnder(tr.Root(), 3, rng)
	assert.Len(t, samples, 3)
	for _, w := range samples {
		assert.Contains(t, words, w)
	}

	// Subtree smaller than k: every word comes back, no error.
	node := tr.Traverse("ab")
	require.NotNil(t, node)
	samples = trie.SampleUnder(node, 100, rng)
	assert.ElementsMatch(t, []string{"aback", "abase", "abate"}, samples)

	assert.Nil(t, trie.SampleUnder(node, 0, rng))
	assert.Nil(t, trie.SampleUnder(nil, 5, rng))
}

func TestSampleUnderSeededIsReproducible(t *testing.T) {
	words := []string{"aback", "abase", "abate", "crane", "crank", "slate", "stare", "store"}
	a := trie.SampleUnder(trie.New(words).Root(), 4, rand.New(rand.NewSource(42)))
	b := trie.SampleUnder(trie.New(words).Root(), 4, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

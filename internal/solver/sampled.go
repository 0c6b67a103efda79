// internal/solver/sampled.go
//
// Sampled/hybrid entropy selector, for latency-bounded use.
//
// Instead of scoring the whole vocabulary, the selector builds a guess
// letter by letter over a fixed trie of the full pool: at each of the five
// positions it scores every available next letter by the average entropy
// of a bounded random sample of words drawn from that letter's subtree,
// and takes the letter with the highest average. After the greedy word is
// constructed, it is compared against the single best word seen anywhere
// during the turn's sampling (tracked in the turn-scoped entropy cache)
// and the higher of the two wins; the path taken is logged.
//
// The sampling universe is deliberately the full pool while entropy is
// scored against the shrinking candidate set. The mismatch keeps the
// greedy construction exploring high-information probes that are no longer
// candidates themselves; it is an intentional approximation, not a bug to
// correct. Subtrees smaller than the sample size just contribute fewer
// samples.

package solver

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/trie"
)

// defaultSampleSize bounds per-branch sampling when the caller passes 0.
const defaultSampleSize = 250

// SampledEntropy is the greedy sampled-entropy selector.
type SampledEntropy struct {
	tracker    *Tracker
	m          *pattern.Matrix
	fixed      *trie.Trie // full pool; never re-pruned
	sampleSize int
	rng        *rand.Rand
	opener     string

	// Turn-scoped entropy cache: memoization and "best seen" pool at once.
	cache   map[string]float64
	cands   []string
	candIdx []int

	last Stats
}

// NewSampledEntropy builds the selector. sampleSize ≤ 0 selects the
// default; rng may be nil outside tests, in which case a time-seeded
// source is used.
func NewSampledEntropy(pool []string, m *pattern.Matrix, sampleSize int, rng *rand.Rand) *SampledEntropy {
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SampledEntropy{
		tracker:    NewTracker(pool, m),
		m:          m,
		fixed:      trie.New(pool),
		sampleSize: sampleSize,
		rng:        rng,
		opener:     defaultOpener,
		cache:      make(map[string]float64),
	}
}

// Name implements Selector.
func (s *SampledEntropy) Name() string { return "sampled-entropy" }

// SetOpener overrides the fixed first guess.
func (s *SampledEntropy) SetOpener(w string) { s.opener = w }

// PickGuess constructs the greedy word over the fixed trie, then returns
// whichever of (greedy word, best cache entry) carries more entropy.
func (s *SampledEntropy) PickGuess(history []Turn) (string, error) {
	if len(history) == 0 {
		s.last = Stats{Method: s.Name(), Word: s.opener}
		return s.opener, nil
	}

	s.cache = make(map[string]float64)
	if err := s.tracker.Apply(history); err != nil {
		return "", err
	}
	s.cands = s.tracker.Candidates()
	if len(s.cands) == 1 {
		s.last = Stats{Method: s.Name(), Word: s.cands[0]}
		return s.cands[0], nil
	}
	s.candIdx = candidateIndices(s.m, s.cands)

	greedy := s.buildGreedy()
	greedyH := s.entropyOf(greedy)

	bestCached, bestCachedH := "", -1.0
	for w, h := range s.cache {
		if h > bestCachedH || (h == bestCachedH && w < bestCached) {
			bestCached, bestCachedH = w, h
		}
	}

	final, switched := greedy, false
	if bestCached != "" && bestCachedH > greedyH {
		final, switched = bestCached, true
	}

	path := "greedy"
	if switched {
		path = "cache-substituted"
	}
	log.Debug().
		Str("solver", s.Name()).
		Str("path", path).
		Str("greedy", greedy).
		Float64("greedy_bits", greedyH).
		Str("word", final).
		Int("cache_size", len(s.cache)).
		Msg("sampled entropy pick")

	s.last = Stats{Method: s.Name(), Word: final, CacheSize: len(s.cache), Switched: switched}
	return final, nil
}

// buildGreedy descends the fixed trie, choosing at each position the child
// letter whose sampled subtree has the highest average entropy against the
// live candidates.
func (s *SampledEntropy) buildGreedy() string {
	node := s.fixed.Root()
	word := make([]byte, 0, pattern.WordLen)

	for i := 0; i < pattern.WordLen; i++ {
		var bestChar byte
		maxAvg := -1.0

		for _, c := range node.Labels() {
			child := node.Child(c)
			samples := trie.SampleUnder(child, s.sampleSize, s.rng)
			if len(samples) == 0 {
				continue
			}
			total := 0.0
			for _, w := range samples {
				total += s.entropyOf(w)
			}
			if avg := total / float64(len(samples)); avg > maxAvg {
				maxAvg = avg
				bestChar = c
			}
		}
		if bestChar == 0 {
			break
		}
		word = append(word, bestChar)
		node = node.Child(bestChar)
	}
	return string(word)
}

// entropyOf scores one word against the live candidates, memoized in the
// turn cache.
func (s *SampledEntropy) entropyOf(w string) float64 {
	if h, ok := s.cache[w]; ok {
		return h
	}
	h := singleEntropy(s.m, w, s.cands, s.candIdx)
	s.cache[w] = h
	return h
}

// Suggestions ranks the turn cache, best first.
func (s *SampledEntropy) Suggestions() []Suggestion {
	if len(s.cache) == 0 {
		return []Suggestion{{Word: s.opener}}
	}
	out := make([]Suggestion, 0, len(s.cache))
	for w, h := range s.cache {
		out = append(out, Suggestion{Word: w, Score: h})
	}
	return sortSuggestions(out)
}

// LastStats implements Selector.
func (s *SampledEntropy) LastStats() Stats { return s.last }

// Reset implements Selector.
func (s *SampledEntropy) Reset() {
	s.tracker.Reset()
	s.cache = make(map[string]float64)
	s.cands = nil
	s.candIdx = nil
	s.last = Stats{}
}

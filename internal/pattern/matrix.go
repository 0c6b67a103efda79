// internal/pattern/matrix.go
//
// Dense precomputed table of feedback codes over an indexed vocabulary.
//
// Build applies Encode to every ordered (guess, secret) pair once; after
// that every lookup is a single byte read. The build is the dominant
// one-time cost (O(n²·L) time, O(n²) bytes) and is parallelized across
// rows with errgroup; codes are pure functions of their inputs, so row
// order is irrelevant to the result.
//
// Lookup is deliberately partial: a word outside the indexed vocabulary is
// not an error, it just means the caller falls back to Encode. Eval wraps
// that fallback in one place.

package pattern

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Matrix is a read-only |words|×|words| code table. Row index is the guess,
// column index is the secret. Shared by reference across every selector in
// a run; never mutated after Build returns.
type Matrix struct {
	words []string
	index map[string]int
	codes []Code // row-major, len n*n
	n     int
}

type buildConfig struct {
	workers int
	onRow   func(done int)
}

// BuildOption tweaks the matrix build.
type BuildOption func(*buildConfig)

// WithWorkers bounds build parallelism. Defaults to GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress installs a per-row progress callback. It is invoked from
// multiple goroutines and must be safe for concurrent use.
func WithProgress(fn func(done int)) BuildOption {
	return func(c *buildConfig) { c.onRow = fn }
}

// Build precomputes the full code table for words. The slice order fixes
// the index layout; words must be well-formed (validated upstream).
func Build(wordList []string, opts ...BuildOption) *Matrix {
	cfg := buildConfig{workers: runtime.GOMAXPROCS(0)}
	for _, o := range opts {
		o(&cfg)
	}

	n := len(wordList)
	m := &Matrix{
		words: wordList,
		index: make(map[string]int, n),
		codes: make([]Code, n*n),
		n:     n,
	}
	for i, w := range wordList {
		m.index[w] = i
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for gi := 0; gi < n; gi++ {
		gi := gi
		g.Go(func() error {
			row := m.codes[gi*n : (gi+1)*n]
			guess := m.words[gi]
			for si, secret := range m.words {
				row[si] = Encode(guess, secret)
			}
			if cfg.onRow != nil {
				cfg.onRow(1)
			}
			return nil
		})
	}
	// Workers only write disjoint rows and never fail.
	_ = g.Wait()
	return m
}

// Len returns the number of indexed words.
func (m *Matrix) Len() int { return m.n }

// Words returns the indexed word list in index order. Callers must not
// mutate it.
func (m *Matrix) Words() []string { return m.words }

// Index returns the row/column index of w, if indexed.
func (m *Matrix) Index(w string) (int, bool) {
	i, ok := m.index[w]
	return i, ok
}

// WordAt returns the word at index i.
func (m *Matrix) WordAt(i int) string { return m.words[i] }

// Lookup returns the precomputed code for (guess, secret), or ok=false when
// either word lies outside the indexed vocabulary (the documented
// fallback trigger, not a caller error).
func (m *Matrix) Lookup(guess, secret string) (Code, bool) {
	gi, ok := m.index[guess]
	if !ok {
		return 0, false
	}
	si, ok := m.index[secret]
	if !ok {
		return 0, false
	}
	return m.codes[gi*m.n+si], true
}

// Eval returns the feedback code for (guess, secret): O(1) table read for
// indexed pairs, Encode fallback otherwise.
func (m *Matrix) Eval(guess, secret string) Code {
	if c, ok := m.Lookup(guess, secret); ok {
		return c
	}
	return Encode(guess, secret)
}

// Row returns the full code row for guess index gi (one code per secret).
// Callers must not mutate it.
func (m *Matrix) Row(gi int) []Code {
	return m.codes[gi*m.n : (gi+1)*m.n]
}

// CountCodes accumulates, into counts, the histogram of codes the guess at
// row gi induces over the secrets at the given column indices. This sliced
// read is the basis of the batch entropy computation: only candidate
// columns are touched, unrelated cells are skipped.
func (m *Matrix) CountCodes(gi int, cols []int, counts *[NumCodes]int) {
	row := m.codes[gi*m.n : (gi+1)*m.n]
	for _, si := range cols {
		counts[row[si]]++
	}
}

// main.go
//
// Solver evaluation harness.
// Plays every possible secret word against each configured selector,
// records one row per game in the results store, and logs per-solver
// summaries at the end.
//
// Environment:
//   LOG_LEVEL    zerolog level (default "info")
//   SOLVERS      comma-separated selector names (default: all five)
//   RESULTS_DB   SQLite path for run records (default ./data/results.db)
//   SEED         RNG seed for the sampled selector (default 1)
//   SAMPLE_SIZE  per-branch sample bound for the sampled selector
//   MAX_ATTEMPTS guess budget per game (default 10; solvers are measured
//                past the classic 6-row board, like-for-like)
//   WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE: see internal/words.

package main

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/khoaphamm/wordle-solver/internal/game"
	"github.com/khoaphamm/wordle-solver/internal/pattern"
	"github.com/khoaphamm/wordle-solver/internal/results"
	"github.com/khoaphamm/wordle-solver/internal/solver"
	"github.com/khoaphamm/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	vocab, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	possibleCount, allowedCount := vocab.Stats()
	log.Info().Int("possible", possibleCount).Int("allowed", allowedCount).Msg("word lists loaded")

	bar := progressbar.Default(int64(allowedCount), "building pattern matrix")
	start := time.Now()
	matrix := pattern.Build(vocab.Allowed, pattern.WithProgress(func(done int) {
		_ = bar.Add(done)
	}))
	log.Info().Dur("elapsed", time.Since(start)).Int("words", matrix.Len()).Msg("pattern matrix built")

	store, err := results.Open(getEnv("RESULTS_DB", "./data/results.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results store")
	}
	defer store.Close()

	seed := getEnvInt("SEED", 1)
	sampleSize := getEnvInt("SAMPLE_SIZE", 0)
	maxAttempts := getEnvInt("MAX_ATTEMPTS", 10)

	ctx := context.Background()
	names := strings.Split(getEnv("SOLVERS", "exhaustive,static-frequency,dynamic-frequency,entropy,sampled-entropy"), ",")
	for _, name := range names {
		name = strings.TrimSpace(name)
		sel, err := newSelector(name, vocab, matrix, sampleSize, int64(seed))
		if err != nil {
			log.Fatal().Err(err).Str("solver", name).Msg("unknown solver")
		}
		evaluate(ctx, sel, vocab, matrix, store, maxAttempts)
	}

	summaries, err := store.Summaries(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read summaries")
	}
	for _, sm := range summaries {
		log.Info().
			Str("solver", sm.Solver).
			Int("games", sm.Games).
			Int("wins", sm.Wins).
			Float64("avg_guesses", sm.AvgGuesses).
			Float64("avg_elapsed_ms", sm.AvgElapsedMs).
			Msg("solver summary")
	}
}

// newSelector maps a name to a constructed selector. Every selector plays
// fair: the pool is the allowed list, never the (smaller) secret list.
func newSelector(name string, vocab *words.Vocabulary, m *pattern.Matrix, sampleSize int, seed int64) (solver.Selector, error) {
	pool := vocab.Allowed
	switch name {
	case "exhaustive":
		return solver.NewExhaustive(pool, m), nil
	case "static-frequency":
		return solver.NewStaticFrequency(pool, m), nil
	case "dynamic-frequency":
		return solver.NewDynamicFrequency(pool, m), nil
	case "entropy":
		return solver.NewEntropy(pool, m), nil
	case "sampled-entropy":
		rng := rand.New(rand.NewSource(seed))
		return solver.NewSampledEntropy(pool, m, sampleSize, rng), nil
	default:
		return nil, errUnknownSolver(name)
	}
}

type errUnknownSolver string

func (e errUnknownSolver) Error() string { return "unknown solver: " + string(e) }

// evaluate plays every possible secret with one selector and records the
// outcome of each game.
func evaluate(ctx context.Context, sel solver.Selector, vocab *words.Vocabulary, m *pattern.Matrix, store *results.Store, maxAttempts int) {
	bar := progressbar.Default(int64(len(vocab.Possible)), sel.Name())
	for _, secret := range vocab.Possible {
		run, err := playGame(sel, vocab, m, secret, maxAttempts)
		if err != nil {
			// An empty candidate set mid-game means the feedback source
			// and codec disagree; that must never pass silently.
			log.Fatal().Err(err).Str("solver", sel.Name()).Str("secret", secret).Msg("game aborted")
		}
		if err := store.InsertRun(ctx, run); err != nil {
			log.Fatal().Err(err).Msg("failed to record run")
		}
		sel.Reset()
		_ = bar.Add(1)
	}
}

// playGame runs a single game to completion and returns the run record.
func playGame(sel solver.Selector, vocab *words.Vocabulary, m *pattern.Matrix, secret string, maxAttempts int) (results.Run, error) {
	g := game.New(vocab, m, secret)
	g.MaxAttempts = maxAttempts

	var history []solver.Turn
	nodes := 0
	start := time.Now()

	for !g.Finished {
		guess, err := sel.PickGuess(history)
		if err != nil {
			return results.Run{}, err
		}
		code, err := g.MakeGuess(guess)
		if err != nil {
			return results.Run{}, err
		}
		history = append(history, solver.Turn{Guess: guess, Code: code})
		nodes += sel.LastStats().NodesVisited
	}

	return results.Run{
		Solver:       sel.Name(),
		Secret:       secret,
		Won:          g.Won,
		Guesses:      len(g.Attempts),
		NodesVisited: nodes,
		ElapsedMs:    int(time.Since(start).Milliseconds()),
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

package experiments

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"
	"wordle/config"
	"wordle/engine"
	"wordle/experiments/metrics"
	"wordle/searcher"
	"wordle/words"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a solver over a set of games.
type Stats struct {
	Games        int
	WinRate      float64
	AvgGuesses   float64 // Over won games, 0 without any
	Distribution []int   // Guesses per game, 0 for a lost game
	Records      []metrics.GameMetric
	Moves        [][]metrics.MoveMetric
}

// Evaluate plays one game per secret, drawn from words without replacement,
// and summarizes the outcomes. A game in which the strategy runs out of
// moves counts as lost; any other search error aborts the evaluation.
func Evaluate(strategy searcher.Strategy, candidates []string, games, maxAttempts int, rng *rand.Rand) (Stats, error) {
	secrets := words.Sample(candidates, games, rng)
	stats := Stats{Games: len(secrets)}
	if len(secrets) == 0 {
		return stats, nil
	}

	var wins []float64
	for i, secret := range secrets {
		e := engine.LocalEngine(secret, maxAttempts, strategy, candidates)
		gameMetric, moveMetrics, err := e.Run()
		if err != nil && !errors.Is(err, searcher.ErrNoLegalMoves) {
			return Stats{}, fmt.Errorf("game %d with secret %s: %w", i+1, secret, err)
		}

		stats.Records = append(stats.Records, gameMetric)
		stats.Moves = append(stats.Moves, moveMetrics)
		if gameMetric.Won {
			wins = append(wins, float64(gameMetric.Guesses))
			stats.Distribution = append(stats.Distribution, gameMetric.Guesses)
		} else {
			stats.Distribution = append(stats.Distribution, 0)
		}
		log.Debug().Msgf("secret: %s, attempts: %d, win: %t", secret, gameMetric.Guesses, gameMetric.Won)
	}

	stats.WinRate = float64(len(wins)) / float64(len(secrets))
	if len(wins) > 0 {
		stats.AvgGuesses = stat.Mean(wins, nil)
	}
	return stats, nil
}

// Histogram counts games per number of guesses from 1 to maxAttempts, then
// the lost games as "fail".
func Histogram(solver string, distribution []int, maxAttempts int) []metrics.DistributionRow {
	counts := make([]int, maxAttempts+1)
	for _, guesses := range distribution {
		if guesses >= 0 && guesses <= maxAttempts {
			counts[guesses]++
		}
	}

	rows := make([]metrics.DistributionRow, 0, maxAttempts+1)
	for g := 1; g <= maxAttempts; g++ {
		rows = append(rows, metrics.DistributionRow{Solver: solver, Guesses: strconv.Itoa(g), Count: counts[g]})
	}
	return append(rows, metrics.DistributionRow{Solver: solver, Guesses: "fail", Count: counts[0]})
}

// NewStrategy builds the strategy a solver entry describes.
func NewStrategy(s config.Solver, rng *rand.Rand, goroutines int) (searcher.Strategy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	policy, err := s.PlayoutPolicy()
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithRand(rng),
		searcher.WithPolicy(policy),
		searcher.WithGoroutines(goroutines),
		searcher.WithMetrics(),
	}
	if s.Exploration > 0 {
		options = append(options, searcher.WithExploration(s.Exploration))
	}
	if s.RaveBias > 0 {
		options = append(options, searcher.WithRaveBias(s.RaveBias))
	}

	switch s.Strategy {
	case config.Flat:
		return searcher.NewFlatMC(s.Playouts, options...)
	case config.UCT:
		return searcher.NewUCT(s.Iterations, options...)
	case config.RAVE:
		return searcher.NewRAVE(s.Iterations, options...)
	case config.GRAVE:
		return searcher.NewGRAVE(s.Iterations, options...)
	case config.NMCS:
		return searcher.NewNMCS(s.Level, options...)
	default:
		return searcher.NewRandom(options...), nil
	}
}

// Seed resolves the experiment seed, 0 meaning the current time.
func Seed(cfg config.Experiment) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// RunComparisons evaluates every configured solver on the same secrets and
// stores the results under the experiment's output directory.
func RunComparisons(ctx context.Context, cfg config.Experiment) ([]metrics.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := Seed(cfg)
	log.Info().Msgf("starting %s experiment with seed %d...", cfg.Name, seed)

	candidates, err := words.Load(cfg.Wordlist, cfg.Limit, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("loaded %d words from %s", len(candidates), cfg.Wordlist)

	results := make([]metrics.Result, 0, len(cfg.Solvers))
	distribution := []metrics.DistributionRow{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	master := rand.New(rand.NewSource(seed))
	count := 0

	for si, solver := range cfg.Solvers {
		log.Info().Msgf("=== evaluating %s (%d of %d) ===", solver.Name, si+1, len(cfg.Solvers))

		strategy, err := NewStrategy(solver, rand.New(rand.NewSource(master.Uint64())), cfg.Goroutines)
		if err != nil {
			return nil, err
		}
		// Same secrets for every solver
		stats, err := Evaluate(strategy, candidates, cfg.Games, cfg.MaxAttempts, rand.New(rand.NewSource(seed+1)))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", solver.Name, err)
		}

		results = append(results, metrics.Result{
			Solver:     solver.Name,
			Games:      stats.Games,
			WinRate:    stats.WinRate,
			AvgGuesses: stats.AvgGuesses,
		})
		distribution = append(distribution, Histogram(solver.Name, stats.Distribution, cfg.MaxAttempts)...)
		for gi, gameMetric := range stats.Records {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{ID: count, Solver: solver.Name, GameMetric: gameMetric})
			for _, mm := range stats.Moves[gi] {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, Solver: solver.Name, MoveMetric: mm})
			}
		}

		log.Info().Str("solver", solver.Name).Float64("win_rate", stats.WinRate).
			Float64("avg_guesses", stats.AvgGuesses).Msgf("completed %s", solver.Name)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	for _, r := range results {
		log.Info().Msgf("%-20s win rate %.2f, avg guesses %.2f", r.Solver, r.WinRate, r.AvgGuesses)
	}

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := store(writer, cfg, seed, results, distribution, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msgf("results saved to %s", writer.Dir())

	if cfg.SQLite != "" {
		experiment := cfg.Name + "/" + filepath.Base(writer.Dir())
		if err := persist(ctx, cfg.SQLite, experiment, results, gameRecords); err != nil {
			return nil, err
		}
		log.Info().Msgf("results saved to %s as %s", cfg.SQLite, experiment)
	}
	return results, nil
}

func store(w *metrics.Writer, cfg config.Experiment, seed uint64, results []metrics.Result,
	distribution []metrics.DistributionRow, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	setup := cfg
	setup.Seed = seed
	if err := w.WriteSetup(setup); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	if err := w.WriteResults(results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	if err := w.WriteDistribution(distribution); err != nil {
		return fmt.Errorf("failed to write distribution: %w", err)
	}
	if err := w.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := w.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func persist(ctx context.Context, dsn, experiment string, results []metrics.Result, games []metrics.GameRecord) error {
	s, err := metrics.OpenStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to open results store: %w", err)
	}
	defer s.Close()

	if err := s.InsertResults(ctx, experiment, results); err != nil {
		return fmt.Errorf("failed to store results: %w", err)
	}
	if err := s.InsertGameRecords(ctx, experiment, games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	return nil
}

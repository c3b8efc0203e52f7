package main

import (
	"context"
	"flag"
	"os"
	"time"
	"wordle/config"
	"wordle/engine"
	"wordle/experiments"
	"wordle/experiments/metrics"
	"wordle/words"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func main() {
	configPath := flag.String("config", "", "Experiment YAML file, defaults when empty")
	games := flag.Int("games", 0, "Games per solver, overrides the config")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config")
	limit := flag.Int("limit", -1, "Word list sample size, overrides the config")
	secret := flag.String("secret", "", "Play a single game against this secret")
	solver := flag.String("solver", "", "Solver name for a single game, the first configured one when empty")
	throughput := flag.Int("throughput", 0, "Time flat Monte-Carlo with this many playouts per move across worker counts")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *limit >= 0 {
		cfg.Limit = *limit
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	switch {
	case *secret != "":
		playOne(cfg, *solver, *secret)
	case *throughput > 0:
		runThroughput(cfg, *throughput)
	default:
		if _, err := experiments.RunComparisons(context.Background(), cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	}
}

func playOne(cfg config.Experiment, name, secret string) {
	s := cfg.Solvers[0]
	if name != "" {
		var ok bool
		if s, ok = cfg.Find(name); !ok {
			log.Fatal().Str("solver", name).Msg("unknown solver")
		}
	}

	seed := experiments.Seed(cfg)
	candidates, err := words.Load(cfg.Wordlist, cfg.Limit, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if !slices.Contains(candidates, secret) {
		log.Warn().Str("secret", secret).Msg("secret is not in the word list, the solver cannot find it")
	}

	strategy, err := experiments.NewStrategy(s, rand.New(rand.NewSource(seed)), cfg.Goroutines)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create solver")
	}

	log.Info().Msgf("%s is playing against %s with %d words", s.Name, secret, len(candidates))
	gameMetric, moveMetrics, err := engine.LocalEngine(secret, cfg.MaxAttempts, strategy, candidates).Run()
	for _, mm := range moveMetrics {
		log.Info().Msgf("guess %d: %s %s (%d candidates, %s)", mm.Step, mm.Guess, mm.Feedback, mm.Candidates, mm.Duration)
	}
	if err != nil {
		log.Error().Err(err).Msg("solver gave up")
	}
	log.Info().Bool("won", gameMetric.Won).Int("guesses", gameMetric.Guesses).Msgf("game over after %s", gameMetric.Duration)
}

func runThroughput(cfg config.Experiment, playouts int) {
	seed := experiments.Seed(cfg)
	candidates, err := words.Load(cfg.Wordlist, cfg.Limit, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	rows, err := experiments.RunThroughput(candidates, candidates[0], playouts, experiments.Workers(cfg.Goroutines), seed)
	if err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}

	writer, err := metrics.NewWriter(cfg.Output, "throughput")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if err := writer.WriteThroughput(rows); err != nil {
		log.Fatal().Err(err).Msg("failed to write throughput")
	}
	log.Info().Msgf("results saved to %s", writer.Dir())
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package experiments

import (
	"fmt"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/searcher"
	"wordle/searcher/playout"

	"github.com/rs/zerolog/log"
)

// Workers doubles from 1 up to max, always ending at max.
func Workers(max int) []int {
	var out []int
	for g := 1; g < max; g *= 2 {
		out = append(out, g)
	}
	return append(out, max)
}

// RunThroughput times one flat Monte-Carlo search from the opening position
// per worker count. Every run uses the same seed, so the chosen move only
// varies if the parallel search is broken.
func RunThroughput(candidates []string, secret string, playouts int, workers []int, seed uint64) ([]metrics.ThroughputRow, error) {
	log.Info().Msgf("starting throughput experiment with %d playouts per move...", playouts)

	rows := make([]metrics.ThroughputRow, 0, len(workers))
	for _, g := range workers {
		flat, err := searcher.NewFlatMC(playouts,
			searcher.WithSeed(seed),
			searcher.WithGoroutines(g),
			searcher.WithPolicy(playout.New(playout.Random)),
			searcher.WithMetrics())
		if err != nil {
			return nil, err
		}

		move, searchMetric, err := flat.FindMove(game.New(secret, game.DefaultMaxAttempts), candidates)
		if err != nil {
			return nil, fmt.Errorf("search with %d goroutines: %w", g, err)
		}
		rows = append(rows, metrics.ThroughputRow{Goroutines: g, Move: move, SearchMetric: searchMetric})

		log.Info().Msgf("goroutines=%d move=%s duration=%s playouts/s=%.1f",
			g, move, searchMetric.Duration, searchMetric.PlayoutsPerSecond())
	}

	log.Info().Msg("completed throughput experiment")
	return rows, nil
}

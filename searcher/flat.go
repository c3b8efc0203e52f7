package searcher

import (
	"fmt"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// FlatMC scores every legal move by the average outcome of a fixed number
// of playouts from the state after that move.
type FlatMC struct {
	config
	playouts int
}

func NewFlatMC(playouts int, options ...Option) (*FlatMC, error) {
	if playouts <= 0 {
		return nil, fmt.Errorf("%w: playouts must be positive, got %d", ErrInvalidInput, playouts)
	}
	return &FlatMC{config: newConfig(options), playouts: playouts}, nil
}

func (f *FlatMC) Name() string { return "flat-mc" }

func (f *FlatMC) FindMove(state *game.State, words []string) (string, metrics.SearchMetric, error) {
	legal, err := f.begin(f.Name(), state, words)
	if err != nil {
		return "", metrics.SearchMetric{}, err
	}
	if len(legal) == 1 {
		return legal[0], f.metrics.Complete(), nil
	}

	// One source per move, drawn up front, so the worker count cannot change
	// which random numbers a move sees
	seeds := make([]uint64, len(legal))
	for i := range seeds {
		seeds[i] = f.rng.Uint64()
	}

	averages := make([]float64, len(legal))
	var g errgroup.Group
	g.SetLimit(f.goroutines)
	for i, move := range legal {
		i, move := i, move
		g.Go(func() error {
			averages[i] = f.evaluate(state, move, words, rand.New(rand.NewSource(seeds[i])))
			f.metrics.AddEpisode()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", metrics.SearchMetric{}, err
	}

	best := utils.ArgMax(averages)
	log.Debug().Str("move", legal[best]).Float64("average", averages[best]).Int("candidates", len(legal)).Msg("flat monte-carlo search complete")
	return legal[best], f.metrics.Complete(), nil
}

func (f *FlatMC) evaluate(state *game.State, move string, words []string, rng *rand.Rand) float64 {
	next := state.Clone()
	next.Play(move)

	sum := 0.0
	for i := 0; i < f.playouts; i++ {
		sum += f.policy.Playout(next, words, rng).Reward
		f.metrics.AddPlayout()
	}
	return sum / float64(f.playouts)
}

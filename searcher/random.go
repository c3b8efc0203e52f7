package searcher

import (
	"wordle/experiments/metrics"
	"wordle/game"
)

// Random guesses uniformly among the legal moves.
type Random struct {
	config
}

func NewRandom(options ...Option) *Random {
	return &Random{config: newConfig(options)}
}

func (r *Random) Name() string { return "random" }

func (r *Random) FindMove(state *game.State, words []string) (string, metrics.SearchMetric, error) {
	legal, err := r.begin(r.Name(), state, words)
	if err != nil {
		return "", metrics.SearchMetric{}, err
	}
	return r.pickRandom(legal), r.metrics.Complete(), nil
}

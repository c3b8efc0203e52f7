package searcher

import (
	"fmt"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/utils"
)

// NMCS is Nested Monte-Carlo Search. A level-L search rates every legal move
// by playing it, letting a level L-1 search pick the following guess, and
// finishing the game with the playout policy. Level 0 guesses at random.
type NMCS struct {
	config
	level int
}

func NewNMCS(level int, options ...Option) (*NMCS, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: level must not be negative, got %d", ErrInvalidInput, level)
	}
	return &NMCS{config: newConfig(options), level: level}, nil
}

func (n *NMCS) Name() string { return fmt.Sprintf("nmcs-%d", n.level) }

func (n *NMCS) FindMove(state *game.State, words []string) (string, metrics.SearchMetric, error) {
	legal, err := n.begin(n.Name(), state, words)
	if err != nil {
		return "", metrics.SearchMetric{}, err
	}
	if len(legal) == 1 {
		return legal[0], n.metrics.Complete(), nil
	}
	return n.search(state, legal, words, n.level), n.metrics.Complete(), nil
}

func (n *NMCS) search(state *game.State, legal, words []string, level int) string {
	if level == 0 {
		return n.pickRandom(legal)
	}

	scores := make([]float64, len(legal))
	for i, move := range legal {
		next := state.Clone()
		next.Play(move)
		scores[i] = n.evaluate(next, words, level-1)
		n.metrics.AddEpisode()
	}
	return legal[utils.ArgMax(scores)]
}

// evaluate finishes the game after one move, nesting at the given level.
func (n *NMCS) evaluate(state *game.State, words []string, level int) float64 {
	if state.IsTerminal() {
		return state.Score()
	}

	legal := state.LegalMoves(words)
	if len(legal) == 0 {
		return game.Loss
	}
	state.Play(n.search(state, legal, words, level))

	n.metrics.AddPlayout()
	return n.policy.Playout(state, words, n.rng).Reward
}

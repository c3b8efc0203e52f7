package searcher

import (
	"fmt"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/utils"

	"github.com/rs/zerolog/log"
)

type variant int

const (
	plain variant = iota // UCB1 on direct statistics
	rave                 // blended with all-moves-as-first, fixed bias
	grave                // blended with all-moves-as-first, adaptive weight
)

var variantNames = map[variant]string{plain: "uct", rave: "uct-rave", grave: "uct-grave"}

// MCTS is UCT tree search, optionally with RAVE or GRAVE value estimates.
// The tree is rebuilt from scratch for every move.
type MCTS struct {
	config
	iterations int
	variant    variant
}

func NewUCT(iterations int, options ...Option) (*MCTS, error) {
	return newMCTS(plain, iterations, options)
}

func NewRAVE(iterations int, options ...Option) (*MCTS, error) {
	return newMCTS(rave, iterations, options)
}

func NewGRAVE(iterations int, options ...Option) (*MCTS, error) {
	return newMCTS(grave, iterations, options)
}

func newMCTS(v variant, iterations int, options []Option) (*MCTS, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidInput, iterations)
	}
	return &MCTS{config: newConfig(options), iterations: iterations, variant: v}, nil
}

func (m *MCTS) Name() string { return variantNames[m.variant] }

func (m *MCTS) FindMove(state *game.State, words []string) (string, metrics.SearchMetric, error) {
	legal, err := m.begin(m.Name(), state, words)
	if err != nil {
		return "", metrics.SearchMetric{}, err
	}
	if len(legal) == 1 {
		return legal[0], m.metrics.Complete(), nil
	}

	t := newTree()
	for i := 0; i < m.iterations; i++ {
		m.simulate(t, state, words)
		m.metrics.AddEpisode()
	}

	root := state.Key()
	if t.visits[root] == 0 { // No statistics to choose from
		return m.pickRandom(legal), m.metrics.Complete(), nil
	}

	values := make([]float64, len(legal))
	for i, move := range legal {
		s := t.edge(root, move)
		values[i] = mean(s.rewards, s.visits)
	}
	best := utils.ArgMax(values)

	log.Debug().Str("strategy", m.Name()).Int("iterations", m.iterations).Int("nodes", len(t.children)).
		Str("move", legal[best]).Float64("value", values[best]).Msg("tree search complete")
	return legal[best], m.metrics.Complete(), nil
}

func (m *MCTS) simulate(t *tree, root *game.State, words []string) {
	node := root.Clone()
	var path []edge
	var trajectory []string

	// Selection
	key := node.Key()
	for !node.IsTerminal() && t.expanded(key) {
		move := m.pickChild(t, key)
		path = append(path, edge{state: key, move: move})
		trajectory = append(trajectory, move)
		node.Play(move)
		key = node.Key()
	}

	// Expansion
	if !node.IsTerminal() {
		t.children[key] = node.LegalMoves(words)
	}

	// Simulation
	result := m.policy.Playout(node, words, m.rng)
	m.metrics.AddPlayout()
	trajectory = append(trajectory, result.Moves...)

	// Backpropagation
	t.backup(path, result.Reward)
	if m.variant != plain {
		t.backupAMAF(trajectory, result.Reward)
	}
}

func (m *MCTS) pickChild(t *tree, key game.Key) string {
	children := t.children[key]
	stateVisits := t.visits[key]

	scores := make([]float64, len(children))
	for i, move := range children {
		s := t.edge(key, move)
		scores[i] = m.value(t, move, s) + exploration(m.exploration, stateVisits, s.visits)
	}
	return children[utils.ArgMax(scores)]
}

func (m *MCTS) value(t *tree, move string, s stats) float64 {
	q := mean(s.rewards, s.visits)
	if m.variant == plain {
		return q
	}

	a := t.action(move)
	var beta float64
	if m.variant == rave {
		beta = raveBeta(s.visits, m.raveBias)
	} else {
		beta = graveBeta(s.visits, a.visits)
	}
	return blend(beta, q, mean(a.rewards, a.visits))
}

package searcher

import (
	"errors"
	"fmt"
	"time"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/searcher/playout"

	"golang.org/x/exp/rand"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrGameOver     = errors.New("game is over")
)

// Strategy picks the next guess of a game. Implementations keep no search
// statistics between calls.
type Strategy interface {
	Name() string
	FindMove(state *game.State, words []string) (string, metrics.SearchMetric, error)
}

type Option func(c *config)

type config struct {
	rng         *rand.Rand
	policy      playout.Policy
	exploration float64
	raveBias    float64
	goroutines  int
	metrics     metrics.Collector
}

func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPolicy sets the playout policy used to finish simulated games.
func WithPolicy(policy playout.Policy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

func WithExploration(constant float64) Option {
	return func(c *config) {
		if constant >= 0 {
			c.exploration = constant
		}
	}
}

func WithRaveBias(k float64) Option {
	return func(c *config) {
		if k > 0 {
			c.raveBias = k
		}
	}
}

// WithGoroutines spreads flat Monte-Carlo playouts over workers.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		policy:      playout.New(playout.Random),
		exploration: Exploration,
		raveBias:    RaveBias,
		goroutines:  1,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}

// begin checks the inputs of a search and returns the root's legal moves.
func (c *config) begin(name string, state *game.State, words []string) ([]string, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil state", ErrInvalidInput)
	}
	if err := game.Validate(words, state.WordLength()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if state.IsTerminal() {
		return nil, ErrGameOver
	}
	legal := state.LegalMoves(words)
	if len(legal) == 0 {
		return nil, ErrNoLegalMoves
	}
	c.metrics.Start(name, len(legal))
	return legal, nil
}

func (c *config) pickRandom(legal []string) string {
	return legal[c.rng.Intn(len(legal))]
}

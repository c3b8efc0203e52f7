package engine

import (
	"errors"
	"fmt"
	"time"
	"wordle/experiments/metrics"
	"wordle/game"
	"wordle/searcher"

	"github.com/rs/zerolog/log"
)

// Local drives one game with a secret known to the engine.
type Local struct {
	State    *game.State
	Strategy searcher.Strategy
	Words    []string
	secret   string
}

func LocalEngine(secret string, maxAttempts int, strategy searcher.Strategy, words []string) *Local {
	if strategy == nil {
		panic("need a strategy to play")
	}

	return &Local{
		State:    game.New(secret, maxAttempts),
		Strategy: strategy,
		Words:    words,
		secret:   secret,
	}
}

// Run asks the strategy for a guess and plays it until the game is over. A
// strategy without a move ends the game as a loss and the error is returned
// with the metrics of the moves played so far.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	log.Debug().Str("strategy", e.Strategy.Name()).Str("secret", e.secret).Msg("game started")

	var moveMetrics []metrics.MoveMetric
	var err error
	for !e.State.IsTerminal() {
		step := e.State.Len() + 1
		guess, searchMetric, findErr := e.Strategy.FindMove(e.State, e.Words)
		if findErr != nil {
			err = fmt.Errorf("%s failed at step %d: %w", e.Strategy.Name(), step, findErr)
			break
		}

		feedback := e.State.Feedback(guess)
		e.State.Play(guess)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Guess:        guess,
			Feedback:     string(feedback),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("guess", guess).Str("feedback", string(feedback)).Msg("played")
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Secret:    e.secret,
		Won:       e.State.IsWon(),
		Guesses:   e.State.Len(),
		NoMove:    errors.Is(err, searcher.ErrNoLegalMoves),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if err != nil {
		log.Warn().Err(err).Str("secret", e.secret).Msg("game ended without a move")
	}
	return gameMetric, moveMetrics, err
}

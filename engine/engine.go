package engine

import "wordle/experiments/metrics"

type Engine interface {
	// Run plays a game until it is won, the attempts run out or the strategy has no move left
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

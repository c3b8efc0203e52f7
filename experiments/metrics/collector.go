package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Duration   time.Duration
	Episodes   int // Tree iterations, evaluated moves or nested evaluations
	Playouts   int
	Candidates int // Legal moves at the root
}

func (m SearchMetric) PlayoutsPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Playouts) / m.Duration.Seconds()
}

type MoveMetric struct {
	Step     int
	Guess    string
	Feedback string
	SearchMetric
}

type GameMetric struct {
	Secret    string
	Won       bool
	Guesses   int
	NoMove    bool // Strategy ran out of consistent candidates
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(strategy string, candidates int)
	AddEpisode()
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	candidates int
	startTime  time.Time
	episodes   atomic.Int32
	playouts   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, candidates int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.candidates = candidates
	m.episodes.Store(0)
	m.playouts.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Duration:   time.Since(m.startTime),
		Episodes:   int(m.episodes.Load()),
		Playouts:   int(m.playouts.Load()),
		Candidates: m.candidates,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, candidates int) {}
func (m *dummyCollector) AddEpisode()                           {}
func (m *dummyCollector) AddPlayout()                           {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }

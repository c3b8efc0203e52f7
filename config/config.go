// Package config describes an experiment: which word list to play on, how
// many games, and which solvers to compare.
package config

import (
	"errors"
	"fmt"
	"os"
	"wordle/game"
	"wordle/searcher/playout"

	"gopkg.in/yaml.v3"
)

// Strategy names accepted in a solver entry
const (
	Random = "random"
	Flat   = "flat"
	UCT    = "uct"
	RAVE   = "rave"
	GRAVE  = "grave"
	NMCS   = "nmcs"
)

const (
	DefaultGames      = 50
	DefaultLimit      = 1000
	DefaultGoroutines = 8
	DefaultPlayouts   = 50
	DefaultIterations = 100
)

var ErrInvalidConfig = errors.New("invalid config")

type Solver struct {
	Name        string  `yaml:"name"`
	Strategy    string  `yaml:"strategy"`
	Playouts    int     `yaml:"playouts,omitempty"`
	Iterations  int     `yaml:"iterations,omitempty"`
	Level       int     `yaml:"level,omitempty"`
	Policy      string  `yaml:"policy,omitempty"`
	Alpha       float64 `yaml:"alpha,omitempty"`       // 0 keeps the policy default
	Exploration float64 `yaml:"exploration,omitempty"` // 0 keeps the searcher default
	RaveBias    float64 `yaml:"rave_bias,omitempty"`
}

type Experiment struct {
	Name        string   `yaml:"name"`
	Wordlist    string   `yaml:"wordlist"`
	Limit       int      `yaml:"limit"` // 0 keeps the whole list
	Games       int      `yaml:"games"`
	MaxAttempts int      `yaml:"max_attempts"`
	Seed        uint64   `yaml:"seed"` // 0 seeds from the clock
	Output      string   `yaml:"output"`
	SQLite      string   `yaml:"sqlite,omitempty"`
	Goroutines  int      `yaml:"goroutines"`
	Solvers     []Solver `yaml:"solvers"`
}

// Default compares the baseline against the main search families.
func Default() Experiment {
	return Experiment{
		Name:        "comparisons",
		Wordlist:    "wordlist.txt",
		Limit:       DefaultLimit,
		Games:       DefaultGames,
		MaxAttempts: game.DefaultMaxAttempts,
		Output:      "results",
		Goroutines:  DefaultGoroutines,
		Solvers: []Solver{
			{Name: "RandomSolver", Strategy: Random},
			{Name: "FlatMC (entropy)", Strategy: Flat, Playouts: DefaultPlayouts, Policy: "entropy"},
			{Name: "UCT", Strategy: UCT, Iterations: DefaultIterations, Policy: "random"},
			{Name: "UCT+GRAVE", Strategy: GRAVE, Iterations: DefaultIterations, Policy: "frequency+"},
		},
	}
}

// Load reads a YAML experiment on top of the defaults. Listing solvers
// replaces the default ones.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Experiment{}, err
	}
	return cfg, nil
}

func (e Experiment) Validate() error {
	switch {
	case e.Wordlist == "":
		return fmt.Errorf("%w: missing wordlist", ErrInvalidConfig)
	case e.Limit < 0:
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, e.Limit)
	case e.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, e.Games)
	case e.MaxAttempts <= 0:
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalidConfig, e.MaxAttempts)
	case e.Goroutines <= 0:
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, e.Goroutines)
	case len(e.Solvers) == 0:
		return fmt.Errorf("%w: no solvers", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(e.Solvers))
	for _, s := range e.Solvers {
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate solver %q", ErrInvalidConfig, s.Name)
		}
		names[s.Name] = true
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the solver with the given name.
func (e Experiment) Find(name string) (Solver, bool) {
	for _, s := range e.Solvers {
		if s.Name == name {
			return s, true
		}
	}
	return Solver{}, false
}

func (s Solver) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: solver without a name", ErrInvalidConfig)
	}
	if _, err := s.PlayoutPolicy(); err != nil {
		return fmt.Errorf("%w: solver %q: %w", ErrInvalidConfig, s.Name, err)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return fmt.Errorf("%w: solver %q: alpha must be within [0, 1], got %v", ErrInvalidConfig, s.Name, s.Alpha)
	}
	if s.Exploration < 0 || s.RaveBias < 0 {
		return fmt.Errorf("%w: solver %q: exploration and rave_bias must not be negative", ErrInvalidConfig, s.Name)
	}

	switch s.Strategy {
	case Random:
	case Flat:
		if s.Playouts <= 0 {
			return fmt.Errorf("%w: solver %q: playouts must be positive", ErrInvalidConfig, s.Name)
		}
	case UCT, RAVE, GRAVE:
		if s.Iterations <= 0 {
			return fmt.Errorf("%w: solver %q: iterations must be positive", ErrInvalidConfig, s.Name)
		}
	case NMCS:
		if s.Level < 0 {
			return fmt.Errorf("%w: solver %q: level must not be negative", ErrInvalidConfig, s.Name)
		}
	default:
		return fmt.Errorf("%w: solver %q: unknown strategy %q", ErrInvalidConfig, s.Name, s.Strategy)
	}
	return nil
}

// PlayoutPolicy resolves the policy name, random when empty, with the
// configured alpha.
func (s Solver) PlayoutPolicy() (playout.Policy, error) {
	if s.Policy == "" {
		return playout.New(playout.Random), nil
	}
	p, err := playout.Parse(s.Policy)
	if err != nil {
		return playout.Policy{}, err
	}
	if s.Alpha > 0 {
		p = p.WithAlpha(s.Alpha)
	}
	return p, nil
}

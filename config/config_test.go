package config

import (
	"os"
	"path/filepath"
	"testing"
	"wordle/searcher/playout"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 6, cfg.MaxAttempts)
	require.Len(t, cfg.Solvers, 4)

	grave, ok := cfg.Find("UCT+GRAVE")
	require.True(t, ok)
	p, err := grave.PlayoutPolicy()
	require.NoError(t, err)
	require.Equal(t, playout.FrequencyPlus, p.Kind())
	require.Equal(t, playout.DefaultFrequencyAlpha, p.Alpha())

	_, ok = cfg.Find("NMCS")
	require.False(t, ok)
}

func TestLoad(t *testing.T) {
	t.Run("overriding defaults", func(t *testing.T) {
		path := writeConfig(t, `
name: small
wordlist: words.txt
games: 10
seed: 42
sqlite: results/wordle.db
solvers:
  - name: NMCS (level 2)
    strategy: nmcs
    level: 2
  - name: UCT+RAVE
    strategy: rave
    iterations: 200
    policy: entropy+
    alpha: 0.5
    rave_bias: 100
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "small", cfg.Name)
		require.Equal(t, "words.txt", cfg.Wordlist)
		require.Equal(t, 10, cfg.Games)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, "results/wordle.db", cfg.SQLite)
		require.Equal(t, DefaultLimit, cfg.Limit, "Unset keys keep their default")
		require.Equal(t, DefaultGoroutines, cfg.Goroutines)
		require.Equal(t, []Solver{
			{Name: "NMCS (level 2)", Strategy: NMCS, Level: 2},
			{Name: "UCT+RAVE", Strategy: RAVE, Iterations: 200, Policy: "entropy+", Alpha: 0.5, RaveBias: 100},
		}, cfg.Solvers)

		rave, _ := cfg.Find("UCT+RAVE")
		p, err := rave.PlayoutPolicy()
		require.NoError(t, err)
		require.Equal(t, playout.EntropyPlus, p.Kind())
		require.Equal(t, 0.5, p.Alpha())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: [1, 2\n"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: 0\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(e *Experiment)
	}{
		{"missing wordlist", func(e *Experiment) { e.Wordlist = "" }},
		{"negative limit", func(e *Experiment) { e.Limit = -1 }},
		{"no games", func(e *Experiment) { e.Games = 0 }},
		{"no attempts", func(e *Experiment) { e.MaxAttempts = 0 }},
		{"no goroutines", func(e *Experiment) { e.Goroutines = 0 }},
		{"no solvers", func(e *Experiment) { e.Solvers = nil }},
		{"duplicate solver", func(e *Experiment) { e.Solvers = append(e.Solvers, e.Solvers[0]) }},
		{"unnamed solver", func(e *Experiment) { e.Solvers[0].Name = "" }},
		{"unknown strategy", func(e *Experiment) { e.Solvers[0].Strategy = "minimax" }},
		{"unknown policy", func(e *Experiment) { e.Solvers[1].Policy = "greedy" }},
		{"flat without playouts", func(e *Experiment) { e.Solvers[1].Playouts = 0 }},
		{"uct without iterations", func(e *Experiment) { e.Solvers[2].Iterations = 0 }},
		{"negative level", func(e *Experiment) { e.Solvers[0] = Solver{Name: "n", Strategy: NMCS, Level: -1} }},
		{"alpha out of range", func(e *Experiment) { e.Solvers[3].Alpha = 1.5 }},
		{"negative exploration", func(e *Experiment) { e.Solvers[2].Exploration = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

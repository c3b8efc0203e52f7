package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID     int
	Solver string
	GameMetric
}

type MoveRecord struct {
	Game   int // GameRecord.ID
	Solver string
	MoveMetric
}

// Result summarizes one solver over an experiment.
type Result struct {
	Solver     string
	Games      int
	WinRate    float64
	AvgGuesses float64 // Over won games only
}

// DistributionRow counts the games a solver finished in Guesses guesses,
// "fail" for lost games.
type DistributionRow struct {
	Solver  string
	Guesses string
	Count   int
}

// ThroughputRow measures one flat Monte-Carlo search at a worker count.
type ThroughputRow struct {
	Goroutines int
	Move       string
	SearchMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the experiment configuration next to its results.
func (w *Writer) WriteSetup(setup any) error {
	f, err := os.Create(filepath.Join(w.baseDir, "setup.yaml"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) WriteResults(results []Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Solver,
			strconv.Itoa(r.Games),
			strconv.FormatFloat(r.WinRate, 'f', 4, 64),
			strconv.FormatFloat(r.AvgGuesses, 'f', 4, 64),
		})
	}
	return w.writeCSV("results.csv", []string{"solver", "games", "win_rate", "avg_guesses"}, rows)
}

func (w *Writer) WriteDistribution(distribution []DistributionRow) error {
	rows := make([][]string, 0, len(distribution))
	for _, d := range distribution {
		rows = append(rows, []string{d.Solver, d.Guesses, strconv.Itoa(d.Count)})
	}
	return w.writeCSV("distribution.csv", []string{"solver", "guesses", "count"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Solver,
			record.Secret,
			strconv.FormatBool(record.Won),
			strconv.Itoa(record.Guesses),
			strconv.FormatBool(record.NoMove),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "solver", "secret", "won", "guesses", "no_move", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			record.Solver,
			strconv.Itoa(record.Step),
			record.Guess,
			record.Feedback,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Playouts),
			strconv.Itoa(record.Candidates),
		})
	}
	header := []string{"game", "solver", "step", "guess", "feedback", "duration", "episodes", "playouts", "candidates"}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughput(rows []ThroughputRow) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Goroutines),
			r.Move,
			r.Duration.String(),
			strconv.Itoa(r.Playouts),
			strconv.FormatFloat(r.PlayoutsPerSecond(), 'f', 1, 64),
		})
	}
	return w.writeCSV("throughput.csv", []string{"goroutines", "move", "duration", "playouts", "playouts_per_second"}, out)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

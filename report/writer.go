// Package report persists tournament output as CSV files, one run directory
// per tournament.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dilemma/game"
	"dilemma/tournament"
)

// Writer writes the records of a single tournament run.
type Writer struct {
	baseDir string
	runID   string
}

// NewWriter creates a run directory named by the current timestamp under
// baseDir and assigns the run a unique ID carried in every record.
func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
		runID:   uuid.NewString(),
	}, nil
}

// RunID returns the unique identifier of this run.
func (w *Writer) RunID() string {
	return w.runID
}

// Dir returns the run directory files are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteMatchRecords stores one row per match in schedule order.
func (w *Writer) WriteMatchRecords(roster []game.RosterEntry, records []tournament.MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "match", "player_a", "player_b", "player_c", "rounds", "score_a", "score_b", "score_c"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			w.runID,
			strconv.Itoa(record.Seq),
			roster[record.Players[0]].Name,
			roster[record.Players[1]].Name,
			roster[record.Players[2]].Name,
			strconv.Itoa(record.Rounds),
			formatScore(record.Scores[0]),
			formatScore(record.Scores[1]),
			formatScore(record.Scores[2]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

// WriteStandings stores the final leaderboard, best first.
func (w *Writer) WriteStandings(standings []tournament.Standing) error {
	path := filepath.Join(w.baseDir, "standings.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create standings file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "place", "roster_index", "name", "total_score"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write standings header: %w", err)
	}

	for place, standing := range standings {
		row := []string{
			w.runID,
			strconv.Itoa(place + 1),
			strconv.Itoa(standing.Index),
			standing.Name,
			formatScore(standing.Score),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write standings row: %w", err)
		}
	}

	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

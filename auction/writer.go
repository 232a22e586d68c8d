package auction

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists simulation output as CSV files under a timestamped
// subdirectory of the base directory.
type Writer struct {
	dir string
}

func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Round),
			strconv.Itoa(r.PlayerIndex),
			strconv.Itoa(r.Arm),
			formatFloat(r.Bid),
			formatFloat(r.CompetitiveBid),
			formatFloat(r.Reward),
		})
	}
	header := []string{"round", "player", "arm", "bid", "competitive_bid", "reward"}
	return w.writeFile("round_records.csv", header, rows)
}

func (w *Writer) WriteResults(results Results) error {
	strategyRows := make([][]string, 0, len(results.Strategies))
	for i, s := range results.Strategies {
		strategyRows = append(strategyRows, []string{
			strconv.Itoa(i),
			s.Name,
			strconv.Itoa(len(s.Acquired)),
			formatFloat(s.Budget),
		})
	}
	err := w.writeFile("strategy_results.csv",
		[]string{"arm", "strategy", "players_acquired", "remaining_budget"}, strategyRows)
	if err != nil {
		return err
	}

	armRows := make([][]string, 0, len(results.Arms))
	for i, a := range results.Arms {
		armRows = append(armRows, []string{
			strconv.Itoa(i),
			strconv.Itoa(a.Count),
			formatFloat(a.MeanReward),
		})
	}
	return w.writeFile("arm_results.csv",
		[]string{"arm", "count", "mean_reward"}, armRows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

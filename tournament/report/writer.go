package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"checkers/engine"
	"checkers/tournament"
)

const (
	FolderPrefix = "checkers_game_results"
	SummaryFile  = "game_result_summary.txt"
	StatsFile    = "game_result_stats.txt"
	RecordsFile  = "game_records.csv"
)

var (
	doubleRule = strings.Repeat("=", 40)
	singleRule = strings.Repeat("-", 40)
)

// Writer stores the reports of one tournament run in its own timestamped folder.
type Writer struct {
	baseDir string
}

func NewWriter(outputDir string, now time.Time) (*Writer, error) {
	// Create a subfolder named by the start time
	baseDir := filepath.Join(outputDir, fmt.Sprintf("%s_%s", FolderPrefix, now.Format("20060102_150405")))
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

// WriteAll writes every report of a run.
func (w *Writer) WriteAll(results []engine.GameResult, stats []tournament.BotStat) error {
	if err := w.WriteGameResults(results); err != nil {
		return err
	}
	if err := w.WriteStats(stats); err != nil {
		return err
	}
	return w.WriteGameRecords(results)
}

// WriteGameResults writes the summary of every game, plus a file per game that has a move
// log.
func (w *Writer) WriteGameResults(results []engine.GameResult) error {
	err := writeFile(filepath.Join(w.baseDir, SummaryFile), func(out io.Writer) error {
		for _, r := range results {
			if err := writeSummary(out, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write game summary: %w", err)
	}

	for _, r := range results {
		if r.Moves == "" {
			continue
		}
		path := filepath.Join(w.baseDir, fmt.Sprintf("game_%d.txt", r.GameID))
		err := writeFile(path, func(out io.Writer) error {
			if err := writeSummary(out, r); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "Moves: \n%s", r.Moves)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to write moves of game %d: %w", r.GameID, err)
		}
	}
	return nil
}

// WriteStats writes the per bot win and loss block. Draw counts follow in a block of
// their own, only when some game was drawn, so the win and loss block keeps its layout.
func (w *Writer) WriteStats(stats []tournament.BotStat) error {
	err := writeFile(filepath.Join(w.baseDir, StatsFile), func(out io.Writer) error {
		fmt.Fprintf(out, "Game Statistics\n%s\n", doubleRule)
		for _, s := range stats {
			fmt.Fprintf(out, "Bot Name: %s\n", s.Name)
			fmt.Fprintf(out, "  White Wins: %d\n", s.WhiteWins)
			fmt.Fprintf(out, "  White Losses: %d\n", s.WhiteLosses)
			fmt.Fprintf(out, "  Black Wins: %d\n", s.BlackWins)
			fmt.Fprintf(out, "  Black Losses: %d\n", s.BlackLosses)
			fmt.Fprintf(out, "%s\n", singleRule)
		}
		if _, err := fmt.Fprintf(out, "%s\n\n", doubleRule); err != nil {
			return err
		}
		if !anyDraws(stats) {
			return nil
		}

		fmt.Fprintf(out, "Draws\n%s\n", doubleRule)
		for _, s := range stats {
			fmt.Fprintf(out, "Bot Name: %s\n", s.Name)
			fmt.Fprintf(out, "  White Draws: %d\n", s.WhiteDraws)
			fmt.Fprintf(out, "  Black Draws: %d\n", s.BlackDraws)
			fmt.Fprintf(out, "%s\n", singleRule)
		}
		_, err := fmt.Fprintf(out, "%s\n\n", doubleRule)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write game statistics: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(results []engine.GameResult) error {
	// Create a file
	path := filepath.Join(w.baseDir, RecordsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{
		"id", "round", "white", "black", "result", "plies",
		"white_rating", "black_rating", "white_kings", "white_captures", "black_kings", "black_captures",
		"start_time", "duration", "notation",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.GameID),
			strconv.Itoa(r.Round),
			r.White.Name,
			r.Black.Name,
			r.Result.String(),
			strconv.Itoa(r.NumMoves),
			strconv.Itoa(r.White.Rating),
			strconv.Itoa(r.Black.Rating),
			strconv.Itoa(r.White.KingsMade),
			strconv.Itoa(r.White.Captures),
			strconv.Itoa(r.Black.KingsMade),
			strconv.Itoa(r.Black.Captures),
			r.StartTime.Format(time.RFC3339),
			r.Duration.String(),
			r.Notation,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

func anyDraws(stats []tournament.BotStat) bool {
	for _, s := range stats {
		if s.WhiteDraws+s.BlackDraws > 0 {
			return true
		}
	}
	return false
}

// writeSummary prints the result block of one game. A draw puts white in the winner slot
// and says so before the move count.
func writeSummary(out io.Writer, r engine.GameResult) error {
	winner, loser := r.WinnerLoser()

	fmt.Fprintf(out, "Game ID: %d\n", r.GameID)
	fmt.Fprintf(out, "Game Round: %d\n\n", r.Round)
	writeSide(out, "Winner Details:", winner)
	writeSide(out, "Loser Details:", loser)
	if r.Result == engine.ResultDraw {
		fmt.Fprintf(out, "Result: %s\n", r.Result)
	}
	fmt.Fprintf(out, "Total Moves: %d\n", r.NumMoves)
	_, err := fmt.Fprintf(out, "%s\n\n", doubleRule)
	return err
}

func writeSide(out io.Writer, title string, s engine.Side) {
	fmt.Fprintf(out, "%s\n", title)
	fmt.Fprintf(out, "  Name: %s\n", s.Name)
	fmt.Fprintf(out, "  Colour: %s\n", s.Colour)
	fmt.Fprintf(out, "  Kings Made: %d\n", s.KingsMade)
	fmt.Fprintf(out, "  Number of Captures: %d\n\n", s.Captures)
}

// writeFile buffers fill into path. Write errors on the buffer surface on Flush.
func writeFile(path string, fill func(out io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if err := fill(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return f.Close()
}

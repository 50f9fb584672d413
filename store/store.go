package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"checkers/engine"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Store persists tournament runs and their game results in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the database at path, creating it and its schema when missing.
func Open(path string) (*Store, error) {
	// Foreign keys are enabled per connection through the DSN
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Games are written one at a time
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initDB(); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Msgf("opened result store at %s", path)
	return s, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return tx.Commit()
}

// BeginRun registers a tournament run and returns its id.
func (s *Store) BeginRun(ctx context.Context, mode string, size, rounds int, startedAt time.Time) (uuid.UUID, error) {
	runID := uuid.New()
	query := `INSERT INTO runs (run_id, mode, board_size, rounds, started_at_utc) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, runID.String(), mode, size, rounds, startedAt.UTC()); err != nil {
		return uuid.Nil, fmt.Errorf("failed to record run: %w", err)
	}
	return runID, nil
}

// RecordGame stores one finished game of a run.
func (s *Store) RecordGame(ctx context.Context, runID uuid.UUID, r engine.GameResult) error {
	query := `INSERT INTO games (
		run_id, game_id, game_round,
		white_name, black_name, white_rating, black_rating, result,
		white_kings, white_captures, black_kings, black_captures,
		plies, notation, start_time_utc, duration_ms
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		runID.String(), r.GameID, r.Round,
		r.White.Name, r.Black.Name, r.White.Rating, r.Black.Rating, r.Result.String(),
		r.White.KingsMade, r.White.Captures, r.Black.KingsMade, r.Black.Captures,
		r.NumMoves, r.Notation, r.StartTime.UTC(), r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record game %d: %w", r.GameID, err)
	}
	return nil
}

// CountGames returns how many games of a run are stored.
func (s *Store) CountGames(ctx context.Context, runID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE run_id = ?`, runID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}

// GameRecord is a stored game as read back from the database.
type GameRecord struct {
	GameID   int
	Round    int
	White    string
	Black    string
	Result   string
	Plies    int
	Notation string
}

// Games lists the stored games of a run in game id order.
func (s *Store) Games(ctx context.Context, runID uuid.UUID) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, game_round, white_name, black_name, result, plies, notation
		FROM games WHERE run_id = ? ORDER BY game_id`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		if err := rows.Scan(&r.GameID, &r.Round, &r.White, &r.Black, &r.Result, &r.Plies, &r.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

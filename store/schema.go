package store

// Schema is applied on Open. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	board_size INTEGER NOT NULL,
	rounds INTEGER NOT NULL,
	started_at_utc DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
	run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
	game_id INTEGER NOT NULL,
	game_round INTEGER NOT NULL,
	white_name TEXT NOT NULL,
	black_name TEXT NOT NULL,
	white_rating INTEGER NOT NULL,
	black_rating INTEGER NOT NULL,
	result TEXT NOT NULL CHECK(result IN ('WHITE', 'BLACK', 'DRAW')),
	white_kings INTEGER NOT NULL,
	white_captures INTEGER NOT NULL,
	black_kings INTEGER NOT NULL,
	black_captures INTEGER NOT NULL,
	plies INTEGER NOT NULL,
	notation TEXT NOT NULL,
	start_time_utc DATETIME,
	duration_ms INTEGER NOT NULL,
	PRIMARY KEY (run_id, game_id)
);

CREATE INDEX IF NOT EXISTS idx_games_white ON games(white_name);
CREATE INDEX IF NOT EXISTS idx_games_black ON games(black_name);
`

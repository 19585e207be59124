// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the results history.
type Store struct {
	db *sql.DB
}

// Result is one finished game. There is no score: a game is recorded by its
// outcome, the largest tile reached and the number of effective moves.
type Result struct {
	ID        int64
	Variant   string
	Won       bool
	MaxTile   int
	Moves     int
	CreatedAt time.Time
}

// Outcome returns "won" or "lost".
func (r Result) Outcome() string {
	if r.Won {
		return "won"
	}
	return "lost"
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			won INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (variant, won, max_tile, moves) VALUES (?, ?, ?, ?)",
		r.Variant, boolToInt(r.Won), r.MaxTile, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults returns up to limit results, newest first.
// An empty variant selects every variant.
func (s *Store) RecentResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, won, max_tile, moves, created_at
		 FROM results
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Won, &r.MaxTile, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes the history of one variant, or of all variants when
// variant is empty.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// VariantStats contains aggregated results for one variant.
type VariantStats struct {
	Variant    string
	Games      int
	Wins       int
	BestTile   int
	AvgMoves   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, or 0 with no games.
func (v VariantStats) WinRate() float64 {
	if v.Games == 0 {
		return 0
	}
	return float64(v.Wins) / float64(v.Games)
}

// Stats returns aggregated results for a variant. A variant never played
// yields zero counts.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(max_tile), 0), COALESCE(AVG(moves), 0)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.Games, &stats.Wins, &stats.BestTile, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats returns aggregated results for every variant that has been played.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), SUM(won), MAX(max_tile), AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var v VariantStats
		var lastPlayed any
		if err := rows.Scan(&v.Variant, &v.Games, &v.Wins, &v.BestTile, &v.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		v.LastPlayed = parseTime(lastPlayed)
		stats[v.Variant] = &v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

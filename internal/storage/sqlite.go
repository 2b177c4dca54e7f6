// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its database unless --db says otherwise.
const DefaultPath = "~/.batadventure/rounds.db"

// Store manages the SQLite database connection for round persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID           int64
	RoundID      string // UUID, assigned by SaveRound when empty
	Playstyle    string // "single" or "multi"
	Score        int
	SecondsAlive float64
	Player       string
	CreatedAt    time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	// Test connection
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			playstyle TEXT NOT NULL,
			score INTEGER NOT NULL,
			seconds_alive REAL NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_playstyle ON rounds(playstyle);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(playstyle, score DESC);
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

// SaveRound records a finished round and returns the row ID.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.New().String()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round_id, playstyle, score, seconds_alive, player)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RoundID, r.Playstyle, r.Score, r.SecondsAlive, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the best N rounds for a playstyle.
// Ties on score are broken by time alive, then by age.
func (s *Store) TopRounds(playstyle string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, playstyle, score, seconds_alive, player, created_at
		 FROM rounds
		 WHERE playstyle = ?
		 ORDER BY score DESC, seconds_alive DESC, id ASC
		 LIMIT ?`,
		playstyle, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.Playstyle, &r.Score, &r.SecondsAlive, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the highest score for a playstyle, or 0 if none exist.
func (s *Store) HighScore(playstyle string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE playstyle = ?",
		playstyle,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LongestSurvival returns the most seconds any round of a playstyle lasted, or 0.
func (s *Store) LongestSurvival(playstyle string) (float64, error) {
	var secs sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(seconds_alive) FROM rounds WHERE playstyle = ?",
		playstyle,
	).Scan(&secs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest survival: %w", err)
	}

	if !secs.Valid {
		return 0, nil
	}
	return secs.Float64, nil
}

// ClearRounds deletes all rounds of a playstyle.
func (s *Store) ClearRounds(playstyle string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE playstyle = ?", playstyle)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a playstyle.
type Stats struct {
	Playstyle       string
	Rounds          int
	HighScore       int
	AvgScore        float64
	TotalScore      int64
	LongestSurvival float64
	LastPlayed      time.Time
}

// Stats retrieves aggregated statistics for one playstyle.
func (s *Store) Stats(playstyle string) (*Stats, error) {
	stats := &Stats{Playstyle: playstyle}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(seconds_alive), 0)
		 FROM rounds WHERE playstyle = ?`,
		playstyle,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.LongestSurvival)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE playstyle = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		playstyle,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every playstyle that has rounds.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT playstyle, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(seconds_alive), MAX(created_at)
		 FROM rounds
		 GROUP BY playstyle`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Playstyle, &st.Rounds, &st.HighScore, &st.AvgScore, &st.TotalScore, &st.LongestSurvival, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		all[st.Playstyle] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// parseTime handles the driver returning DATETIME as either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

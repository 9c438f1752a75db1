package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Termination reasons stored with each match.
const (
	TerminationGoal     = "goal"
	TerminationPlyLimit = "ply_limit"
	TerminationError    = "error"
)

// Match is the result of one finished game. Only the outcome is kept; the
// ledger cannot be used to resume a game.
type Match struct {
	ID          string
	BatchID     string
	Label       string
	StartedAt   time.Time
	EndedAt     time.Time
	Player0     string
	Player1     string
	Depth       int
	Winner      int // -1 when nobody reached the goal row
	Turns       int
	WallsUsed   [2]int
	Termination string
}

// Store is the SQLite match ledger.
type Store struct {
	db *sql.DB
}

// Open creates the database file and its directory when missing.
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite takes one writer at a time; arena workers save concurrently.
	db.SetMaxOpenConns(1)

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		batch_id TEXT,
		label TEXT,
		started_at DATETIME,
		ended_at DATETIME,
		player0 TEXT,
		player1 TEXT,
		depth INTEGER,
		winner INTEGER,
		turns INTEGER,
		walls0 INTEGER,
		walls1 INTEGER,
		termination TEXT
	);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	log.Debugf("Database initialized at %s", dbPath)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveMatch(m Match) error {
	insertSQL := `
	INSERT INTO matches (id, batch_id, label, started_at, ended_at, player0, player1, depth, winner, turns, walls0, walls1, termination)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(insertSQL,
		m.ID,
		m.BatchID,
		m.Label,
		m.StartedAt,
		m.EndedAt,
		m.Player0,
		m.Player1,
		m.Depth,
		m.Winner,
		m.Turns,
		m.WallsUsed[0],
		m.WallsUsed[1],
		m.Termination,
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.ID, err)
	}
	return nil
}

// ListMatches returns the most recent matches first. A limit of 0 or less
// returns every match. An empty batchID matches every batch.
func (s *Store) ListMatches(batchID string, limit int) ([]Match, error) {
	query := `
	SELECT id, batch_id, label, started_at, ended_at, player0, player1, depth, winner, turns, walls0, walls1, termination
	FROM matches
	WHERE (? = '' OR batch_id = ?)
	ORDER BY ended_at DESC, id
	`
	args := []any{batchID, batchID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.BatchID, &m.Label, &m.StartedAt, &m.EndedAt, &m.Player0, &m.Player1,
			&m.Depth, &m.Winner, &m.Turns, &m.WallsUsed[0], &m.WallsUsed[1], &m.Termination); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

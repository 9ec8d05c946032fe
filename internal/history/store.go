// Package history persists generation runs to a local SQLite database so
// past outputs stay auditable.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "history.db"

// Run is one recorded generation.
type Run struct {
	ID            string    `json:"id"`
	BundlePath    string    `json:"bundle_path"`
	ConfigPath    string    `json:"config_path"`
	Outputs       []string  `json:"outputs"`
	PositionCount int       `json:"position_count"`
	PageCount     int       `json:"page_count"`
	DroppedSkills []string  `json:"dropped_skills,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		bundle_path TEXT NOT NULL,
		config_path TEXT NOT NULL,
		outputs TEXT NOT NULL,
		position_count INTEGER NOT NULL,
		page_count INTEGER NOT NULL,
		dropped_skills TEXT,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// RecordRun assigns the run an ID and timestamp and inserts it. The
// assigned values are written back into the passed struct.
func (s *Store) RecordRun(run *Run) error {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC()

	outputs, err := json.Marshal(run.Outputs)
	if err != nil {
		return fmt.Errorf("encoding outputs: %w", err)
	}
	dropped, err := json.Marshal(run.DroppedSkills)
	if err != nil {
		return fmt.Errorf("encoding dropped skills: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, bundle_path, config_path, outputs, position_count, page_count, dropped_skills, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.BundlePath, run.ConfigPath, string(outputs),
		run.PositionCount, run.PageCount, string(dropped),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit
// returns all runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, bundle_path, config_path, outputs, position_count, page_count, dropped_skills, created_at
		 FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var outputs, dropped, createdAt string
		if err := rows.Scan(&run.ID, &run.BundlePath, &run.ConfigPath, &outputs,
			&run.PositionCount, &run.PageCount, &dropped, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if err := json.Unmarshal([]byte(outputs), &run.Outputs); err != nil {
			return nil, fmt.Errorf("decoding outputs for run %s: %w", run.ID, err)
		}
		if dropped != "" && dropped != "null" {
			if err := json.Unmarshal([]byte(dropped), &run.DroppedSkills); err != nil {
				return nil, fmt.Errorf("decoding dropped skills for run %s: %w", run.ID, err)
			}
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

package store

import (
	"database/sql"
	"encoding/json"

	_ "github.com/glebarez/go-sqlite"

	"github.com/edithqa/edith/internal/supervisor"
)

// RunStore persists task reports so past runs can be inspected after the
// process exits.
type RunStore struct {
	DB *sql.DB
}

// RunSummary is one row of run history.
type RunSummary struct {
	RunID     string
	Goal      string
	Verdict   string
	Success   bool
	CreatedAt string
}

func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	query := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		goal TEXT,
		verdict TEXT,
		success INTEGER,
		report TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(query); err != nil {
		return nil, err
	}

	return &RunStore{DB: db}, nil
}

// Save records one completed run, including the full report as JSON.
func (s *RunStore) Save(report *supervisor.TaskReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	query := `INSERT INTO runs (run_id, goal, verdict, success, report) VALUES (?, ?, ?, ?, ?)`
	_, err = s.DB.Exec(query, report.RunID, report.Goal, report.Verdict, report.Success, string(data))
	return err
}

// Recent returns the latest runs, newest first.
func (s *RunStore) Recent(limit int) ([]RunSummary, error) {
	query := `SELECT run_id, goal, verdict, success, created_at FROM runs ORDER BY id DESC LIMIT ?`
	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var success int
		if err := rows.Scan(&r.RunID, &r.Goal, &r.Verdict, &success, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetReport loads the full stored report for one run.
func (s *RunStore) GetReport(runID string) (*supervisor.TaskReport, error) {
	var data string
	query := `SELECT report FROM runs WHERE run_id = ?`
	if err := s.DB.QueryRow(query, runID).Scan(&data); err != nil {
		return nil, err
	}

	var report supervisor.TaskReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *RunStore) Close() error {
	return s.DB.Close()
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"docscrawl/internal/model"
)

// DBFileName is the SQLite file name within the data directory.
const DBFileName = "docscrawl.db"

// RunDB stores one row per completed crawl run.
type RunDB struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the run-history database under dbDir.
func Open(dbDir string) (*RunDB, error) {
	if err := os.MkdirAll(dbDir, 0o750); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	dbPath := filepath.Join(dbDir, DBFileName)

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports one writer; a larger pool only adds lock contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{db: db, dbPath: dbPath}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// Path returns the database file path.
func (rdb *RunDB) Path() string {
	return rdb.dbPath
}

func (rdb *RunDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		start_url TEXT NOT NULL,
		path_prefix TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		processed INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		unique_youtube INTEGER NOT NULL,
		unique_images INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_start_url ON runs(start_url);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun inserts one completed run.
func (rdb *RunDB) SaveRun(ctx context.Context, run model.RunSummary) error {
	_, err := rdb.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, start_url, path_prefix, output_dir,
			started_at, finished_at,
			processed, succeeded, failed, unique_youtube, unique_images
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartURL, run.PathPrefix, run.OutputDir,
		run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.Processed, run.Succeeded, run.Failed, run.UniqueYoutube, run.UniqueImages,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := rdb.db.QueryContext(ctx, `
		SELECT id, start_url, path_prefix, output_dir,
		       started_at, finished_at,
		       processed, succeeded, failed, unique_youtube, unique_images
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun fetches one run by ID. sql.ErrNoRows is returned when the ID is
// unknown.
func (rdb *RunDB) GetRun(ctx context.Context, id string) (model.RunSummary, error) {
	row := rdb.db.QueryRowContext(ctx, `
		SELECT id, start_url, path_prefix, output_dir,
		       started_at, finished_at,
		       processed, succeeded, failed, unique_youtube, unique_images
		FROM runs
		WHERE id = ?`, id)
	return scanRun(row)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.RunSummary, error) {
	var run model.RunSummary
	var startedAt, finishedAt string
	err := row.Scan(
		&run.ID, &run.StartURL, &run.PathPrefix, &run.OutputDir,
		&startedAt, &finishedAt,
		&run.Processed, &run.Succeeded, &run.Failed, &run.UniqueYoutube, &run.UniqueImages,
	)
	if err != nil {
		return model.RunSummary{}, err
	}
	run.StartedAt = parseTimestamp(startedAt)
	run.FinishedAt = parseTimestamp(finishedAt)
	return run, nil
}

// parseTimestamp parses an RFC3339 timestamp, tolerating the space-separated
// form SQLite's datetime() produces. A zero time is returned for garbage.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"appstarter/internal/features/generation/domain"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS generations (
	id          TEXT PRIMARY KEY,
	idea        TEXT NOT NULL,
	app_name    TEXT NOT NULL,
	category    TEXT NOT NULL,
	status      TEXT NOT NULL,
	commit_hash TEXT NOT NULL DEFAULT '',
	file_count  INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
`

// createdAtLayout is fixed-width so created_at sorts correctly as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// HistoryStore keeps one row per generation request in SQLite.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore opens (and creates, if needed) the database at path.
func OpenHistoryStore(path string) (*HistoryStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Record inserts a history row.
func (s *HistoryStore) Record(ctx context.Context, rec domain.GenerationRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, idea, app_name, category, status, commit_hash, file_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Idea, rec.AppName, string(rec.Category), string(rec.Status),
		rec.CommitHash, rec.FileCount, rec.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record generation %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the record with id or domain.ErrNotFound.
func (s *HistoryStore) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, idea, app_name, category, status, commit_hash, file_count, created_at
		 FROM generations WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("generation %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load generation %s: %w", id, err)
	}
	return rec, nil
}

// List returns the most recent records first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, idea, app_name, category, status, commit_hash, file_count, created_at
		 FROM generations ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	records := []domain.GenerationRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*domain.GenerationRecord, error) {
	var (
		rec       domain.GenerationRecord
		category  string
		status    string
		createdAt string
	)
	if err := sc.Scan(&rec.ID, &rec.Idea, &rec.AppName, &category, &status, &rec.CommitHash, &rec.FileCount, &createdAt); err != nil {
		return nil, err
	}
	rec.Category = domain.Category(category)
	rec.Status = domain.Status(status)
	t, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	return &rec, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ============================================================
// Run Registry (SQLite)
// ============================================================

// Run is one recorded extraction run of the HTTP service.
type Run struct {
	ID            string    `json:"id"`
	InputFile     string    `json:"input_file"`
	TotalFeatures int       `json:"total_features"`
	Lines         int       `json:"lines"`
	Areas         int       `json:"areas"`
	Layers        []string  `json:"layers"`
	CreatedAt     time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("run not found")

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init creates the schema if it does not exist yet.
func (r *Repository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS runs (
            id             TEXT PRIMARY KEY,
            input_file     TEXT NOT NULL,
            total_features INTEGER NOT NULL,
            lines          INTEGER NOT NULL,
            areas          INTEGER NOT NULL,
            layers         TEXT NOT NULL,
            created_at     TEXT NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("create runs table: %w", err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, run Run) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO runs (id, input_file, total_features, lines, areas, layers, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `,
		run.ID,
		run.InputFile,
		run.TotalFeatures,
		run.Lines,
		run.Areas,
		strings.Join(run.Layers, ","),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, input_file, total_features, lines, areas, layers, created_at
        FROM runs
        WHERE id = ?
    `, id)

	run, err := scanRun(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return run, nil
}

// List returns all runs, newest first.
func (r *Repository) List(ctx context.Context) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, input_file, total_features, lines, areas, layers, created_at
        FROM runs
        ORDER BY created_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func scanRun(scan func(dest ...any) error) (*Run, error) {
	var (
		run       Run
		layers    string
		createdAt string
	)
	if err := scan(&run.ID, &run.InputFile, &run.TotalFeatures, &run.Lines, &run.Areas, &layers, &createdAt); err != nil {
		return nil, err
	}
	if layers != "" {
		run.Layers = strings.Split(layers, ",")
	} else {
		run.Layers = []string{}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}
	return &run, nil
}

// OpenSQLite opens the registry database at the given path, creating
// parent directories as needed.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

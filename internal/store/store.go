package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/regrid/internal/grid"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// Store is a SQLite-backed template grid library.
type Store struct {
	db *sql.DB
}

// Template is one stored grid with its lookup metadata.
type Template struct {
	ID        string `json:"id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Signature string `json:"signature"`
	Cells     string `json:"cells"`
	CreatedAt int64  `json:"created_at"`
}

// Grid parses the stored cells back into a grid.
func (t Template) Grid() (grid.Grid, error) {
	return grid.Parse(t.Cells)
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically; idempotent.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; keep a single connection
	// to avoid SQLITE_BUSY errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutTemplate stores a grid in the library. The signature is computed
// by re-scanning the grid, and the id is a fresh UUIDv7.
//
// Idempotent on cells: storing an identical grid again returns the
// existing record unchanged.
func (s *Store) PutTemplate(ctx context.Context, g grid.Grid) (Template, error) {
	if g.Width() == 0 || g.Height() == 0 {
		return Template{}, fmt.Errorf("put template: empty grid")
	}

	tpl := Template{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Width:     g.Width(),
		Height:    g.Height(),
		Signature: grid.LengthSignature(g),
		Cells:     g.String(),
		CreatedAt: time.Now().Unix(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (id, width, height, signature, cells, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(cells) DO NOTHING
	`,
		tpl.ID,
		tpl.Width,
		tpl.Height,
		tpl.Signature,
		tpl.Cells,
		tpl.CreatedAt,
	)
	if err != nil {
		return Template{}, fmt.Errorf("put template: %w", err)
	}

	// The insert may have been a no-op; read back the canonical row.
	row := s.db.QueryRowContext(ctx, `
		SELECT id, width, height, signature, cells, created_at
		FROM templates WHERE cells = ?
	`, tpl.Cells)
	if err := scanTemplate(row, &tpl); err != nil {
		return Template{}, fmt.Errorf("put template: %w", err)
	}

	return tpl, nil
}

// ListTemplates returns every stored template, oldest first.
func (s *Store) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, width, height, signature, cells, created_at
		FROM templates ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	return collectTemplates(rows)
}

// FindByShape returns the templates whose outer dimensions match,
// oldest first. This is the candidate set handed to the fallback
// matcher for a puzzle of the given shape.
func (s *Store) FindByShape(ctx context.Context, width, height int) ([]Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, width, height, signature, cells, created_at
		FROM templates WHERE width = ? AND height = ?
		ORDER BY created_at, id
	`, width, height)
	if err != nil {
		return nil, fmt.Errorf("find templates by shape: %w", err)
	}
	defer rows.Close()

	return collectTemplates(rows)
}

// Grids parses a template list into grids, preserving order.
func Grids(templates []Template) ([]grid.Grid, error) {
	grids := make([]grid.Grid, 0, len(templates))
	for _, t := range templates {
		g, err := t.Grid()
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.ID, err)
		}
		grids = append(grids, g)
	}
	return grids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner, tpl *Template) error {
	return row.Scan(&tpl.ID, &tpl.Width, &tpl.Height, &tpl.Signature, &tpl.Cells, &tpl.CreatedAt)
}

func collectTemplates(rows *sql.Rows) ([]Template, error) {
	var templates []Template
	for rows.Next() {
		var tpl Template
		if err := scanTemplate(rows, &tpl); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

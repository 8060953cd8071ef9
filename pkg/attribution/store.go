// Package attribution persists marketing attribution marks with tiered
// expiry. Writes are wholesale tier replacements, never partial merges, so a
// snapshot can never mix values from two visits.
package attribution

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	homedir "github.com/mitchellh/go-homedir"

	_ "modernc.org/sqlite"
)

// Store is the durable mark store. A file lock serializes writers across
// processes; reads go straight to sqlite.
type Store struct {
	sql  *sql.DB
	lock *flock.Flock
}

// DefaultPath resolves the store location, creating the parent directory.
func DefaultPath(path string) (string, error) {
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, ".config", "leadform", "attribution.sqlite")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS attribution_marks (
  mark       TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  expires_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_marks_expiry ON attribution_marks(expires_at);
	`); err != nil {
		return nil, err
	}
	return &Store{sql: db, lock: flock.New(path + ".lock")}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

// Replace clears every tracked mark and writes the given values with a single
// expiry. Marks absent from values stay cleared.
func (s *Store) Replace(ctx context.Context, values map[string]string, expiresAt time.Time) (err error) {
	if err = s.lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	tx, err := s.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM attribution_marks"); err != nil {
		return err
	}
	for mark, value := range values {
		if value == "" {
			continue
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO attribution_marks(mark, value, expires_at) VALUES(?,?,?)",
			mark, value, expiresAt.UTC())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Snapshot returns every live mark. Expired rows are filtered out, not
// deleted; the next Replace sweeps them anyway.
func (s *Store) Snapshot(ctx context.Context) (map[string]string, error) {
	rows, err := s.sql.QueryContext(ctx,
		"SELECT mark, value FROM attribution_marks WHERE expires_at > ?", time.Now().UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var mark, value string
		if err := rows.Scan(&mark, &value); err != nil {
			return nil, err
		}
		out[mark] = value
	}
	return out, rows.Err()
}

// Clear drops all marks.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()
	_, err := s.sql.ExecContext(ctx, "DELETE FROM attribution_marks")
	return err
}

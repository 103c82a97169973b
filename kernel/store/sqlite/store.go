// Package sqlite backs the session store with a local SQLite database,
// suitable for single-node deployments that need durability without an
// external service. The version check is a guarded UPDATE.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

const (
	driver = "sqlite"
	dsnOpt = "?_pragma=busy_timeout(3000)&_pragma=journal_mode(WAL)"
)

// Store persists sessions in a single table keyed by session id.
type Store struct {
	db *sql.DB

	now func() time.Time
}

func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir: %w", err)
		}
	}
	db, err := sql.Open(driver, path+dsnOpt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	s := &Store{db: db, now: time.Now}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS cv_sessions (
	id         TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	payload    BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cv_sessions_expires ON cv_sessions(expires_at);`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (state.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM cv_sessions WHERE id = ?`, id)
	var payload []byte
	var expiresAt int64
	if err := row.Scan(&payload, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return state.Session{}, store.ErrNotFound
		}
		return state.Session{}, fmt.Errorf("sqlite: get session %q: %w", id, err)
	}
	if expiresAt <= s.now().UnixMilli() {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM cv_sessions WHERE id = ?`, id)
		return state.Session{}, store.ErrNotFound
	}
	return state.Unmarshal(payload)
}

func (s *Store) CompareAndSet(ctx context.Context, sess state.Session, expected int64, ttl time.Duration) error {
	payload, err := state.Marshal(sess)
	if err != nil {
		return err
	}
	nowMs := s.now().UnixMilli()
	expiresAt := s.now().Add(ttl).UnixMilli()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin cas: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Expired rows count as absent for both branches.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cv_sessions WHERE id = ? AND expires_at <= ?`, sess.ID, nowMs); err != nil {
		return fmt.Errorf("sqlite: purge expired: %w", err)
	}

	if expected == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cv_sessions (id, version, payload, expires_at) VALUES (?, ?, ?, ?)`,
			sess.ID, sess.Version, payload, expiresAt)
		if err != nil {
			if isConstraintErr(err) {
				return store.ErrVersionConflict
			}
			return fmt.Errorf("sqlite: insert session %q: %w", sess.ID, err)
		}
	} else {
		res, err := tx.ExecContext(ctx,
			`UPDATE cv_sessions SET version = ?, payload = ?, expires_at = ? WHERE id = ? AND version = ?`,
			sess.Version, payload, expiresAt, sess.ID, expected)
		if err != nil {
			return fmt.Errorf("sqlite: update session %q: %w", sess.ID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("sqlite: update session %q: %w", sess.ID, err)
		}
		if affected == 0 {
			// Missing row and stale version are the same condition for
			// callers: reload and retry.
			return store.ErrVersionConflict
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit cas: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cv_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: delete session %q: %w", id, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isConstraintErr(err error) bool {
	// modernc.org/sqlite reports UNIQUE violations with this message
	// fragment; there is no exported sentinel to match against.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

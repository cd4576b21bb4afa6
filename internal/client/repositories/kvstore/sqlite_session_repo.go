package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/dbx"
	"github.com/google/uuid"
)

// SQLiteSessionRepository is the session-scoped store. Every client process
// gets its own session id; rows of other sessions are invisible to it.
type SQLiteSessionRepository struct {
	db        dbx.DBTX
	sessionID string
	now       func() time.Time
}

// NewSQLiteSessionRepository binds the session table to sessionID.
func NewSQLiteSessionRepository(db dbx.DBTX, sessionID string) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db, sessionID: sessionID, now: time.Now}
}

// NewSessionID returns a fresh session scope.
func NewSessionID() string {
	return uuid.NewString()
}

// SessionID returns the scope this repository is bound to.
func (r *SQLiteSessionRepository) SessionID() string {
	return r.sessionID
}

func (r *SQLiteSessionRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_storage WHERE session_id = ? AND key = ?`, r.sessionID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session_storage[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSessionRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_storage (session_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, r.sessionID, key, value, r.now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to set session_storage[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteSessionRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_storage WHERE session_id = ? AND key = ?`, r.sessionID, key)
	if err != nil {
		return fmt.Errorf("failed to delete session_storage[%s]: %w", key, err)
	}
	return nil
}

// Clear ends the session: every key of this session is removed.
func (r *SQLiteSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_storage WHERE session_id = ?`, r.sessionID); err != nil {
		return fmt.Errorf("failed to clear session_storage: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session_storage WHERE session_id = ?`, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session_storage: %w", err)
	}
	return scanPairs(rows, "session_storage")
}

// PurgeStale removes rows of any session not written since before. Sessions
// of processes that crashed never call Clear; this reclaims them.
func PurgeStale(ctx context.Context, db dbx.DBTX, before time.Time) (int64, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM session_storage WHERE updated_at < ?`, before.UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge session_storage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SnapshotKey is the fixed key the progression snapshot is stored under.
// The suffix tracks the persisted schema revision informally; older records
// are migrated in place on decode, not rewritten here.
const SnapshotKey = "resmigul_crystal_v2"

// SnapshotStore persists serialized snapshots keyed by a fixed storage key.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load returns the stored document, or nil when none exists yet.
func (r *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return data, nil
}

// Save upserts the document under key.
func (r *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, key, data)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

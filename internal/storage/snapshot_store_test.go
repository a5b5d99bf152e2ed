package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotStore(db)
}

func TestSnapshotRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	data, err := store.Load(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for a missing key, got %q", data)
	}

	doc := []byte(`{"currentDate":"2024-01-01","history":[]}`)
	if err := store.Save(ctx, SnapshotKey, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("roundtrip mismatch: %q != %q", got, doc)
	}
}

func TestSnapshotSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, SnapshotKey, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("save v1: %v", err)
	}
	if err := store.Save(ctx, SnapshotKey, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("save v2: %v", err)
	}

	got, err := store.Load(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("got %q, want the overwritten document", got)
	}
}

package store

import (
	"path/filepath"
	"testing"
	"time"

	"robotreadme/internal/domain"
)

func openTestStore(t *testing.T) (*BoltStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counts.db")
	st, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return st, path
}

func TestBoltStore_PutGetCount(t *testing.T) {
	st, _ := openTestStore(t)
	defer st.Close()

	now := time.Unix(1700000000, 0)
	if err := st.PutCount("k1", domain.CountEntry{Tokens: 42, CreatedAt: now}); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, ok, err := st.GetCount("k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected entry to be found")
	}
	if entry.Tokens != 42 {
		t.Errorf("expected 42 tokens, got %d", entry.Tokens)
	}
	if !entry.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, entry.CreatedAt)
	}

	_, ok, err = st.GetCount("missing")
	if err != nil || ok {
		t.Errorf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestBoltStore_PersistsAcrossOpen(t *testing.T) {
	st, path := openTestStore(t)
	if err := st.PutCount("k", domain.CountEntry{Tokens: 7, CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	st.Close()

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	entry, ok, err := reopened.GetCount("k")
	if err != nil || !ok || entry.Tokens != 7 {
		t.Errorf("expected persisted count 7, got %+v ok=%v err=%v", entry, ok, err)
	}
}

func TestBoltStore_Migrate(t *testing.T) {
	st, _ := openTestStore(t)
	defer st.Close()

	res, err := st.Migrate()
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if res.Cleared {
		t.Error("fresh database should not be cleared")
	}

	if err := st.PutCount("k", domain.CountEntry{Tokens: 1, CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	// same version is a no-op
	res, err = st.Migrate()
	if err != nil || res.Cleared {
		t.Fatalf("expected no-op migration, got %+v err=%v", res, err)
	}

	if err := st.setSchemaVersion(CurrentSchemaVersion + 1); err != nil {
		t.Fatal(err)
	}
	res, err = st.Migrate()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Cleared {
		t.Error("expected version mismatch to clear counts")
	}
	n, _ := st.Len()
	if n != 0 {
		t.Errorf("expected empty counts bucket, got %d", n)
	}
	v, _ := st.SchemaVersion()
	if v != CurrentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", CurrentSchemaVersion, v)
	}
}

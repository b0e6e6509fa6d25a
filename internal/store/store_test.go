package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKV_GetMissing(t *testing.T) {
	kv := openTestStore(t).KV()

	v, ok, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get(nope) = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestKV_SetGetOverwrite(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "dsa_tracker_solved", "[1,2]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "dsa_tracker_solved", "[3]"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "dsa_tracker_solved")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "[3]" {
		t.Errorf("Get = (%q, %v), want (\"[3]\", true)", v, ok)
	}
}

func TestKV_Delete(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key still present after delete")
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(ctx, "dsa_tracker_streak", "4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.KV().Get(ctx, "dsa_tracker_streak")
	if err != nil || !ok || v != "4" {
		t.Errorf("Get after reopen = (%q, %v, %v), want (\"4\", true, nil)", v, ok, err)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	kv.Set(ctx, "a", "1")
	if v, ok, _ := kv.Get(ctx, "a"); !ok || v != "1" {
		t.Errorf("Get(a) = (%q, %v), want (\"1\", true)", v, ok)
	}
	kv.Delete(ctx, "a")
	if _, ok, _ := kv.Get(ctx, "a"); ok {
		t.Error("Get(a) after delete should miss")
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "nested", "custom.db")
		t.Setenv("DSATRACK_DB", want)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
		if _, err := os.Stat(filepath.Dir(want)); err != nil {
			t.Errorf("parent dir not created: %v", err)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("DSATRACK_DB", "")
		t.Setenv("XDG_DATA_HOME", dataHome)

		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		want := filepath.Join(dataHome, "dsatrack", "dsatrack.db")
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})
}

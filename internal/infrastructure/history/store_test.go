package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/ports"
)

func stores(t *testing.T) map[string]ports.HistoryRepository {
	t.Helper()
	dir := t.TempDir()
	sqlite := NewSQLiteStore(filepath.Join(dir, "history.db"), 0)
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]ports.HistoryRepository{
		"sqlite": sqlite,
		"file":   NewFileStore(filepath.Join(dir, "history.jsonl")),
	}
}

func TestStoreSaveAndRecords(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			older := domain.ScanRecord{Timestamp: base, Strategy: "posix", Shells: []domain.ShellName{"/bin/sh"}}
			newer := domain.ScanRecord{Timestamp: base.Add(time.Minute), Strategy: "posix", Shells: []domain.ShellName{"/bin/sh", "/bin/zsh"}}
			for _, rec := range []domain.ScanRecord{older, newer} {
				if err := store.Save(rec); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
			}

			records, err := store.Records(0)
			if err != nil {
				t.Fatalf("Records() error = %v", err)
			}
			if len(records) != 2 {
				t.Fatalf("Records() returned %d records, want 2", len(records))
			}
			if diff := cmp.Diff([]domain.ShellName{"/bin/sh", "/bin/zsh"}, records[0].Shells); diff != "" {
				t.Errorf("newest record shells mismatch (-want +got):\n%s", diff)
			}
			if records[0].Count != 2 || records[1].Count != 1 {
				t.Errorf("counts = %d, %d; want 2, 1", records[0].Count, records[1].Count)
			}
			if records[0].ID == "" || records[0].ID == records[1].ID {
				t.Errorf("expected distinct generated IDs, got %q and %q", records[0].ID, records[1].ID)
			}
			if !records[0].Timestamp.Equal(newer.Timestamp) {
				t.Errorf("timestamp = %v, want %v", records[0].Timestamp, newer.Timestamp)
			}

			limited, err := store.Records(1)
			if err != nil {
				t.Fatal(err)
			}
			if len(limited) != 1 {
				t.Errorf("Records(1) returned %d records", len(limited))
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Save(domain.ScanRecord{Strategy: "windows"}); err != nil {
				t.Fatal(err)
			}
			if err := store.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			records, err := store.Records(0)
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 0 {
				t.Errorf("expected no records after Clear, got %d", len(records))
			}
		})
	}
}

func TestStorePruneOlderThan(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			old := domain.ScanRecord{Timestamp: time.Now().AddDate(0, 0, -10), Strategy: "posix"}
			fresh := domain.ScanRecord{Timestamp: time.Now(), Strategy: "windows"}
			for _, rec := range []domain.ScanRecord{old, fresh} {
				if err := store.Save(rec); err != nil {
					t.Fatal(err)
				}
			}
			if err := store.PruneOlderThan(5); err != nil {
				t.Fatalf("PruneOlderThan() error = %v", err)
			}
			records, err := store.Records(0)
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 1 || records[0].Strategy != "windows" {
				t.Errorf("expected only the fresh record, got %+v", records)
			}
		})
	}
}

func TestStoreExportJSON(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Save(domain.ScanRecord{Strategy: "posix", Shells: []domain.ShellName{"/bin/bash"}}); err != nil {
				t.Fatal(err)
			}
			dest := filepath.Join(t.TempDir(), "export.jsonl")
			if err := store.ExportJSON(dest); err != nil {
				t.Fatalf("ExportJSON() error = %v", err)
			}

			file, err := os.Open(dest)
			if err != nil {
				t.Fatal(err)
			}
			defer file.Close()
			scanner := bufio.NewScanner(file)
			var lines int
			for scanner.Scan() {
				var rec domain.ScanRecord
				if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
					t.Fatalf("invalid jsonl line %q: %v", scanner.Text(), err)
				}
				lines++
			}
			if lines != 1 {
				t.Errorf("exported %d lines, want 1", lines)
			}
		})
	}
}

func TestSQLiteStoreRetentionOnSave(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"), 3)
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Save(domain.ScanRecord{Timestamp: time.Now().AddDate(0, 0, -30)}); err != nil {
		t.Fatal(err)
	}
	records, err := store.Records(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected record outside retention to be pruned, got %+v", records)
	}
}

func TestSQLiteStoreOpensOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "history.db")
	store := NewSQLiteStore(path, 0)
	t.Cleanup(func() { _ = store.Close() })

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("database created before first use: %v", err)
	}
	if err := store.Save(domain.ScanRecord{Strategy: "posix"}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database missing after Save: %v", err)
	}
}

func TestSQLiteStoreFallbackRetentionOnSave(t *testing.T) {
	dir := t.TempDir()
	// A directory where the database file should be makes the open fail.
	dbPath := filepath.Join(dir, "history.db")
	if err := os.Mkdir(dbPath, 0o755); err != nil {
		t.Fatal(err)
	}
	store := NewSQLiteStore(dbPath, 3)
	t.Cleanup(func() { _ = store.Close() })

	old := domain.ScanRecord{Timestamp: time.Now().AddDate(0, 0, -30), Strategy: "posix"}
	fresh := domain.ScanRecord{Timestamp: time.Now(), Strategy: "windows"}
	for _, rec := range []domain.ScanRecord{old, fresh} {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if got, want := store.Path(), filepath.Join(dir, "history.jsonl"); got != want {
		t.Fatalf("Path() = %q, want fallback %q", got, want)
	}
	records, err := store.Records(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Strategy != "windows" {
		t.Errorf("expected only the fresh record in the fallback file, got %+v", records)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "none.jsonl"))
	records, err := store.Records(0)
	if err != nil || records != nil {
		t.Fatalf("Records() = %v, %v; want nil, nil", records, err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on missing file error = %v", err)
	}
}

package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/pkg/filesystem"
	"github.com/doeshing/shellpick/internal/ports"
)

// timestampLayout is fixed width so stored values sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore persists scan records in a SQLite database. The database is
// opened on first use; when it cannot be opened the store falls back to a jsonl
// file next to it.
type SQLiteStore struct {
	db            *sql.DB
	path          string
	fallback      *FileStore
	once          sync.Once
	mu            sync.Mutex
	retentionDays int
}

// DefaultPath returns ~/.shellpick/history/history.db.
func DefaultPath() string {
	return filepath.Join(filesystem.AppDir(), "history", "history.db")
}

// NewSQLiteStore prepares a store at path without touching the filesystem.
func NewSQLiteStore(path string, retentionDays int) *SQLiteStore {
	return &SQLiteStore{
		path:          path,
		fallback:      NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl"),
		retentionDays: retentionDays,
	}
}

// open creates (or opens) the database once. It reports whether it is usable.
func (s *SQLiteStore) open() bool {
	s.once.Do(func() {
		_ = os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions)
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return
		}
		if err := initSchema(db); err != nil {
			_ = db.Close()
			return
		}
		s.db = db
	})
	return s.db != nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS scans (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		strategy TEXT,
		shells TEXT,
		count INTEGER
	);`)
	return err
}

// Save inserts a new record, then prunes records outside the retention window.
func (s *SQLiteStore) Save(record domain.ScanRecord) error {
	if !s.open() {
		if err := s.fallback.Save(record); err != nil {
			return err
		}
		return s.fallback.PruneOlderThan(s.retentionDays)
	}
	record = normalize(record)
	shells, err := json.Marshal(record.Shells)
	if err != nil {
		return err
	}
	s.mu.Lock()
	_, err = s.db.Exec(`INSERT INTO scans (id, timestamp, strategy, shells, count) VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.UTC().Format(timestampLayout),
		record.Strategy,
		string(shells),
		record.Count,
	)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.PruneOlderThan(s.retentionDays)
}

// Records returns history entries, newest first.
func (s *SQLiteStore) Records(limit int) ([]domain.ScanRecord, error) {
	if !s.open() {
		return s.fallback.Records(limit)
	}
	query := "SELECT id, timestamp, strategy, shells, count FROM scans ORDER BY timestamp DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.ScanRecord
	for rows.Next() {
		var rec domain.ScanRecord
		var ts, shells string
		if err := rows.Scan(&rec.ID, &ts, &rec.Strategy, &shells, &rec.Count); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timestampLayout, ts); err == nil {
			rec.Timestamp = t
		}
		if err := json.Unmarshal([]byte(shells), &rec.Shells); err != nil {
			rec.Shells = nil
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if !s.open() {
		return s.fallback.Clear()
	}
	_, err := s.db.Exec("DELETE FROM scans")
	return err
}

// ExportJSON writes all records to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0)
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// PruneOlderThan removes entries older than N days.
func (s *SQLiteStore) PruneOlderThan(days int) error {
	if days <= 0 {
		return nil
	}
	if !s.open() {
		return s.fallback.PruneOlderThan(days)
	}
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(timestampLayout)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM scans WHERE timestamp < ?", cutoff)
	return err
}

// Path returns the active storage path.
func (s *SQLiteStore) Path() string {
	if !s.open() {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// normalize fills in the ID, timestamp and count of a record.
func normalize(record domain.ScanRecord) domain.ScanRecord {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	record.Count = len(record.Shells)
	return record
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)

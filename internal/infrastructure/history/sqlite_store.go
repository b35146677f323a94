package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/pkg/filesystem"
	"github.com/doeshing/termsh/internal/ports"
)

// SQLiteStore records every dispatched command in a SQLite database. Audit
// writes are best-effort: a store that failed to open degrades to a no-op
// rather than breaking dispatch.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the audit database under the per-user
// termsh directory.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.AppDataDir(), "audit.db"))
}

// NewSQLiteStoreAt creates (or opens) the database at an explicit path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		command TEXT,
		builtin INTEGER,
		high_risk INTEGER,
		cancelled INTEGER,
		exit_code INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.AuditRecord) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO commands
		(timestamp, command, builtin, high_risk, cancelled, exit_code, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Command,
		boolToInt(record.Builtin),
		boolToInt(record.HighRisk),
		boolToInt(record.Cancelled),
		record.ExitCode,
		record.DurationMS,
	)
	return err
}

// Records returns audit entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.AuditRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, command, builtin, high_risk, cancelled, exit_code, duration_ms FROM commands")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE command LIKE ?")
		args = append(args, "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var ts string
		var builtin, highRisk, cancelled int
		if err := rows.Scan(&ts, &rec.Command, &builtin, &highRisk, &cancelled, &rec.ExitCode, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Builtin = builtin == 1
		rec.HighRisk = highRisk == 1
		rec.Cancelled = cancelled == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all audit entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec("DELETE FROM commands")
	return err
}

// ExportJSON writes the command table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.AuditRepository = (*SQLiteStore)(nil)

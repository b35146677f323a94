// Package history persists session history: a plain-text command list that
// seeds the next session, and a SQLite audit log of dispatched commands.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/termsh/internal/domain"
	"github.com/doeshing/termsh/internal/pkg/filesystem"
	"github.com/doeshing/termsh/internal/ports"
)

// FileStore keeps the command history as one line per entry, the format the
// interactive line reader consumes directly.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store under the per-user termsh directory.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(filesystem.AppDataDir(), "history"),
	}
}

// NewFileStoreAt creates a store at an explicit path (used by tests).
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted entries, oldest first. A missing file is an empty
// history, not an error.
func (f *FileStore) Load() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, scanner.Err()
}

// Save atomically replaces the history file with the given entries.
func (f *FileStore) Save(entries []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	var builder strings.Builder
	for _, entry := range entries {
		builder.WriteString(entry)
		builder.WriteByte('\n')
	}
	if err := os.WriteFile(tmp, []byte(builder.String()), domain.SecureFilePermissions); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.HistoryStore = (*FileStore)(nil)

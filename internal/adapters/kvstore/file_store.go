package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// DefaultQuotaBytes caps the total size of all stored values
const DefaultQuotaBytes int64 = 5 * 1024 * 1024

const (
	lockFileName = ".lock"
	valueSuffix  = ".json"
)

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FileStore keeps one JSON file per key in a directory.
// Access is serialized across processes by an advisory lock on dir/.lock.
type FileStore struct {
	dir   string
	quota int64
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*FileStore)(nil)

// NewFileStore creates the directory if needed. A quota of zero or less uses DefaultQuotaBytes.
func NewFileStore(dir string, quota int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create key-value directory: %w", err)
	}
	if quota <= 0 {
		quota = DefaultQuotaBytes
	}
	return &FileStore{dir: dir, quota: quota}, nil
}

// Get decodes the stored value into dst. Absent and unreadable values return false.
func (s *FileStore) Get(key string, dst any) bool {
	if !validKey.MatchString(key) {
		logging.Logger.Warn("Invalid key-value key", "key", key)
		return false
	}

	var data []byte
	err := s.withLock(func() error {
		var readErr error
		data, readErr = os.ReadFile(s.path(key))
		return readErr
	})
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		logging.Logger.Warn("Failed to read key-value entry", "key", key, "error", err)
		return false
	}

	if !json.Valid(data) {
		logging.Logger.Warn("Corrupt key-value entry ignored", "key", key)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logging.Logger.Warn("Failed to decode key-value entry", "key", key, "error", err)
		return false
	}
	return true
}

// Set replaces the value under key with an atomic rename
func (s *FileStore) Set(key string, value any) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: invalid key %q", domain.ErrWriteFailure, key)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logging.Logger.Error("Failed to serialize key-value entry", "key", key, "error", err)
		return fmt.Errorf("%w: failed to serialize %s: %w", domain.ErrWriteFailure, key, err)
	}

	err = s.withLock(func() error {
		used, err := s.usage(key)
		if err != nil {
			return err
		}
		if used+int64(len(data)) > s.quota {
			return fmt.Errorf("quota of %d bytes exceeded", s.quota)
		}
		return s.writeAtomic(key, data)
	})
	if err != nil {
		logging.Logger.Error("Failed to write key-value entry", "key", key, "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, key, err)
	}

	logging.Logger.Debug("Key-value entry written", "key", key, "bytes", len(data))
	return nil
}

// Delete removes the value under key
func (s *FileStore) Delete(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: invalid key %q", domain.ErrWriteFailure, key)
	}

	err := s.withLock(func() error {
		err := os.Remove(s.path(key))
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete %s: %w", domain.ErrWriteFailure, key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+valueSuffix)
}

// usage sums the stored value sizes, excluding the value about to be replaced
func (s *FileStore) usage(exclude string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, valueSuffix) || name == exclude+valueSuffix {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

func (s *FileStore) writeAtomic(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) withLock(fn func() error) error {
	file, err := os.OpenFile(filepath.Join(s.dir, lockFileName), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	return fn()
}

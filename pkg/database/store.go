package database

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrStoreInit indicates that a durable database image exists but cannot be
// opened or parsed. Callers must surface it; there is no silent fallback to
// an empty database.
var ErrStoreInit = errors.New("store initialization failed")

// sqliteHeader is the 16-byte magic every valid database image starts with.
const sqliteHeader = "SQLite format 3\x00"

// Store owns a single embedded SQLite database file. The underlying engine
// is not safe for concurrent writers, so every logical mutating operation
// must run under Lock/Unlock; only one writer is active at a time.
type Store struct {
	mu   sync.Mutex
	db   *gorm.DB
	path string
}

// Open opens the database file at path, creating it if absent. An existing
// but unreadable image fails with ErrStoreInit.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) open() error {
	if err := validateImageFile(s.path); err != nil {
		return err
	}

	dsn := s.path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInit, err)
	}
	s.db = db

	return s.integrityCheck()
}

// validateImageFile rejects files that do not carry the SQLite magic before
// the engine touches them, so a corrupt image fails fast instead of being
// clobbered by a fresh database.
func validateImageFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInit, err)
	}
	if info.Size() == 0 {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreInit, err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: reading header of %s: %v", ErrStoreInit, path, err)
	}
	if !bytes.Equal(header, []byte(sqliteHeader)) {
		return fmt.Errorf("%w: %s is not a SQLite database", ErrStoreInit, path)
	}
	return nil
}

func (s *Store) integrityCheck() error {
	var result string
	if err := s.db.Raw("PRAGMA quick_check").Scan(&result).Error; err != nil {
		return fmt.Errorf("%w: integrity check: %v", ErrStoreInit, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check reported %q", ErrStoreInit, result)
	}
	return nil
}

// DB returns the current ORM handle. Callers must not cache it across
// ImportImage, which replaces the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Lock serializes one logical operation against the store.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store for the next logical operation.
func (s *Store) Unlock() { s.mu.Unlock() }

// Persist flushes the on-disk image. Every mutating use case calls this once
// after its last row write, never batched across operations.
func (s *Store) Persist() error {
	var busy, logFrames, checkpointed int
	row := s.db.Raw("PRAGMA wal_checkpoint(TRUNCATE)").Row()
	if err := row.Scan(&busy, &logFrames, &checkpointed); err != nil {
		return fmt.Errorf("persist store: %w", err)
	}
	return nil
}

// ExportImage returns a consistent snapshot of the whole database as a byte
// blob, suitable for a file download.
func (s *Store) ExportImage() ([]byte, error) {
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("lagerbestand-export-%d.db", time.Now().UnixNano()))
	defer os.Remove(tmp)

	// VACUUM INTO does not support bound parameters.
	stmt := fmt.Sprintf("VACUUM INTO '%s'", strings.ReplaceAll(tmp, "'", "''"))
	if err := s.db.Exec(stmt).Error; err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}
	return data, nil
}

// ImportImage replaces the database wholesale with the given image and
// persists it. The current image is moved aside before the new one is
// written and moved back if the new one fails to open or pass the integrity
// check, so a rejected import leaves the store exactly as it was.
func (s *Store) ImportImage(data []byte) error {
	if len(data) < len(sqliteHeader) || !bytes.Equal(data[:len(sqliteHeader)], []byte(sqliteHeader)) {
		return fmt.Errorf("%w: image is not a SQLite database", ErrStoreInit)
	}

	if err := s.closeDB(); err != nil {
		return fmt.Errorf("import image: %w", err)
	}
	// Drop stale WAL sidecars from the replaced image.
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")

	backup := s.path + ".bak"
	hasPrevious := false
	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, backup); err != nil {
			importErr := fmt.Errorf("import image: %w", err)
			if reopenErr := s.open(); reopenErr != nil {
				return fmt.Errorf("%v; reopening previous image: %w", importErr, reopenErr)
			}
			return importErr
		}
		hasPrevious = true
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return s.restorePrevious(backup, hasPrevious, fmt.Errorf("import image: %w", err))
	}
	if err := s.open(); err != nil {
		return s.restorePrevious(backup, hasPrevious, err)
	}

	if hasPrevious {
		os.Remove(backup)
	}
	return s.Persist()
}

// restorePrevious puts the moved-aside image back after a failed import and
// reopens it. The import error is returned either way.
func (s *Store) restorePrevious(backup string, hasPrevious bool, importErr error) error {
	s.closeDB()
	os.Remove(s.path)
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")

	if hasPrevious {
		if err := os.Rename(backup, s.path); err != nil {
			return fmt.Errorf("%v; restoring previous image: %w", importErr, err)
		}
	}
	if err := s.open(); err != nil {
		return fmt.Errorf("%v; reopening previous image: %w", importErr, err)
	}
	return importErr
}

// Ping reports whether the underlying engine is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.closeDB()
}

func (s *Store) closeDB() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

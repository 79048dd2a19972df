package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by a Backend when the key has never been written
// or has been erased.
var ErrNotFound = errors.New("store: key not found")

// Backend is raw durable key/value storage. Implementations report errors;
// the KV wrapper decides what to do with them.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Close() error
}

const currentVersion = 1

// SQLiteBackend keeps every key as one row of the kv table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at dbPath and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=FULL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return b, nil
}

// NewMemoryBackend creates an in-memory backend for testing.
func NewMemoryBackend() (*SQLiteBackend, error) {
	return OpenSQLite(":memory:")
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Read(key string) ([]byte, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return []byte(value), nil
}

func (b *SQLiteBackend) Write(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := b.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) Erase(key string) error {
	if _, err := b.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("erase %q: %w", key, err)
	}
	return nil
}

func (b *SQLiteBackend) migrate() error {
	var version int
	err := b.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := b.migrateV1(); err != nil {
			return err
		}
	}

	_, err = b.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (b *SQLiteBackend) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS kv (
		key         TEXT PRIMARY KEY,
		value       TEXT NOT NULL,
		updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);
	`
	_, err := b.db.Exec(ddl)
	return err
}

// Backend kinds accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
)

// OpenBackend opens the backend of the given kind. An empty path selects the
// default location under DefaultDataDir.
func OpenBackend(kind, path string) (Backend, error) {
	switch kind {
	case "", BackendSQLite:
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return OpenSQLite(path)
	case BackendDiskv:
		if path == "" {
			dir, err := DefaultDataDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "kv")
		}
		return OpenDiskv(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// DefaultDataDir returns ~/.config/aura
func DefaultDataDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "aura"), nil
}

// DefaultDBPath returns ~/.config/aura/aura.db
func DefaultDBPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aura.db"), nil
}

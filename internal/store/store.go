// Package store keeps the audit log of LLM calls in a local SQLite file.
// Quiz progress is never written here.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	_ "modernc.org/sqlite"
)

// pragmas run on every new connection via the driver's _pragma parameter.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"synchronous(NORMAL)",
}

type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open opens or creates the database file at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	migrator, err := schema.NewMigrate(drv)
	if err == nil {
		err = migrator.Create(context.Background(), Tables...)
	}
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return &Store{db: db, drv: drv}, nil
}

func dsn(path string) string {
	q := url.Values{"_pragma": pragmas}
	return "file:" + path + "?" + q.Encode()
}

// DB exposes the handle for ad hoc queries in tests and tools.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.drv.Close()
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// DefaultDBPath is $CODEQUEST_DB, else codequest.db under $XDG_DATA_HOME or
// ~/.local/share. The parent directory is created.
func DefaultDBPath() (string, error) {
	path := os.Getenv("CODEQUEST_DB")
	if path == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		}
		path = filepath.Join(base, "codequest", "codequest.db")
	}
	return path, EnsureDir(path)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// Package sqlite opens the single-file SQLite store.
package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"hotel_manager/internal/storage/sqlstore"
)

// Open opens (creating if needed) the database file at path with foreign
// keys enforced. SQLite allows one writer, so the pool keeps one connection.
func Open(ctx context.Context, path string) (*sqlstore.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create database directory")
		}
	}
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open failed")
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "db.Ping failed")
	}
	return sqlstore.New(db, Dialect{}), nil
}

// DSN builds a modernc DSN for path with the pragmas every connection needs.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

type Dialect struct{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) InsertIgnore() string { return "INSERT OR IGNORE" }

func (Dialect) CountTablesSQL() string {
	return `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
}

func (Dialect) IsConstraint(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

func (Dialect) Schema() []string { return schema }

var schema = []string{
	`CREATE TABLE IF NOT EXISTS hotel (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  city        TEXT NOT NULL,
  country     TEXT NOT NULL,
  postal_code INTEGER
)`,
	`CREATE TABLE IF NOT EXISTS client (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL,
  address     TEXT,
  city        TEXT,
  postal_code INTEGER,
  email       TEXT,
  phone       TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_client_email ON client(email)`,
	`CREATE TABLE IF NOT EXISTS room_type (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  label      TEXT NOT NULL,
  base_price REAL
)`,
	`CREATE TABLE IF NOT EXISTS room (
  id       INTEGER PRIMARY KEY AUTOINCREMENT,
  number   INTEGER,
  floor    INTEGER,
  sea_view INTEGER NOT NULL DEFAULT 0,
  hotel_id INTEGER NOT NULL REFERENCES hotel(id),
  type_id  INTEGER NOT NULL REFERENCES room_type(id)
)`,
	`CREATE TABLE IF NOT EXISTS reservation (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  start_date TEXT NOT NULL,
  end_date   TEXT NOT NULL,
  client_id  INTEGER NOT NULL REFERENCES client(id)
)`,
	`CREATE TABLE IF NOT EXISTS reservation_room (
  reservation_id INTEGER NOT NULL REFERENCES reservation(id),
  room_id        INTEGER NOT NULL REFERENCES room(id),
  PRIMARY KEY (reservation_id, room_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_reservation_room_room ON reservation_room(room_id)`,
}

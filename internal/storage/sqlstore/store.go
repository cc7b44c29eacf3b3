// Package sqlstore implements domain.HotelRepository on database/sql. Driver
// differences (DDL, insert-ignore syntax, constraint error codes) live behind
// Dialect so the same queries serve SQLite and MySQL.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/adapters/observability"
	"hotel_manager/internal/domain"
)

type Dialect interface {
	Name() string
	// Schema returns the DDL statements creating the six tables, in FK order.
	Schema() []string
	// InsertIgnore is the statement prefix that skips rows violating a key.
	InsertIgnore() string
	// CountTablesSQL counts existing tables in the current database.
	CountTablesSQL() string
	// IsConstraint reports whether err is a unique or foreign key violation.
	IsConstraint(err error) bool
}

type Store struct {
	db *sql.DB
	d  Dialect
}

func New(db *sql.DB, d Dialect) *Store { return &Store{db: db, d: d} }

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.d }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *Store) Close() error { return s.db.Close() }

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// runInTx executes fn in one transaction; any error rolls every statement back.
func runInTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Warn().Err(rbErr).Msg("rollback failed")
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, errors.Wrap(err, "commit transaction")
	}
	return result, nil
}

// classify wraps err with msg and marks it with its domain kind. Errors that
// already carry a kind keep it.
func (s *Store) classify(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConstraint), errors.Is(err, domain.ErrStore):
		return errors.Wrap(err, msg)
	case s.d.IsConstraint(err):
		return errors.Mark(errors.Wrap(err, msg), domain.ErrConstraint)
	default:
		return errors.Mark(errors.Wrap(err, msg), domain.ErrStore)
	}
}

func (s *Store) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = domain.KindOf(err)
	}
	observability.ObserveStore(op, outcome, time.Since(start))
}

func count(ctx context.Context, q queryer, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func exists(ctx context.Context, q queryer, query string, id int64) (bool, error) {
	n, err := count(ctx, q, query, id)
	return n > 0, err
}

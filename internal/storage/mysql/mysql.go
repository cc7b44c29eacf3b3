// Package mysql opens the MySQL store.
package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	driver "github.com/go-sql-driver/mysql"

	"hotel_manager/internal/storage/sqlstore"
)

// MySQL error numbers treated as constraint violations.
const (
	errDupEntry         = 1062
	errRowIsReferenced  = 1451
	errNoReferencedRow  = 1452
	errRowIsReferenced2 = 1217
	errNoReferencedRow2 = 1216
)

// Open connects with dsn (go-sql-driver format) and checks the connection.
func Open(ctx context.Context, dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open failed")
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "db.Ping failed")
	}
	return sqlstore.New(db, Dialect{}), nil
}

type Dialect struct{}

func (Dialect) Name() string { return "mysql" }

// DDL auto-commits in MySQL, so schema creation is not rolled back with the seed.
func (Dialect) Schema() []string { return schema }

func (Dialect) InsertIgnore() string { return "INSERT IGNORE" }

func (Dialect) CountTablesSQL() string { return countTablesSQL }

func (Dialect) IsConstraint(err error) bool {
	var me *driver.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	switch me.Number {
	case errDupEntry, errRowIsReferenced, errNoReferencedRow, errRowIsReferenced2, errNoReferencedRow2:
		return true
	}
	return false
}

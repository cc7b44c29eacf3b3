// Package storage picks and opens the configured store.
package storage

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/shared"
	"hotel_manager/internal/storage/mysql"
	"hotel_manager/internal/storage/sqlite"
	"hotel_manager/internal/storage/sqlstore"
)

func Open(ctx context.Context, cfg shared.Config) (*sqlstore.Store, error) {
	switch cfg.StoreDriver {
	case shared.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("database connection ok")
		return st, nil
	case shared.DriverMySQL:
		st, err := mysql.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", "mysql").Msg("database connection ok")
		return st, nil
	default:
		return nil, errors.Newf("unknown store driver %q", cfg.StoreDriver)
	}
}

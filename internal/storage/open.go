package storage

import (
	"context"
	"fmt"

	"trivia-api/internal/trivia"
	"trivia-api/internal/trivia/postgres"
	"trivia-api/internal/trivia/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the configured backend and makes sure its schema exists.
func Open(ctx context.Context, driver, dsn string) (trivia.Store, error) {
	switch driver {
	case DriverSQLite, "":
		store, err := sqlite.NewSQLiteStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case DriverPostgres:
		store, err := postgres.NewPostgresStore(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

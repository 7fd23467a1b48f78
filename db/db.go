// Package db owns the process-wide SQLite handle used by the local lead
// store and opens Postgres pools for the hosted one.
package db

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var (
	db   *sql.DB
	once sync.Once
)

// Init opens and pings the SQLite database at path. Later calls are no-ops.
func Init(path string, logger *zap.Logger) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite3", path)
		if err != nil {
			logger.Error("failed to open sqlite database", zap.Error(err))
			return
		}

		if err = db.Ping(); err != nil {
			logger.Error("failed to ping sqlite database", zap.Error(err))
			return
		}

		logger.Info("sqlite database initialized", zap.String("path", path))
	})
	return err
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// ExecContext executes a statement that doesn't return rows
func ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Get().ExecContext(ctx, query, args...)
}

package lead

import (
	"context"

	"github.com/venra/site/db"
)

const createLeadsTable = `CREATE TABLE IF NOT EXISTS leads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	community_name TEXT NOT NULL,
	hoa_size INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const insertLeadSQLite = `INSERT INTO leads (name, email, phone, community_name, hoa_size)
	VALUES (?, ?, ?, ?, ?)`

// SQLiteStore writes leads to the local development database opened by db.Init.
type SQLiteStore struct{}

// NewSQLiteStore creates the leads table if it does not exist yet.
func NewSQLiteStore(ctx context.Context) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, createLeadsTable); err != nil {
		return nil, &StoreError{Backend: "sqlite", Message: "create leads table", Err: err}
	}
	return &SQLiteStore{}, nil
}

// Insert adds one row to the leads table.
func (s *SQLiteStore) Insert(ctx context.Context, l Lead) error {
	_, err := db.ExecContext(ctx, insertLeadSQLite,
		l.Name,
		l.Email,
		l.Phone,
		l.CommunityName,
		l.hoaSizeArg(),
	)
	if err != nil {
		return &StoreError{Backend: "sqlite", Message: "insert lead", Err: err}
	}
	return nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return db.Get().PingContext(ctx)
}

package lead

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgPool is the subset of pgxpool.Pool used by PostgresStore.
type pgPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

const insertLeadPostgres = `
	INSERT INTO leads (name, email, phone, community_name, hoa_size)
	VALUES ($1, $2, $3, $4, $5)`

// PostgresStore writes leads directly into the hosted Postgres database.
type PostgresStore struct {
	pool pgPool
}

// NewPostgresStore returns a store backed by a pgx pool.
func NewPostgresStore(pool pgPool) *PostgresStore {
	if pool == nil {
		panic("lead: pgx pool required")
	}
	return &PostgresStore{pool: pool}
}

// Insert adds one row to the leads table.
func (s *PostgresStore) Insert(ctx context.Context, l Lead) error {
	_, err := s.pool.Exec(ctx, insertLeadPostgres,
		l.Name,
		l.Email,
		l.Phone,
		l.CommunityName,
		l.hoaSizeArg(),
	)
	if err == nil {
		return nil
	}

	storeErr := &StoreError{Backend: "postgres", Message: "insert lead", Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		storeErr.Code = pgErr.Code
		storeErr.Message = pgErr.Message
	}
	return storeErr
}

// Ping checks the pool connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

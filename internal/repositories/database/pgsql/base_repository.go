package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// AcquireImportLockTx takes a transaction-scoped advisory lock. It blocks
// until the lock is available and releases automatically at transaction end.
func (r *BaseRepository) AcquireImportLockTx(ctx context.Context, tx pgx.Tx, key int64) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key); err != nil {
		return apperrors.NewAppError(500, "failed to acquire import lock", err)
	}
	return nil
}

// AcquireImportLock takes a session-scoped advisory lock on a dedicated
// pooled connection, so it stays held while other connections commit their
// own transactions. The release func unlocks and returns the connection.
func (r *BaseRepository) AcquireImportLock(ctx context.Context, key int64) (func(), error) {
	conn, err := r.Pool.Acquire(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to acquire lock connection", err)
	}
	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, key); err != nil {
		conn.Release()
		return nil, apperrors.NewAppError(500, "failed to acquire import lock", err)
	}
	release := func() {
		// Unlock on a fresh context: the import's context may already be
		// canceled and the lock must still go away.
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, key)
		conn.Release()
	}
	return release, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// startOfDay returns midnight of the given instant in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

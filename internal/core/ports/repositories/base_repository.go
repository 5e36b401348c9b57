package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// Advisory lock keys, one per import kind. Concurrent imports of the same
// kind serialize on these; different kinds do not block each other.
const (
	LockKeyChartImport     int64 = 4001
	LockKeyBalanceteImport int64 = 4002
	LockKeyFundsImport     int64 = 4003
)

// ImportLocker serializes concurrent file imports of the same kind.
type ImportLocker interface {
	// AcquireImportLockTx takes a transaction-scoped advisory lock for the
	// given import key. The lock is released when the transaction ends.
	AcquireImportLockTx(ctx context.Context, tx pgx.Tx, key int64) error

	// AcquireImportLock takes a session-scoped advisory lock for the given
	// import key, for imports that commit several transactions. It blocks
	// until the lock is available; the returned release func must be called
	// once the import finishes.
	AcquireImportLock(ctx context.Context, key int64) (func(), error)
}

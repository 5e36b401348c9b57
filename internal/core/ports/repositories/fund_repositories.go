package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FundWriter defines write operations for special fund entries
type FundWriter interface {
	// ClearPeriodEntriesTx removes every fund entry of a period, within the
	// transaction. Re-imports of the same workbook replace, never append.
	ClearPeriodEntriesTx(ctx context.Context, tx pgx.Tx, periodID int64) error

	// InsertFundEntriesTx persists a batch of fund entries within the
	// transaction.
	InsertFundEntriesTx(ctx context.Context, tx pgx.Tx, entries []domain.SpecialFundEntry) (int, error)
}

// FundRepositoryFacade combines the special-fund repository interfaces with
// the period, transaction and lock support the workbook import needs.
type FundRepositoryFacade interface {
	FundWriter
	PeriodReader
	PeriodWriter
	TransactionManager
	ImportLocker
}

package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ChartAccountReader defines read operations for the chart of accounts
type ChartAccountReader interface {
	// ListChartAccounts retrieves the full chart ordered by account code.
	ListChartAccounts(ctx context.Context) ([]domain.ChartAccount, error)

	// FindAccountIDsByCode retrieves the code to id mapping of every stored
	// account. Imports use it to decide between insert and update.
	FindAccountIDsByCode(ctx context.Context) (map[string]int64, error)
}

// ChartAccountWriter defines write operations for the chart of accounts
type ChartAccountWriter interface {
	// UpsertChartAccountsTx inserts or updates a batch of accounts keyed on
	// their code, within the given transaction. It reports how many rows
	// were created and how many updated.
	UpsertChartAccountsTx(ctx context.Context, tx pgx.Tx, accounts []domain.ChartAccount) (created int, updated int, err error)

	// SetParentAccountsTx links accounts to their parents, within the given
	// transaction. Keys are account codes, values the parent account codes;
	// pairs whose parent code is not stored are left unlinked.
	SetParentAccountsTx(ctx context.Context, tx pgx.Tx, parentCodeByCode map[string]string) error
}

// ChartAccountRepositoryFacade combines the chart-of-accounts repository
// interfaces with transaction and lock support. Imports drive their own
// transaction boundaries for batched commits.
type ChartAccountRepositoryFacade interface {
	ChartAccountReader
	ChartAccountWriter
	TransactionManager
	ImportLocker
}

package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PeriodReader defines read operations for accounting periods
type PeriodReader interface {
	// FindPeriodForUpdateTx retrieves the period for a year/month pair and
	// locks its row within the transaction. Returns nil when absent.
	FindPeriodForUpdateTx(ctx context.Context, tx pgx.Tx, year int, month int) (*domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for accounting periods
type PeriodWriter interface {
	// CreatePeriodTx persists a new open period within the transaction and
	// fills its generated ID.
	CreatePeriodTx(ctx context.Context, tx pgx.Tx, period *domain.AccountingPeriod) error
}

// BalanceLineReader defines read operations for imported balance lines
type BalanceLineReader interface {
	// ListBalanceLines retrieves the lines of a competence ordered by
	// account code.
	ListBalanceLines(ctx context.Context, competence string) ([]domain.BalanceLine, error)

	// ListCompetences retrieves the distinct competences, newest first.
	ListCompetences(ctx context.Context) ([]string, error)

	// FindLatestCompetence retrieves the most recent competence, or "" when
	// no lines were ever imported.
	FindLatestCompetence(ctx context.Context) (string, error)
}

// BalanceLineWriter defines write operations for imported balance lines
type BalanceLineWriter interface {
	// InsertBalanceLinesTx appends a batch of lines within the transaction.
	InsertBalanceLinesTx(ctx context.Context, tx pgx.Tx, lines []domain.BalanceLine) (int, error)
}

// BalanceteRepositoryFacade combines the trial-balance repository interfaces
// with transaction and lock support.
type BalanceteRepositoryFacade interface {
	PeriodReader
	PeriodWriter
	BalanceLineReader
	BalanceLineWriter
	TransactionManager
	ImportLocker
}

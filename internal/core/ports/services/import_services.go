package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// ChartImportSvc imports delimited chart-of-accounts exports.
type ChartImportSvc interface {
	// ImportChartOfAccounts parses and persists a chart export. Existing
	// accounts (matched by code) are updated, new ones created, and parent
	// links re-resolved over the whole chart.
	ImportChartOfAccounts(ctx context.Context, data []byte) (*dto.ChartImportResult, error)
}

// BalanceteImportSvc imports fixed-width trial-balance reports.
type BalanceteImportSvc interface {
	// ImportBalancete parses a fixed-width report and appends its lines
	// under the detected competence. The filename participates in
	// competence detection.
	ImportBalancete(ctx context.Context, filename string, data []byte) (*dto.BalanceteImportResult, error)
}

// FundsImportSvc imports the monthly special-funds workbook.
type FundsImportSvc interface {
	// ImportSpecialFunds replaces the fund entries of the given period with
	// the FATES and investment-fund sheets of the workbook.
	ImportSpecialFunds(ctx context.Context, year int, month int, data []byte) (*dto.FundsImportResult, error)
}

// ImportSvcFacade combines all file-import service interfaces
type ImportSvcFacade interface {
	ChartImportSvc
	BalanceteImportSvc
	FundsImportSvc
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus is the lifecycle state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen       PeriodStatus = "ABERTO"
	PeriodClosed     PeriodStatus = "FECHADO"
	PeriodProcessing PeriodStatus = "EM_PROCESSAMENTO"
)

// AccountingPeriod scopes ledger data to a year/month competence.
type AccountingPeriod struct {
	ID       int64        `json:"id"`
	Year     int          `json:"ano"`
	Month    int          `json:"mes"`
	Status   PeriodStatus `json:"status"`
	OpenedAt time.Time    `json:"data_abertura"`
	ClosedAt *time.Time   `json:"data_fechamento"`
}

// Competence renders the period as the canonical "YYYY-MM" competence tag.
func (p AccountingPeriod) Competence() string {
	return FormatCompetence(p.Year, p.Month)
}

// FormatCompetence renders a year/month pair as "YYYY-MM".
func FormatCompetence(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// BalanceLine is one row of an imported trial-balance (balancete) report.
// Lines are appended per import and never deduplicated by account code: the
// same code legitimately repeats across competences.
type BalanceLine struct {
	ID            int64           `json:"id"`
	AccountCode   string          `json:"conta"`
	ReductionCode *int            `json:"reducao"`
	Type          string          `json:"tipo"`
	Description   string          `json:"descricao"`
	PriorBalance  decimal.Decimal `json:"valor_anterior"`
	PeriodDebit   decimal.Decimal `json:"valor_periodo_debito"`
	PeriodCredit  decimal.Decimal `json:"valor_periodo_credito"`
	CurrentValue  decimal.Decimal `json:"valor_atual"`
	Competence    string          `json:"competencia"`
	ImportedAt    time.Time       `json:"data_importacao"`
}

// FundType identifies the special statutory funds tracked by the cooperative.
type FundType string

const (
	FundFATES      FundType = "FATES"
	FundInvestment FundType = "INVESTIMENTO"
)

// SpecialFundEntry is one movement of a statutory fund, imported from the
// monthly .xls workbook.
type SpecialFundEntry struct {
	ID        int64           `json:"id"`
	FundType  FundType        `json:"tipo_fundo"`
	PeriodID  int64           `json:"periodo_id"`
	Date      *time.Time      `json:"data_movimento"`
	History   string          `json:"historico"`
	Debit     decimal.Decimal `json:"valor_debito"`
	Credit    decimal.Decimal `json:"valor_credito"`
	CreatedAt time.Time       `json:"created_at"`
}

package domain

import "strings"

// AccountType classifies a chart-of-accounts entry by its accounting role.
// Values mirror the Portuguese terms used across the accounting exports.
type AccountType string

const (
	AccountAsset     AccountType = "ATIVO"
	AccountLiability AccountType = "PASSIVO"
	AccountRevenue   AccountType = "RECEITA"
	AccountExpense   AccountType = "DESPESA"
	AccountEquity    AccountType = "PATRIMONIO_LIQUIDO"
)

// BalanceNature is the normal balance side of an account.
type BalanceNature string

const (
	NatureDebit  BalanceNature = "DEVEDOR"
	NatureCredit BalanceNature = "CREDOR"
)

// ChartAccount is one entry of the hierarchical chart of accounts (plano de
// contas). Code is unique; ParentID is resolved from the dotted code.
type ChartAccount struct {
	ID          int64         `json:"id"`
	Sequence    string        `json:"sequencial"`
	Code        string        `json:"codigo"`
	ReducedCode string        `json:"codigo_reduzido"`
	Description string        `json:"descricao"`
	Level       int           `json:"nivel"`
	ParentID    *int64        `json:"conta_pai_id"`
	AccountType AccountType   `json:"tipo_conta"`
	Nature      BalanceNature `json:"natureza_saldo"`
	Postable    bool          `json:"permite_lancamento"`
	// Type is the raw one-letter marker from the export: S (synthetic/summary)
	// or A (analytic).
	Type      string `json:"tipo"`
	Reference string `json:"referencia"`
	AuditFields
}

// AccountLevel derives the hierarchy depth from a dotted account code.
func AccountLevel(code string) int {
	return strings.Count(code, ".") + 1
}

// AccountTypeForCode classifies an account by the leading digits of its code.
// The "2.4" equity prefix must be tested before the generic liability default:
// every other code starting with "2" is a liability.
func AccountTypeForCode(code string) AccountType {
	switch {
	case strings.HasPrefix(code, "1"):
		return AccountAsset
	case strings.HasPrefix(code, "3"):
		return AccountExpense
	case strings.HasPrefix(code, "4"):
		return AccountRevenue
	case strings.HasPrefix(code, "2.4"):
		return AccountEquity
	default:
		return AccountLiability
	}
}

// NatureForCode derives the normal balance side: assets and expenses carry a
// debit balance, everything else a credit balance.
func NatureForCode(code string) BalanceNature {
	if strings.HasPrefix(code, "1") || strings.HasPrefix(code, "3") {
		return NatureDebit
	}
	return NatureCredit
}

// IsPostable reports whether postings may target the account. Only synthetic
// (summary) lines, marked with type "S", are excluded.
func IsPostable(accountType string) bool {
	return !strings.EqualFold(strings.TrimSpace(accountType), "S")
}

// ParentCode strips the last dot segment of a dotted code. It returns "" when
// the code has no parent segment.
func ParentCode(code string) string {
	idx := strings.LastIndex(code, ".")
	if idx < 0 {
		return ""
	}
	return code[:idx]
}

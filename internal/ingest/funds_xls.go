package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
)

// FundRow is one movement row of a special-fund sheet.
type FundRow struct {
	Date    *time.Time
	History string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// FundsWorkbook holds the rows of the two statutory-fund sheets of the
// monthly .xls workbook.
type FundsWorkbook struct {
	FATES      []FundRow
	Investment []FundRow
}

var fundDateLayouts = []string{"02/01/2006", "02/01/06", "2006-01-02", "02-01-2006"}

// ParseFundsWorkbook reads the FATES and investment-fund sheets of a legacy
// .xls workbook. Sheets are matched by name prefix; missing amounts default
// to zero and unparseable dates to nil, mirroring how the spreadsheets are
// filled by hand.
func ParseFundsWorkbook(data []byte) (*FundsWorkbook, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("opening xls workbook: %w", err)
	}

	out := &FundsWorkbook{}
	found := false
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		name := strings.ToUpper(strings.TrimSpace(sheet.Name))
		switch {
		case strings.HasPrefix(name, "FATES"):
			out.FATES = parseFundSheet(sheet)
			found = true
		case strings.HasPrefix(name, "FUNDO DE INVESTIMENTO"):
			out.Investment = parseFundSheet(sheet)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("workbook has no FATES or FUNDO DE INVESTIMENTO sheet")
	}
	return out, nil
}

// fund sheet columns: Emissao, Historico, Debito, Credito.
const (
	fundColDate    = 0
	fundColHistory = 1
	fundColDebit   = 2
	fundColCredit  = 3
)

func parseFundSheet(sheet *xls.WorkSheet) []FundRow {
	var rows []FundRow
	// Row 0 is the header.
	for r := 1; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			continue
		}
		dateStr := strings.TrimSpace(row.Col(fundColDate))
		history := strings.TrimSpace(row.Col(fundColHistory))
		debitStr := strings.TrimSpace(row.Col(fundColDebit))
		creditStr := strings.TrimSpace(row.Col(fundColCredit))
		if dateStr == "" && history == "" && debitStr == "" && creditStr == "" {
			continue
		}
		rows = append(rows, FundRow{
			Date:    parseFundDate(dateStr),
			History: history,
			Debit:   parseCellAmount(debitStr),
			Credit:  parseCellAmount(creditStr),
		})
	}
	return rows
}

// parseCellAmount handles both raw numeric cells ("1234.56") and text cells
// typed with Brazilian formatting ("1.234,56").
func parseCellAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	if !strings.Contains(s, ",") {
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}
	return ParseAmountOrZero(s)
}

func parseFundDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range fundDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

package ingest

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// BalanceRow is one parsed data line of a fixed-width trial-balance report.
type BalanceRow struct {
	AccountCode  string
	Reduction    *int
	Type         string
	Description  string
	PriorBalance decimal.Decimal
	PeriodDebit  decimal.Decimal
	PeriodCredit decimal.Decimal
	CurrentValue decimal.Decimal
}

// BalanceteFile is the parse result of a trial-balance upload.
type BalanceteFile struct {
	Rows       []BalanceRow
	Ignored    int
	Competence string // "" when undetectable
	Encoding   string
}

// pageBreak marks a new printed page in the report stream.
const pageBreak = "\f"

// ParseBalanceteFile decodes and parses a fixed-width balancete report.
// Structural noise (short lines, blanks, page breaks, repeated page headers)
// is skipped and counted; a line is accepted only when its account field
// starts with a digit.
func ParseBalanceteFile(filename string, data []byte) (*BalanceteFile, error) {
	text, encName, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)

	competence := CompetenceFromFilename(filename)
	if competence == "" {
		competence = CompetenceFromContent(lines)
	}

	headerIdx := findBalanceteHeader(lines)
	if headerIdx < 0 {
		return nil, fmt.Errorf("balancete header line not found")
	}
	// One separator line follows the header before data begins.
	dataStart := headerIdx + 2

	out := &BalanceteFile{Competence: competence, Encoding: encName}
	for i := dataStart; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || strings.Contains(line, pageBreak) || isBalanceteHeader(line) {
			out.Ignored++
			continue
		}
		fields, ok := BalanceteLayout.Slice(line)
		if !ok {
			out.Ignored++
			continue
		}
		code := fields["conta"]
		if code == "" || !unicode.IsDigit(rune(code[0])) {
			out.Ignored++
			continue
		}

		amounts := ParseAmountGroup([]string{
			fields["valor_anterior"],
			fields["valor_periodo_debito"],
			fields["valor_periodo_credito"],
			fields["valor_atual"],
		})

		out.Rows = append(out.Rows, BalanceRow{
			AccountCode:  code,
			Reduction:    parseReduction(fields["reducao"]),
			Type:         fields["tipo"],
			Description:  fields["descricao"],
			PriorBalance: amounts[0],
			PeriodDebit:  amounts[1],
			PeriodCredit: amounts[2],
			CurrentValue: amounts[3],
		})
	}
	return out, nil
}

// findBalanceteHeader locates the column header line by its telltale tokens.
func findBalanceteHeader(lines []string) int {
	for i, line := range lines {
		if isBalanceteHeader(line) {
			return i
		}
	}
	return -1
}

func isBalanceteHeader(line string) bool {
	l := strings.ToLower(line)
	hasAccount := strings.Contains(l, "conta") || strings.Contains(l, "codigo") || strings.Contains(l, "código")
	hasDescription := strings.Contains(l, "descricao") || strings.Contains(l, "descrição")
	hasValue := strings.Contains(l, "valor") || strings.Contains(l, "saldo")
	return hasAccount && hasDescription && hasValue
}

// parseReduction returns the reduction code only when the field is purely
// numeric; anything else maps to nil.
func parseReduction(s string) *int {
	if s == "" {
		return nil
	}
	n := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return nil
		}
		n = n*10 + int(r-'0')
	}
	return &n
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

package ingest

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const balanceteHeader = "CONTA                    REDUCAO TIPO DESCRICAO                 VALOR ANTERIOR   DEBITO   CREDITO   SALDO ATUAL"

func balanceteDoc(dataLines ...string) []byte {
	lines := []string{
		"COOPERATIVA VALEX                     EMISSAO: 05/04/24",
		"ACUMULADO DO MES Janeiro a Marco",
		balanceteHeader,
		strings.Repeat("-", 137),
	}
	lines = append(lines, dataLines...)
	return []byte(strings.Join(lines, "\n"))
}

func balanceteLine(code, reduction, typ, desc, prior, debit, credit, current string) string {
	return buildFixedLine(map[string]string{
		"conta":                 code,
		"reducao":               reduction,
		"tipo":                  typ,
		"descricao":             desc,
		"valor_anterior":        prior,
		"valor_periodo_debito":  debit,
		"valor_periodo_credito": credit,
		"valor_atual":           current,
	})
}

func TestParseBalanceteFile(t *testing.T) {
	doc := balanceteDoc(
		balanceteLine("1.1.2", "123", "A", "CAIXA GERAL", "1.234,56", "100,00", "50,00", "1.284,56"),
		balanceteLine("2.4.1", "", "S", "CAPITAL SOCIAL", "0,00", "0,00", "0,00", "0,00"),
	)

	file, err := ParseBalanceteFile("BALANCETE 2024.3.TXT", doc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", file.Competence)
	require.Len(t, file.Rows, 2)

	row := file.Rows[0]
	assert.Equal(t, "1.1.2", row.AccountCode)
	require.NotNil(t, row.Reduction)
	assert.Equal(t, 123, *row.Reduction)
	assert.Equal(t, "A", row.Type)
	assert.Equal(t, "CAIXA GERAL", row.Description)
	assert.True(t, row.PriorBalance.Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, row.CurrentValue.Equal(decimal.RequireFromString("1284.56")))

	assert.Nil(t, file.Rows[1].Reduction)
}

func TestParseBalanceteFileCompetenceFromContent(t *testing.T) {
	doc := balanceteDoc(
		balanceteLine("1.1", "", "S", "ATIVO CIRCULANTE", "0,00", "0,00", "0,00", "0,00"),
	)
	file, err := ParseBalanceteFile("RELATORIO.TXT", doc)
	require.NoError(t, err)
	// Filename has no BALANCETE marker: competence comes from the
	// accumulated-period header plus the first-line report date.
	assert.Equal(t, "2024-03", file.Competence)
}

func TestParseBalanceteFileSkipsStructuralNoise(t *testing.T) {
	doc := balanceteDoc(
		"",                       // blank
		"\fPAGINA 2",             // page break
		balanceteHeader,          // repeated page header
		strings.Repeat("x", 100), // short line
		balanceteLine("TOTAL", "", "", "", "", "", "", ""), // account not starting with a digit
		balanceteLine("1.1.1", "10", "A", "CAIXA", "1,00", "0,00", "0,00", "1,00"),
	)
	file, err := ParseBalanceteFile("BALANCETE 2024.3.TXT", doc)
	require.NoError(t, err)
	assert.Equal(t, 5, file.Ignored)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "1.1.1", file.Rows[0].AccountCode)
}

func TestParseBalanceteFileMalformedAmountsZeroRow(t *testing.T) {
	doc := balanceteDoc(
		balanceteLine("1.1.1", "10", "A", "CAIXA", "abc", "100,00", "50,00", "150,00"),
	)
	file, err := ParseBalanceteFile("BALANCETE 2024.3.TXT", doc)
	require.NoError(t, err)
	// The row is imported, not ignored; all four amounts collapse to zero.
	assert.Equal(t, 0, file.Ignored)
	require.Len(t, file.Rows, 1)
	row := file.Rows[0]
	assert.True(t, row.PriorBalance.IsZero())
	assert.True(t, row.PeriodDebit.IsZero())
	assert.True(t, row.PeriodCredit.IsZero())
	assert.True(t, row.CurrentValue.IsZero())
}

func TestParseBalanceteFileNoHeader(t *testing.T) {
	_, err := ParseBalanceteFile("BALANCETE 2024.3.TXT", []byte("nothing useful\nat all\n"))
	assert.Error(t, err)
}

package ingest

import (
	"fmt"
	"strings"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
)

// Canonical chart-of-accounts column names, in expected file order.
const (
	ColSequence    = "sequencial"
	ColCode        = "codigo"
	ColType        = "tipo"
	ColDescription = "descricao"
	ColReference   = "referencia"
)

// columnSpec names one canonical column and the header spellings that map to
// it. Aliases are checked in order after an exact-name match fails.
type columnSpec struct {
	name    string
	aliases []string
}

var chartColumns = []columnSpec{
	{ColSequence, []string{"seq", "sequencia", "sequência", "numero", "número", "num"}},
	{ColCode, []string{"cod", "código", "conta", "cod conta", "codigo conta"}},
	{ColType, []string{"t", "tp", "tipo conta"}},
	{ColDescription, []string{"desc", "descrição", "descricao conta", "nome", "historico", "histórico"}},
	{ColReference, []string{"ref", "referência", "observacao", "observação"}},
}

// MapChartColumns resolves a raw header row to canonical column indexes.
// Resolution per column: exact match, then aliases, then the column's expected
// position. When any column stays unresolved the whole header falls back to
// positional mapping; files with fewer than five columns are rejected.
func MapChartColumns(header []string) (map[string]int, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	mapping := make(map[string]int, len(chartColumns))
	for pos, spec := range chartColumns {
		if idx := indexOf(norm, spec.name); idx >= 0 {
			mapping[spec.name] = idx
			continue
		}
		if idx := indexOfAny(norm, spec.aliases); idx >= 0 {
			mapping[spec.name] = idx
			continue
		}
		if pos < len(header) {
			mapping[spec.name] = pos
		}
	}

	if len(mapping) < len(chartColumns) {
		if len(header) < len(chartColumns) {
			return nil, fmt.Errorf("%w: expected %d columns, file has %d",
				apperrors.ErrBadFileFormat, len(chartColumns), len(header))
		}
		// Force positional mapping over the full canonical order.
		for pos, spec := range chartColumns {
			mapping[spec.name] = pos
		}
	}
	return mapping, nil
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func indexOfAny(headers []string, aliases []string) int {
	for _, a := range aliases {
		if i := indexOf(headers, a); i >= 0 {
			return i
		}
	}
	return -1
}

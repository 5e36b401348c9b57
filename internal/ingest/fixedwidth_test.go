package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutWidth(t *testing.T) {
	assert.Equal(t, 137, BalanceteLayout.Width())
}

func TestLayoutSlice(t *testing.T) {
	line := buildFixedLine(map[string]string{
		"conta":          "1.1.2",
		"reducao":        "123",
		"tipo":           "A",
		"descricao":      "CAIXA GERAL",
		"valor_anterior": "1.234,56",
		"valor_atual":    "2.000,00",
	})
	fields, ok := BalanceteLayout.Slice(line)
	require.True(t, ok)
	assert.Equal(t, "1.1.2", fields["conta"])
	assert.Equal(t, "123", fields["reducao"])
	assert.Equal(t, "A", fields["tipo"])
	assert.Equal(t, "CAIXA GERAL", fields["descricao"])
	assert.Equal(t, "1.234,56", fields["valor_anterior"])
	assert.Equal(t, "", fields["valor_periodo_debito"])
	assert.Equal(t, "2.000,00", fields["valor_atual"])
}

func TestLayoutSliceShortLine(t *testing.T) {
	_, ok := BalanceteLayout.Slice(strings.Repeat(" ", 136))
	assert.False(t, ok)
}

// buildFixedLine positions field values at their layout offsets, padding with
// spaces out to the layout width.
func buildFixedLine(fields map[string]string) string {
	runes := []rune(strings.Repeat(" ", BalanceteLayout.Width()))
	for _, col := range BalanceteLayout {
		val, ok := fields[col.Name]
		if !ok {
			continue
		}
		for i, r := range val {
			if col.Start+i >= col.End {
				break
			}
			runes[col.Start+i] = r
		}
	}
	return string(runes)
}

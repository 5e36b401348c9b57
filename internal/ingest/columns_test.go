package ingest

import (
	"testing"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapChartColumnsExactHeaders(t *testing.T) {
	mapping, err := MapChartColumns([]string{"sequencial", "codigo", "tipo", "descricao", "referencia"})
	require.NoError(t, err)
	assert.Equal(t, 0, mapping[ColSequence])
	assert.Equal(t, 1, mapping[ColCode])
	assert.Equal(t, 2, mapping[ColType])
	assert.Equal(t, 3, mapping[ColDescription])
	assert.Equal(t, 4, mapping[ColReference])
}

func TestMapChartColumnsAliases(t *testing.T) {
	// All five columns resolve via alias matching, not positional fallback.
	mapping, err := MapChartColumns([]string{"seq", "cod", "t", "desc", "ref"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		ColSequence:    0,
		ColCode:        1,
		ColType:        2,
		ColDescription: 3,
		ColReference:   4,
	}, mapping)
}

func TestMapChartColumnsAliasesOutOfOrder(t *testing.T) {
	mapping, err := MapChartColumns([]string{"conta", "descrição", "seq", "ref", "tp"})
	require.NoError(t, err)
	assert.Equal(t, 0, mapping[ColCode])
	assert.Equal(t, 1, mapping[ColDescription])
	assert.Equal(t, 2, mapping[ColSequence])
	assert.Equal(t, 3, mapping[ColReference])
	assert.Equal(t, 4, mapping[ColType])
}

func TestMapChartColumnsPositionalFallback(t *testing.T) {
	mapping, err := MapChartColumns([]string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	for pos, spec := range chartColumns {
		assert.Equal(t, pos, mapping[spec.name])
	}
}

func TestMapChartColumnsTooFewColumns(t *testing.T) {
	_, err := MapChartColumns([]string{"a", "b", "c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadFileFormat)
}

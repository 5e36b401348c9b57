package ingest

import (
	"testing"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChartFile(t *testing.T) {
	data := []byte("sequencial;codigo;tipo;descricao;referencia\n" +
		"1;1;S;ATIVO;\n" +
		"2;1.1;S;ATIVO CIRCULANTE;\n" +
		"3;1.1.1;A;CAIXA GERAL;CX01\n")

	file, err := ParseChartFile(data)
	require.NoError(t, err)
	assert.Equal(t, ';', file.Delimiter)
	assert.Equal(t, 0, file.Ignored)
	require.Len(t, file.Rows, 3)
	assert.Equal(t, "1.1.1", file.Rows[2].Code)
	assert.Equal(t, "A", file.Rows[2].Type)
	assert.Equal(t, "CAIXA GERAL", file.Rows[2].Description)
	assert.Equal(t, "CX01", file.Rows[2].Reference)
}

func TestParseChartFileAliasHeader(t *testing.T) {
	data := []byte("seq;cod;t;desc;ref\n1;1.1;S;ATIVO CIRCULANTE;x\n")
	file, err := ParseChartFile(data)
	require.NoError(t, err)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "1.1", file.Rows[0].Code)
	assert.Equal(t, "ATIVO CIRCULANTE", file.Rows[0].Description)
}

func TestParseChartFileIgnoresBlankAndNoneRows(t *testing.T) {
	data := []byte("sequencial;codigo;tipo;descricao;referencia\n" +
		"1;;S;SEM CODIGO;\n" +
		"2;1.1;S;;\n" +
		"3;None;S;NONE CODE;\n" +
		"4;1.2;A;CONTA VALIDA;\n")
	file, err := ParseChartFile(data)
	require.NoError(t, err)
	assert.Equal(t, 3, file.Ignored)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "1.2", file.Rows[0].Code)
}

func TestParseChartFileLatin1(t *testing.T) {
	// Header with "código"/"descrição" in ISO-8859-1.
	data := []byte("seq;c\xf3digo;tipo;descri\xe7\xe3o;ref\n1;1.1;A;S\xc9RIE;\n")
	file, err := ParseChartFile(data)
	require.NoError(t, err)
	assert.Equal(t, "iso-8859-1", file.Encoding)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "SÉRIE", file.Rows[0].Description)
}

func TestParseChartFileTooFewColumns(t *testing.T) {
	data := []byte("a;b;c\n1;2;3\n")
	_, err := ParseChartFile(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadFileFormat)
}

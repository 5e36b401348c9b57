package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetenceFromFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"BALANCETE 2024.3.TXT", "2024-03"},
		{"balancete 2024.12.txt", "2024-12"},
		{"BALANCETE_2025.1.TXT", "2025-01"},
		{"EXTRATO 2024.3.TXT", ""},   // no BALANCETE marker
		{"BALANCETE FINAL.TXT", ""},  // no period
		{"BALANCETE 2024.13.TXT", ""}, // month out of range
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompetenceFromFilename(tc.name), "filename %q", tc.name)
	}
}

func TestCompetenceFromContent(t *testing.T) {
	lines := []string{
		"COOPERATIVA VALEX                     EMISSAO: 05/04/24",
		"BALANCETE DE VERIFICACAO",
		"ACUMULADO DO MES Janeiro a Marco",
	}
	assert.Equal(t, "2024-03", CompetenceFromContent(lines))
}

func TestCompetenceFromContentMissing(t *testing.T) {
	assert.Equal(t, "", CompetenceFromContent([]string{"no period info here"}))
	assert.Equal(t, "", CompetenceFromContent(nil))
	// Accumulated header present but first line has no report date.
	assert.Equal(t, "", CompetenceFromContent([]string{
		"COOPERATIVA VALEX",
		"ACUMULADO DO MES Janeiro a Fevereiro",
	}))
}

func TestSplitCompetence(t *testing.T) {
	year, month, err := SplitCompetence("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)

	_, _, err = SplitCompetence("2024")
	assert.Error(t, err)
	_, _, err = SplitCompetence("2024-13")
	assert.Error(t, err)
}

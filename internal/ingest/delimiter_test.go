package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiterSniffsConsistentSeparator(t *testing.T) {
	sample := "seq;cod;t;desc;ref\n1;1.1;S;ATIVO;x\n2;1.1.1;A;CAIXA;y\n"
	assert.Equal(t, ';', DetectDelimiter(sample))

	sample = "seq,cod,t,desc,ref\n1,1.1,S,ATIVO,x\n"
	assert.Equal(t, ',', DetectDelimiter(sample))

	sample = "seq\tcod\tt\tdesc\tref\n1\t1.1\tS\tATIVO\tx\n"
	assert.Equal(t, '\t', DetectDelimiter(sample))
}

func TestDetectDelimiterFallbackPriority(t *testing.T) {
	// Inconsistent counts defeat the sniffer; presence of ';' wins over ','.
	sample := "a;b,c\nd;e;f,g\n"
	assert.Equal(t, ';', DetectDelimiter(sample))

	// Only commas present.
	sample = "a,b\nc,d,e\n"
	assert.Equal(t, ',', DetectDelimiter(sample))
}

func TestDetectDelimiterDefault(t *testing.T) {
	assert.Equal(t, ';', DetectDelimiter("no separators here\njust words\n"))
	assert.Equal(t, ';', DetectDelimiter(""))
}

func TestDetectDelimiterSamplesFirstKilobyte(t *testing.T) {
	// Separators appearing only beyond the sample window are not seen.
	sample := strings.Repeat("x", 2000) + ",a,b\n"
	assert.Equal(t, ';', DetectDelimiter(sample))
}

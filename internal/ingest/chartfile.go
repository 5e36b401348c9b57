package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// ChartRow is one raw chart-of-accounts record after column mapping, before
// domain derivation.
type ChartRow struct {
	Sequence    string
	Code        string
	Type        string
	Description string
	Reference   string
}

// ChartFile is the parse result of a delimited chart-of-accounts export.
type ChartFile struct {
	Rows      []ChartRow
	Ignored   int
	Encoding  string
	Delimiter rune
}

// ParseChartFile decodes and parses a delimited chart-of-accounts upload.
// Rows with an empty (or literal "none") code or description are counted as
// ignored; a structurally unrecognizable file fails as a whole.
func ParseChartFile(data []byte) (*ChartFile, error) {
	text, encName, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	delim := DetectDelimiter(text)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	mapping, err := MapChartColumns(records[0])
	if err != nil {
		return nil, err
	}

	out := &ChartFile{Encoding: encName, Delimiter: delim}
	for _, rec := range records[1:] {
		row := ChartRow{
			Sequence:    fieldAt(rec, mapping[ColSequence]),
			Code:        fieldAt(rec, mapping[ColCode]),
			Type:        fieldAt(rec, mapping[ColType]),
			Description: fieldAt(rec, mapping[ColDescription]),
			Reference:   fieldAt(rec, mapping[ColReference]),
		}
		if isBlankField(row.Code) || isBlankField(row.Description) {
			out.Ignored++
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func fieldAt(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// isBlankField treats the literal strings "none"/"None" the same as empty:
// they show up in exports produced from null-bearing spreadsheets.
func isBlankField(s string) bool {
	return s == "" || strings.EqualFold(s, "none")
}

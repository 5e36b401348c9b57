package ingest

import "strings"

// Column is one field of a fixed-width report layout, addressed by character
// positions (half-open interval).
type Column struct {
	Name  string
	Start int
	End   int
}

// Layout is a declarative fixed-width row layout. Parsing code never hardcodes
// offsets; layout changes only touch the table.
type Layout []Column

// Width returns the rightmost column boundary. Lines shorter than this cannot
// be sliced and must be skipped.
func (l Layout) Width() int {
	w := 0
	for _, c := range l {
		if c.End > w {
			w = c.End
		}
	}
	return w
}

// Slice cuts a line into trimmed fields keyed by column name. It reports
// false when the line is shorter than the layout width.
func (l Layout) Slice(line string) (map[string]string, bool) {
	runes := []rune(line)
	if len(runes) < l.Width() {
		return nil, false
	}
	fields := make(map[string]string, len(l))
	for _, c := range l {
		fields[c.Name] = strings.TrimSpace(string(runes[c.Start:c.End]))
	}
	return fields, true
}

// BalanceteLayout is the fixed character layout of the trial-balance report
// produced by the accounting system.
var BalanceteLayout = Layout{
	{Name: "conta", Start: 0, End: 25},
	{Name: "reducao", Start: 25, End: 32},
	{Name: "tipo", Start: 32, End: 35},
	{Name: "descricao", Start: 35, End: 72},
	{Name: "valor_anterior", Start: 72, End: 87},
	{Name: "valor_periodo_debito", Start: 87, End: 103},
	{Name: "valor_periodo_credito", Start: 103, End: 120},
	{Name: "valor_atual", Start: 120, End: 137},
}

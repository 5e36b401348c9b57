package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// competenceScanLines is how many leading lines of the report are scanned for
// the accumulated-period header.
const competenceScanLines = 10

var (
	filenameCompetenceRe = regexp.MustCompile(`(20\d{2})\.(\d{1,2})`)
	accumulatedRe        = regexp.MustCompile(`(?i)ACUMULADO DO M[EÊ]S\s+(\S+)\s+a\s+(\S+)`)
	shortYearRe          = regexp.MustCompile(`\d{2}/\d{2}/(\d{2})`)
)

var monthsByName = map[string]int{
	"JANEIRO": 1, "FEVEREIRO": 2, "MARCO": 3, "MARÇO": 3, "ABRIL": 4,
	"MAIO": 5, "JUNHO": 6, "JULHO": 7, "AGOSTO": 8, "SETEMBRO": 9,
	"OUTUBRO": 10, "NOVEMBRO": 11, "DEZEMBRO": 12,
	"JAN": 1, "FEV": 2, "MAR": 3, "ABR": 4, "MAI": 5, "JUN": 6,
	"JUL": 7, "AGO": 8, "SET": 9, "OUT": 10, "NOV": 11, "DEZ": 12,
}

// CompetenceFromFilename extracts the "YYYY-MM" competence from a balancete
// filename such as "BALANCETE 2024.3.TXT". It returns "" when the name has no
// recognizable period.
func CompetenceFromFilename(name string) string {
	if !strings.Contains(strings.ToUpper(name), "BALANCETE") {
		return ""
	}
	m := filenameCompetenceRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// CompetenceFromContent scans the leading lines of the report for the
// "ACUMULADO DO MES <start> a <end>" header, combining the end month with the
// two-digit year of the report date on the first line (assumed 2000s).
func CompetenceFromContent(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	limit := competenceScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	month := 0
	for _, line := range lines[:limit] {
		m := accumulatedRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if mo, ok := monthsByName[strings.ToUpper(strings.TrimSpace(m[2]))]; ok {
			month = mo
		}
		break
	}
	if month == 0 {
		return ""
	}

	ym := shortYearRe.FindStringSubmatch(lines[0])
	if ym == nil {
		return ""
	}
	yy, _ := strconv.Atoi(ym[1])
	return fmt.Sprintf("%04d-%02d", 2000+yy, month)
}

// SplitCompetence parses a "YYYY-MM" tag back into year and month.
func SplitCompetence(competence string) (int, int, error) {
	parts := strings.SplitN(competence, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid competence %q", competence)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid competence year %q", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid competence month %q", parts[1])
	}
	return year, month, nil
}

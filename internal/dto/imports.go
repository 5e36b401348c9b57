package dto

// ChartImportResult summarizes a chart-of-accounts import.
type ChartImportResult struct {
	Message  string `json:"message"`
	Imported int    `json:"registros_importados"`
	Updated  int    `json:"registros_atualizados"`
	Ignored  int    `json:"registros_ignorados"`
}

// BalanceteImportResult summarizes a trial-balance import. Competence is nil
// when the report period could not be detected.
type BalanceteImportResult struct {
	Message    string  `json:"message"`
	Imported   int     `json:"registros_importados"`
	Ignored    int     `json:"registros_ignorados"`
	Competence *string `json:"competencia"`
}

// FundsImportResult summarizes a special-funds workbook import.
type FundsImportResult struct {
	Message  string `json:"message"`
	PeriodID int64  `json:"periodo_id"`
	Imported int    `json:"registros_importados"`
}

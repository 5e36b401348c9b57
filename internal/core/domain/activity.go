package domain

import "time"

// HarvestActivity is a single packing/harvest record reported by a producer.
type HarvestActivity struct {
	ID               int64  `json:"id"`
	ProducerID       int64  `json:"produtor_id"`
	FarmID           int64  `json:"fazenda_id"`
	VarietyID        int64  `json:"variedade_id"`
	ClassificationID *int64 `json:"classificacao_id"`
	ActivityType     string `json:"tipo_atividade"`
	PalletCount      int    `json:"quantidade_pallets"`
	BoxCount         *int   `json:"caixas"`
	AuditFields
}

// ActivityHistoryEntry is an activity joined with the names of its farm,
// variety and classification, for the producer history listing.
type ActivityHistoryEntry struct {
	ID                 int64
	ActivityType       string
	PalletCount        int
	BoxCount           *int
	CreatedAt          time.Time
	FarmName           string
	VarietyName        string
	ClassificationName string
}

// VarietySummary aggregates pallets of a single variety, broken down by
// classification.
type VarietySummary struct {
	TotalPallets    int            `json:"total_pallets"`
	Classifications map[string]int `json:"classificacoes"`
}

// DailySummary is the per-producer roll-up of today's activities.
type DailySummary struct {
	TotalPallets int                       `json:"total_pallets"`
	ByVariety    map[string]VarietySummary `json:"detalhamento"`
}

// ProducerDailySummary is a DailySummary annotated with producer identity,
// used by the manager overview.
type ProducerDailySummary struct {
	ProducerID       int64                     `json:"produtor_id"`
	ProducerName     string                    `json:"produtor_nome"`
	ProducerInitials string                    `json:"produtor_sigla"`
	TotalPallets     int                       `json:"total_pallets"`
	ByVariety        map[string]VarietySummary `json:"detalhamento"`
}

// DailyStatistics holds the manager dashboard counters for the current day.
type DailyStatistics struct {
	TotalPallets    int            `json:"total_pallets_dia"`
	ActiveProducers int            `json:"produtores_ativos"`
	ByActivityType  map[string]int `json:"atividades_por_tipo"`
}

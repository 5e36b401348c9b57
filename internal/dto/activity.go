package dto

import (
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// CreateActivityRequest defines the data needed to record a harvest activity.
type CreateActivityRequest struct {
	ProducerID       int64  `json:"produtor_id" binding:"required"`
	FarmID           int64  `json:"fazenda_id" binding:"required"`
	VarietyID        int64  `json:"variedade_id" binding:"required"`
	ClassificationID *int64 `json:"classificacao_id"`
	ActivityType     string `json:"tipo_atividade" binding:"required"`
	PalletCount      int    `json:"quantidade_pallets" binding:"required,gt=0"`
	BoxCount         *int   `json:"caixas"`
}

// ActivityHistoryResponse is one row of a producer's activity history,
// timestamps rendered in the producers' local timezone.
type ActivityHistoryResponse struct {
	ID             int64  `json:"id"`
	ActivityType   string `json:"tipo_atividade"`
	PalletCount    int    `json:"quantidade_pallets"`
	BoxCount       *int   `json:"caixas"`
	Date           string `json:"data"`
	Farm           string `json:"fazenda"`
	Variety        string `json:"variedade"`
	Classification string `json:"classificacao"`
}

// ToActivityHistoryResponse converts a joined history entry, rendering the
// creation time in the given location.
func ToActivityHistoryResponse(entry domain.ActivityHistoryEntry, loc *time.Location) ActivityHistoryResponse {
	return ActivityHistoryResponse{
		ID:             entry.ID,
		ActivityType:   entry.ActivityType,
		PalletCount:    entry.PalletCount,
		BoxCount:       entry.BoxCount,
		Date:           entry.CreatedAt.In(loc).Format("02/01/2006 15:04"),
		Farm:           entry.FarmName,
		Variety:        entry.VarietyName,
		Classification: entry.ClassificationName,
	}
}

// ToListActivityHistoryResponse converts a slice of history entries.
func ToListActivityHistoryResponse(entries []domain.ActivityHistoryEntry, loc *time.Location) []ActivityHistoryResponse {
	res := make([]ActivityHistoryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToActivityHistoryResponse(e, loc)
	}
	return res
}

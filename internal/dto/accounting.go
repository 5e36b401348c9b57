package dto

import (
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// BalanceteResponse is the full trial balance of one competence.
type BalanceteResponse struct {
	Competence string               `json:"competencia"`
	Lines      []domain.BalanceLine `json:"registros"`
}

// CompetencesResponse lists the competences with imported data, newest first.
type CompetencesResponse struct {
	Competences []string `json:"competencias"`
}

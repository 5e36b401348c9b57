package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
)

// reportingHandler serves the manager dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the gestor dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	gestor := rg.Group("/gestor", guard)
	{
		gestor.GET("/resumo-geral", h.getGeneralSummary)
		gestor.GET("/estatisticas", h.getStatistics)
	}
}

// getGeneralSummary godoc
// @Summary Today's per-producer roll-up
// @Description Retrieves today's pallet totals for every producer with
// @Description activity, broken down by variety and classification.
// @Tags gestor
// @Produce json
// @Success 200 {array} domain.ProducerDailySummary
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /gestor/resumo-geral [get]
func (h *reportingHandler) getGeneralSummary(c *gin.Context) {
	summaries, err := h.reportingService.GetGeneralSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao montar resumo geral")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// getStatistics godoc
// @Summary Today's dashboard counters
// @Description Retrieves today's total pallets, active producer count and
// @Description per-activity-type totals.
// @Tags gestor
// @Produce json
// @Success 200 {object} domain.DailyStatistics
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /gestor/estatisticas [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	stats, err := h.reportingService.GetStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao calcular estatísticas")
		return
	}
	c.JSON(http.StatusOK, stats)
}

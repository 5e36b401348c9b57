package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/middleware"
)

// activityHandler handles HTTP requests for harvest activity recording.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// registerActivityRoutes registers routes related to harvest activities.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/atividades")
	{
		activities.POST("", h.createActivity)
		activities.GET("/resumo/:produtorID", h.getDailySummary)
		activities.GET("/historico/:produtorID", h.getHistory)
	}
}

// createActivity godoc
// @Summary Record a harvest activity
// @Description Records pallets of an activity type for a producer, farm and
// @Description variety, with an optional classification.
// @Tags atividades
// @Accept json
// @Produce json
// @Param activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} domain.HarvestActivity
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /atividades [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "requisição inválida: " + err.Error()})
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "falha ao registrar atividade")
		return
	}

	logger.Info("Activity recorded",
		slog.Int64("activity_id", activity.ID),
		slog.Int64("producer_id", activity.ProducerID),
		slog.Int("pallets", activity.PalletCount))
	c.JSON(http.StatusCreated, activity)
}

// getDailySummary godoc
// @Summary Producer's daily summary
// @Description Rolls up today's pallets for a producer, grouped by variety and
// @Description then classification.
// @Tags atividades
// @Produce json
// @Param produtorID path int true "Producer ID"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /atividades/resumo/{produtorID} [get]
func (h *activityHandler) getDailySummary(c *gin.Context) {
	producerID, ok := parseIDParam(c, "produtorID")
	if !ok {
		return
	}

	summary, err := h.activityService.GetDailySummary(c.Request.Context(), producerID)
	if err != nil {
		respondWithError(c, err, "falha ao montar resumo do dia")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getHistory godoc
// @Summary Producer's recent activities
// @Description Retrieves a producer's most recent activities, newest first,
// @Description with timestamps rendered in local time.
// @Tags atividades
// @Produce json
// @Param produtorID path int true "Producer ID"
// @Success 200 {array} dto.ActivityHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /atividades/historico/{produtorID} [get]
func (h *activityHandler) getHistory(c *gin.Context) {
	producerID, ok := parseIDParam(c, "produtorID")
	if !ok {
		return
	}

	history, err := h.activityService.GetHistory(c.Request.Context(), producerID)
	if err != nil {
		respondWithError(c, err, "falha ao listar histórico")
		return
	}
	c.JSON(http.StatusOK, history)
}

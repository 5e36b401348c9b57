package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// accountingHandler serves the accounting read endpoints.
type accountingHandler struct {
	accountingService portssvc.AccountingSvcFacade
}

func newAccountingHandler(as portssvc.AccountingSvcFacade) *accountingHandler {
	return &accountingHandler{accountingService: as}
}

// registerAccountingRoutes registers the gestor-only accounting read routes.
func registerAccountingRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, accountingService portssvc.AccountingSvcFacade) {
	h := newAccountingHandler(accountingService)

	contabilidade := rg.Group("/contabilidade", guard)
	{
		contabilidade.GET("/plano-contas", h.getChartOfAccounts)
		contabilidade.GET("/balancete/completo", h.getFullBalancete)
		contabilidade.GET("/competencias", h.listCompetences)
	}
}

// getChartOfAccounts godoc
// @Summary Chart of accounts
// @Description Retrieves the full chart of accounts ordered by code.
// @Tags contabilidade
// @Produce json
// @Success 200 {array} domain.ChartAccount
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidade/plano-contas [get]
func (h *accountingHandler) getChartOfAccounts(c *gin.Context) {
	accounts, err := h.accountingService.GetChartOfAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar plano de contas")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getFullBalancete godoc
// @Summary Full trial balance
// @Description Retrieves the trial balance of a competence. Without the
// @Description competencia query parameter, the most recent competence with
// @Description data is returned.
// @Tags contabilidade
// @Produce json
// @Param competencia query string false "Competence in YYYY-MM form"
// @Success 200 {object} dto.BalanceteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidade/balancete/completo [get]
func (h *accountingHandler) getFullBalancete(c *gin.Context) {
	competence := c.Query("competencia")

	balancete, err := h.accountingService.GetFullBalancete(c.Request.Context(), competence)
	if err != nil {
		respondWithError(c, err, "falha ao montar balancete")
		return
	}
	c.JSON(http.StatusOK, balancete)
}

// listCompetences godoc
// @Summary Competences with data
// @Description Retrieves the competences that have imported balancete lines,
// @Description newest first.
// @Tags contabilidade
// @Produce json
// @Success 200 {object} dto.CompetencesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contabilidade/competencias [get]
func (h *accountingHandler) listCompetences(c *gin.Context) {
	competences, err := h.accountingService.ListCompetences(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar competências")
		return
	}
	c.JSON(http.StatusOK, dto.CompetencesResponse{Competences: competences})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
)

// farmHandler handles HTTP requests related to farms.
type farmHandler struct {
	farmService portssvc.FarmSvcFacade
}

func newFarmHandler(fs portssvc.FarmSvcFacade) *farmHandler {
	return &farmHandler{farmService: fs}
}

// registerFarmRoutes registers routes related to farms.
func registerFarmRoutes(rg *gin.RouterGroup, farmService portssvc.FarmSvcFacade) {
	h := newFarmHandler(farmService)

	farms := rg.Group("/fazendas")
	{
		farms.GET("", h.listFarms)
		farms.GET("/produtor/:produtorID", h.listFarmsByProducer)
		farms.GET("/:fazendaID/variedades", h.listVarietiesByFarm)
	}
}

// listFarms godoc
// @Summary List farms
// @Description Retrieves all farms with their variety names joined in.
// @Tags fazendas
// @Produce json
// @Success 200 {array} domain.Farm
// @Failure 500 {object} ErrorResponse
// @Router /fazendas [get]
func (h *farmHandler) listFarms(c *gin.Context) {
	farms, err := h.farmService.ListFarms(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar fazendas")
		return
	}
	c.JSON(http.StatusOK, farms)
}

// listFarmsByProducer godoc
// @Summary List a producer's farms
// @Description Retrieves the farms belonging to a single producer.
// @Tags fazendas
// @Produce json
// @Param produtorID path int true "Producer ID"
// @Success 200 {array} domain.Farm
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fazendas/produtor/{produtorID} [get]
func (h *farmHandler) listFarmsByProducer(c *gin.Context) {
	producerID, ok := parseIDParam(c, "produtorID")
	if !ok {
		return
	}

	farms, err := h.farmService.ListFarmsByProducer(c.Request.Context(), producerID)
	if err != nil {
		respondWithError(c, err, "falha ao listar fazendas do produtor")
		return
	}
	c.JSON(http.StatusOK, farms)
}

// listVarietiesByFarm godoc
// @Summary List a farm's varieties
// @Description Retrieves the grape varieties planted on a farm.
// @Tags fazendas
// @Produce json
// @Param fazendaID path int true "Farm ID"
// @Success 200 {array} domain.Variety
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fazendas/{fazendaID}/variedades [get]
func (h *farmHandler) listVarietiesByFarm(c *gin.Context) {
	farmID, ok := parseIDParam(c, "fazendaID")
	if !ok {
		return
	}

	varieties, err := h.farmService.ListVarietiesByFarm(c.Request.Context(), farmID)
	if err != nil {
		respondWithError(c, err, "falha ao listar variedades da fazenda")
		return
	}
	c.JSON(http.StatusOK, varieties)
}

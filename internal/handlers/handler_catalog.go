package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
)

// catalogHandler serves the static variety and classification catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	rg.GET("/variedades", h.listVarieties)
	rg.GET("/classificacoes", h.listClassifications)
}

// listVarieties godoc
// @Summary List grape varieties
// @Tags catalogos
// @Produce json
// @Success 200 {array} domain.Variety
// @Failure 500 {object} ErrorResponse
// @Router /variedades [get]
func (h *catalogHandler) listVarieties(c *gin.Context) {
	varieties, err := h.catalogService.ListVarieties(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar variedades")
		return
	}
	c.JSON(http.StatusOK, varieties)
}

// listClassifications godoc
// @Summary List grape classifications
// @Tags catalogos
// @Produce json
// @Success 200 {array} domain.GrapeClassification
// @Failure 500 {object} ErrorResponse
// @Router /classificacoes [get]
func (h *catalogHandler) listClassifications(c *gin.Context) {
	classifications, err := h.catalogService.ListClassifications(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar classificações")
		return
	}
	c.JSON(http.StatusOK, classifications)
}

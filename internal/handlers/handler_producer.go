package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/middleware"
)

// producerHandler handles HTTP requests related to producers.
type producerHandler struct {
	producerService portssvc.ProducerSvcFacade
}

func newProducerHandler(ps portssvc.ProducerSvcFacade) *producerHandler {
	return &producerHandler{producerService: ps}
}

// registerProducerRoutes registers routes related to producers.
func registerProducerRoutes(rg *gin.RouterGroup, producerService portssvc.ProducerSvcFacade) {
	h := newProducerHandler(producerService)

	producers := rg.Group("/produtores")
	{
		producers.GET("", h.listProducers)
		producers.POST("", h.createProducer)
		producers.GET("/:id", h.getProducer)
		producers.PUT("/:id", h.updateProducer)
		producers.DELETE("/:id", h.deleteProducer)
	}
}

// listProducers godoc
// @Summary List producers
// @Description Retrieves all registered producers ordered by name.
// @Tags produtores
// @Produce json
// @Success 200 {array} domain.Producer
// @Failure 500 {object} ErrorResponse
// @Router /produtores [get]
func (h *producerHandler) listProducers(c *gin.Context) {
	producers, err := h.producerService.ListProducers(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "falha ao listar produtores")
		return
	}
	c.JSON(http.StatusOK, producers)
}

// getProducer godoc
// @Summary Get a producer
// @Description Retrieves a single producer by its identifier.
// @Tags produtores
// @Produce json
// @Param id path int true "Producer ID"
// @Success 200 {object} domain.Producer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /produtores/{id} [get]
func (h *producerHandler) getProducer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	producer, err := h.producerService.GetProducerByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "falha ao buscar produtor")
		return
	}
	c.JSON(http.StatusOK, producer)
}

// createProducer godoc
// @Summary Register a producer
// @Description Registers a new producer. The GGN, when present, must be unique.
// @Tags produtores
// @Accept json
// @Produce json
// @Param producer body dto.CreateProducerRequest true "Producer details"
// @Success 201 {object} domain.Producer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "GGN already registered"
// @Failure 500 {object} ErrorResponse
// @Router /produtores [post]
func (h *producerHandler) createProducer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProducerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProducer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "requisição inválida: " + err.Error()})
		return
	}

	producer, err := h.producerService.CreateProducer(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "falha ao criar produtor")
		return
	}

	logger.Info("Producer created", slog.Int64("producer_id", producer.ID))
	c.JSON(http.StatusCreated, producer)
}

// updateProducer godoc
// @Summary Update a producer
// @Description Applies a partial update to a producer. Only the fields present
// @Description in the body are changed.
// @Tags produtores
// @Accept json
// @Produce json
// @Param id path int true "Producer ID"
// @Param producer body dto.UpdateProducerRequest true "Fields to update"
// @Success 200 {object} domain.Producer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /produtores/{id} [put]
func (h *producerHandler) updateProducer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProducerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "requisição inválida: " + err.Error()})
		return
	}

	producer, err := h.producerService.UpdateProducer(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "falha ao atualizar produtor")
		return
	}
	c.JSON(http.StatusOK, producer)
}

// deleteProducer godoc
// @Summary Delete a producer
// @Description Removes a producer and its dependent records.
// @Tags produtores
// @Produce json
// @Param id path int true "Producer ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /produtores/{id} [delete]
func (h *producerHandler) deleteProducer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.producerService.DeleteProducer(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "falha ao remover produtor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produtor removido com sucesso"})
}

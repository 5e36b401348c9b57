package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/middleware"
)

// maxImportFileSize caps uploaded ledger files at 20 MiB.
const maxImportFileSize = 20 << 20

// importHandler handles the accounting file uploads.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(is portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: is}
}

// registerImportRoutes registers the gestor-only, rate-limited upload routes.
func registerImportRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc, uploadLimiter *limiter.Limiter, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)

	financeiro := rg.Group("/financeiro", guard, middleware.RateLimit(uploadLimiter))
	{
		financeiro.POST("/importar-plano-contas", h.importChartOfAccounts)
		financeiro.POST("/importar-balancete-txt", h.importBalancete)
		financeiro.POST("/importar-balancete", h.importSpecialFunds)
	}
}

// readUploadedFile pulls the "file" part of the multipart form into memory.
// Returns the original filename alongside the bytes.
func readUploadedFile(c *gin.Context) (string, []byte, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "arquivo não enviado"})
		return "", nil, false
	}
	if header.Size > maxImportFileSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "arquivo excede o tamanho máximo"})
		return "", nil, false
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "falha ao ler o arquivo enviado"})
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "falha ao ler o arquivo enviado"})
		return "", nil, false
	}
	return header.Filename, data, true
}

// importChartOfAccounts godoc
// @Summary Import chart of accounts
// @Description Imports a delimited chart-of-accounts export. Accounts are
// @Description matched by code: existing ones are updated, new ones created,
// @Description and parent links re-resolved over the whole chart.
// @Tags financeiro
// @Accept mpfd
// @Produce json
// @Param file formData file true "Delimited chart export (.csv or .txt)"
// @Success 200 {object} dto.ChartImportResult
// @Failure 400 {object} ErrorResponse "Unrecognized file structure"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} map[string]string "Too many uploads"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financeiro/importar-plano-contas [post]
func (h *importHandler) importChartOfAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filename, data, ok := readUploadedFile(c)
	if !ok {
		return
	}

	logger.Info("Chart of accounts upload received",
		slog.String("filename", filename),
		slog.Int("size_bytes", len(data)))

	result, err := h.importService.ImportChartOfAccounts(c.Request.Context(), data)
	if err != nil {
		respondWithError(c, err, "falha ao importar plano de contas")
		return
	}

	logger.Info("Chart of accounts imported",
		slog.Int("imported", result.Imported),
		slog.Int("updated", result.Updated),
		slog.Int("ignored", result.Ignored))
	c.JSON(http.StatusOK, result)
}

// importBalancete godoc
// @Summary Import fixed-width trial balance
// @Description Imports a fixed-width balancete report. The competence is
// @Description detected from the filename or the report header; its lines are
// @Description appended under that competence.
// @Tags financeiro
// @Accept mpfd
// @Produce json
// @Param file formData file true "Fixed-width balancete report (.txt)"
// @Success 200 {object} dto.BalanceteImportResult
// @Failure 400 {object} ErrorResponse "Unrecognized file structure"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} map[string]string "Too many uploads"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financeiro/importar-balancete-txt [post]
func (h *importHandler) importBalancete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filename, data, ok := readUploadedFile(c)
	if !ok {
		return
	}

	logger.Info("Balancete upload received",
		slog.String("filename", filename),
		slog.Int("size_bytes", len(data)))

	result, err := h.importService.ImportBalancete(c.Request.Context(), filename, data)
	if err != nil {
		respondWithError(c, err, "falha ao importar balancete")
		return
	}

	logger.Info("Balancete imported",
		slog.Int("imported", result.Imported),
		slog.Int("ignored", result.Ignored))
	c.JSON(http.StatusOK, result)
}

// importSpecialFunds godoc
// @Summary Import special funds workbook
// @Description Imports the monthly special-funds workbook (.xls), replacing
// @Description the FATES and investment-fund entries of the given period.
// @Tags financeiro
// @Accept mpfd
// @Produce json
// @Param file formData file true "Special funds workbook (.xls)"
// @Param ano formData int true "Period year"
// @Param mes formData int true "Period month (1-12)"
// @Success 200 {object} dto.FundsImportResult
// @Failure 400 {object} ErrorResponse "Invalid period or unrecognized workbook"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} map[string]string "Too many uploads"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financeiro/importar-balancete [post]
func (h *importHandler) importSpecialFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, errYear := strconv.Atoi(c.PostForm("ano"))
	month, errMonth := strconv.Atoi(c.PostForm("mes"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ano e mes são obrigatórios"})
		return
	}

	filename, data, ok := readUploadedFile(c)
	if !ok {
		return
	}

	logger.Info("Special funds upload received",
		slog.String("filename", filename),
		slog.Int("year", year),
		slog.Int("month", month))

	result, err := h.importService.ImportSpecialFunds(c.Request.Context(), year, month, data)
	if err != nil {
		respondWithError(c, err, "falha ao importar fundos especiais")
		return
	}

	logger.Info("Special funds imported",
		slog.Int64("period_id", result.PeriodID),
		slog.Int("imported", result.Imported))
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"trivia-api/internal/bank"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type BankHandler struct {
	bankService *services.BankService
}

func NewBankHandler(bankService *services.BankService) *BankHandler {
	return &BankHandler{bankService: bankService}
}

type ImportResponse struct {
	Success  bool `json:"success" example:"true"`
	Imported int  `json:"imported" example:"19"`
}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Every question grouped by category type, as JSON or CSV.
// @Tags         bank
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json (default) or csv"
// @Success      200 {object} bank.Bank
// @Failure      400 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *BankHandler) ExportQuestions(c *gin.Context) {
	format := bank.Format(c.DefaultQuery("format", string(bank.FormatJSON)))
	if format != bank.FormatJSON && format != bank.FormatCSV {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	data, err := h.bankService.Export(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	if format == bank.FormatCSV {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="trivia.csv"`)
		c.Status(http.StatusOK)
		if err := bank.WriteCSV(c.Writer, data); err != nil {
			slog.Error("csv export failed", "error", err)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trivia.json"`)
	c.JSON(http.StatusOK, data)
}

// ImportQuestions godoc
// @Summary      Import a question bank
// @Description  Upload a .json, .yaml or .csv bank. Missing categories are created by type.
// @Tags         bank
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Bank document"
// @Success      200 {object} ImportResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/import [post]
func (h *BankHandler) ImportQuestions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: file required", services.ErrInvalidInput))
		return
	}
	defer file.Close()

	format, err := bank.FormatFromFilename(header.Filename)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", services.ErrInvalidInput, err))
		return
	}
	data, err := bank.Decode(file, format)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", services.ErrInvalidInput, err))
		return
	}

	count, err := h.bankService.Import(c.Request.Context(), data)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Success: true, Imported: count})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutes-backend/internal/domains/export"
	"minutes-backend/internal/shared/response"
)

// ExportHandler handles HTTP requests for meeting exports
type ExportHandler struct {
	service export.Service
}

// NewExportHandler creates a new export handler instance
func NewExportHandler(service export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// CSV handles POST /exports/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	data, err := h.service.CSV(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, export.GetHTTPStatusCode(err), "EXPORT_CSV_FAILED", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="minutes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// PDF handles POST /exports/pdf
func (h *ExportHandler) PDF(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	data, err := h.service.PDF(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, export.GetHTTPStatusCode(err), "EXPORT_PDF_FAILED", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="signature-sheet.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// XLSX handles POST /exports/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	data, err := h.service.XLSX(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, export.GetHTTPStatusCode(err), "EXPORT_XLSX_FAILED", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="minutes.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ExportHandler) bind(c *gin.Context) (*export.Request, bool) {
	var req export.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return nil, false
	}
	return &req, true
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/application/service"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/request"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/response"
	"github.com/prasetyow/nota-spbu-api/pkg/export"
)

// ReceiptHandler handles receipt preview and export HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Preview returns the computed receipt view and its rendered lines for the
// session's current transaction
func (h *ReceiptHandler) Preview(c *gin.Context) {
	result, err := h.receiptService.Preview(
		c.Request.Context(),
		GetSessionID(c),
		c.Query("station_id"),
		c.Query("model"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt preview generated successfully", result)
}

// Export generates the receipt file and streams it as a download
func (h *ReceiptHandler) Export(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Format == "" {
		req.Format = export.FormatJPG
	}

	result, err := h.receiptService.Export(
		c.Request.Context(),
		GetSessionID(c),
		req.StationID,
		req.Model,
		req.Format,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(200, result.ContentType, result.Data)
}

// ExportStatus reports whether the export pipeline is ready
func (h *ReceiptHandler) ExportStatus(c *gin.Context) {
	response.OK(c, "Export status retrieved successfully", h.receiptService.ExportStatus())
}

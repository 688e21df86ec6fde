package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/application/service"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/request"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles session-transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// GetTransaction returns the session's current transaction
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx := h.transactionService.Get(GetSessionID(c))
	response.OK(c, "Transaction retrieved successfully", tx)
}

// UpdateTransaction patches the session's transaction field by field
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req request.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tx := h.transactionService.Update(GetSessionID(c), &service.UpdateTransactionInput{
		Shift:        req.Shift,
		Date:         req.Date,
		Time:         req.Time,
		PumpID:       req.PumpID,
		ProductName:  req.ProductName,
		UnitPrice:    req.UnitPrice,
		VolumeLiters: req.VolumeLiters,
		CashAmount:   req.CashAmount,
		OperatorName: req.OperatorName,
		PlateNumber:  req.PlateNumber,
	})

	response.OK(c, "Transaction updated successfully", tx)
}

// SelectStation sets the session's active station profile
func (h *TransactionHandler) SelectStation(c *gin.Context) {
	var req request.SelectStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "station_id is required")
		return
	}

	h.transactionService.SetStation(GetSessionID(c), req.StationID)
	response.OK(c, "Active station selected successfully", gin.H{
		"station_id": req.StationID,
	})
}

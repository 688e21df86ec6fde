package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/application/service"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/request"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/dto/response"
)

// StationHandler handles station-profile HTTP requests
type StationHandler struct {
	stationService *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(stationService *service.StationService) *StationHandler {
	return &StationHandler{stationService: stationService}
}

// ListStations retrieves all station profiles
func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.stationService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Station profiles retrieved successfully", stations)
}

// GetStation retrieves a station profile by ID
func (h *StationHandler) GetStation(c *gin.Context) {
	station, err := h.stationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Station profile retrieved successfully", station)
}

// CreateStation adds a new station profile
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req request.SaveStationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	station, err := h.stationService.Create(c.Request.Context(), &service.SaveStationInput{
		Name:         req.Name,
		Address:      req.Address,
		FooterNote:   req.FooterNote,
		ReceiptWidth: req.ReceiptWidth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Station profile created successfully", station)
}

// UpdateStation upserts a station profile by ID
func (h *StationHandler) UpdateStation(c *gin.Context) {
	var req request.SaveStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	station, err := h.stationService.Save(c.Request.Context(), &service.SaveStationInput{
		ID:           c.Param("id"),
		Name:         req.Name,
		Address:      req.Address,
		FooterNote:   req.FooterNote,
		ReceiptWidth: req.ReceiptWidth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Station profile updated successfully", station)
}

// DeleteStation removes a station profile. The last remaining profile cannot
// be deleted.
func (h *StationHandler) DeleteStation(c *gin.Context) {
	if err := h.stationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Station profile deleted successfully", nil)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"logistics_api/internal/model"
	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler handles vehicle registry requests
type VehicleHandler struct {
	service service.VehicleService
	log     *zap.SugaredLogger
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(s service.VehicleService, log *zap.SugaredLogger) *VehicleHandler {
	return &VehicleHandler{service: s, log: log}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.service.ListVehicles(c.Request.Context())
	if err != nil {
		h.log.Errorf("Error listing vehicles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if _, err := h.service.CreateVehicle(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrVehicleNumberExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrVehicleNumberExists.Error()})
			return
		}
		h.log.Errorf("Error creating vehicle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle created successfully"})
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	var patch model.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.UpdateVehicle(c.Request.Context(), targetID, patch); err != nil {
		if errors.Is(err, service.ErrVehicleNumberExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrVehicleNumberExists.Error()})
			return
		}
		h.log.Errorf("Error updating vehicle %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle updated successfully"})
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle ID"})
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), targetID); err != nil {
		h.log.Errorf("Error deleting vehicle %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

// RegisterVehicleRoutes registers the owner-only vehicle registry routes
func (h *VehicleHandler) RegisterVehicleRoutes(rg *gin.RouterGroup, authMWs ...gin.HandlerFunc) {
	vehicleGroup := rg.Group("/vehicles", authMWs...)
	{
		vehicleGroup.GET("", h.ListVehicles)
		vehicleGroup.POST("", h.CreateVehicle)
		vehicleGroup.PUT("/:id", h.UpdateVehicle)
		vehicleGroup.DELETE("/:id", h.DeleteVehicle)
	}
}

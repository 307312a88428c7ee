package handler

import (
	"errors"
	"net/http"

	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves role-shaped dashboard figures
type DashboardHandler struct {
	authService      service.AuthService
	dashboardService service.DashboardService
	log              *zap.SugaredLogger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(as service.AuthService, ds service.DashboardService, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{authService: as, dashboardService: ds, log: log}
}

// GetStats resolves the token's identity itself: a valid token whose user row
// is gone answers 404 here, unlike the 401 of the other protected routes.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.ResolveIdentity(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Errorf("Error resolving identity for dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), user)
	if err != nil {
		h.log.Errorf("Error aggregating dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// RegisterDashboardRoutes registers the dashboard route for any authenticated role
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup, authMWs ...gin.HandlerFunc) {
	rg.GET("/dashboard", append(authMWs, h.GetStats)...)
}

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

// UserHandler handles user directory requests
type UserHandler struct {
	service service.UserService
	log     *zap.SugaredLogger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Errorf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if _, err := h.service.CreateUser(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUsernameExists.Error()})
			return
		}
		h.log.Errorf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully"})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var patch model.UpdateUserRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.UpdateUser(c.Request.Context(), targetID, patch); err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUsernameExists.Error()})
			return
		}
		h.log.Errorf("Error updating user %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	callerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), callerID, targetID); err != nil {
		if errors.Is(err, service.ErrSelfDeletion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrSelfDeletion.Error()})
			return
		}
		h.log.Errorf("Error deleting user %d: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// RegisterUserRoutes registers the owner-only user directory routes.
// Middleware order is fixed: token check (401), identity resolution (401),
// role gate (403), then the handler.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMWs ...gin.HandlerFunc) {
	userGroup := rg.Group("/users", authMWs...)
	{
		userGroup.GET("", h.ListUsers)
		userGroup.POST("", h.CreateUser)
		userGroup.PUT("/:id", h.UpdateUser)
		userGroup.DELETE("/:id", h.DeleteUser)
	}
}

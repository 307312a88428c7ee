package handler

import (
	"errors"

	"logistics_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// getAuthUserID returns the authenticated user id set by the auth middleware
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

package middleware

import (
	"net/http"

	"logistics_api/internal/repository"
	"logistics_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey     = "authUser"
	AuthRoleKey     = "authRole"
	AuthIdentityKey = "authIdentity"
)

// TokenAuthMiddleware validates the identity token. The Authorization header
// carries the raw token from login, not a bearer scheme.
func TokenAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := jwtUtil.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}

// IdentityMiddleware resolves the token's user id against the store, so a
// deleted account cannot keep using an otherwise valid token. Must run after
// TokenAuthMiddleware.
func IdentityMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get(AuthUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		userID, ok := userIDVal.(int)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Role comes from the stored row, not the token claims
		c.Set(AuthRoleKey, user.Role)
		c.Set(AuthIdentityKey, user)

		c.Next()
	}
}

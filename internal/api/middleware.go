package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artilluminati/pautina-hosting/internal/models"
	"github.com/artilluminati/pautina-hosting/internal/storage"
)

const ctxUserKey = "currentUser"

// AuthRequired ensures the request carries a valid bearer token and
// that the token's subject still exists. A stale token for a deleted
// account yields 404, every token problem yields 401.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from Bearer schema
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		userID, _, err := a.auth.VerifyToken(tokenParts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := a.store.GetUserByID(userID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"error": "Database error"})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// AdminRequired ensures the authenticated user has the admin role.
// The check is an exact match; no role hierarchy exists.
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).Role != models.RoleAdmin {
			c.JSON(403, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser returns the user stowed by AuthRequired.
func currentUser(c *gin.Context) models.User {
	v, _ := c.Get(ctxUserKey)
	user, _ := v.(models.User)
	return user
}

package auth

import (
	"errors"
	"net/http"
	"strings"

	"gamevault/backend/internal/content"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and attaches the caller's
// identity to the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}

		userID, err := jwt.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}

		setIdentity(c, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the identity if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := jwt.ParseToken(tokenString, secret); err == nil {
				setIdentity(c, userID)
			}
		}
		c.Next()
	}
}

// AdminMiddleware rejects callers without the admin capability.
// It must be used AFTER AuthMiddleware.
func AdminMiddleware(guard content.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := guard.RequireCapability(c.Request.Context(), content.CapabilityAdmin); err != nil {
			status := http.StatusInternalServerError
			reason := "failed to verify permissions"
			if errors.Is(err, content.ErrUnauthorized) {
				status, reason = http.StatusUnauthorized, "unauthorized"
			}
			c.AbortWithStatusJSON(status, gin.H{"success": false, "error": reason})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c *gin.Context, userID string) {
	c.Set("userID", userID)
	ctx := content.WithIdentity(c.Request.Context(), content.Identity{UserID: userID})
	c.Request = c.Request.WithContext(ctx)
}

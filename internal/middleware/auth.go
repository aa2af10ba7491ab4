package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/punitsirse123/TempCall/internal/auth"
	"github.com/punitsirse123/TempCall/internal/config"
	"github.com/punitsirse123/TempCall/internal/models"
)

const (
	ContextUserID      = "userID"
	ContextTokenID     = "tokenID"
	ContextTokenExpiry = "tokenExpiry"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func AuthMiddleware(cfg *config.Config, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if revoked, err := denylist.IsRevoked(c.Request.Context(), claims.TokenID); err == nil && revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenExpiry, claims.ExpiresAt)

		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is sent
// but lets anonymous requests through. The public booking form works
// either way; a signed-in booker just gets their id recorded.
func OptionalAuthMiddleware(cfg *config.Config, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.Next()
			return
		}

		if revoked, err := denylist.IsRevoked(c.Request.Context(), claims.TokenID); err == nil && revoked {
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenExpiry, claims.ExpiresAt)

		c.Next()
	}
}

// RequireAdmin gates the dashboard routes on a user_roles row naming
// the admin role. Runs after AuthMiddleware.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID)

		var count int64
		db.Model(&models.UserRole{}).
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("user_roles.user_id = ? AND roles.name = ?", userID, models.RoleAdmin).
			Count(&count)

		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

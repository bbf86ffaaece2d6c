package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/JosephVasc/arenameta/models"
	"github.com/gin-gonic/gin"
)

const (
	AccountIDKey = "accountID"
	BattleTagKey = "battleTag"
	TokenKey     = "accessToken"
)

// IdentityResolver turns a bearer token into the account behind it, normally
// by calling the provider's userinfo endpoint.
type IdentityResolver interface {
	Identify(ctx context.Context, token string) (*models.BattleNetProfile, error)
}

// AuthMiddleware requires an Authorization: Bearer header and resolves it to
// a Battle.net identity. The token itself stays in context for handlers that
// call the provider on the user's behalf; it is never persisted.
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "authorization header is required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := tokenParts[1]
		profile, err := resolver.Identify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(AccountIDKey, profile.ID)
		c.Set(BattleTagKey, profile.Tag)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// Profile rebuilds the identity stored by AuthMiddleware.
func Profile(c *gin.Context) *models.BattleNetProfile {
	return &models.BattleNetProfile{
		ID:  c.GetString(AccountIDKey),
		Tag: c.GetString(BattleTagKey),
	}
}

// Token returns the bearer token stored by AuthMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}

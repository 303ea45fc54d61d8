package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "tourbook/database/repository/user"
	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ActorKey  = "actor"
	UserIDKey = "userID"
)

// TokenHashCache is the fast path for active-token lookups.
type TokenHashCache interface {
	Lookup(ctx context.Context, userID string) (string, bool, error)
	Store(ctx context.Context, userID, tokenHash string) error
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: msg})
}

// JWTAuthUserMiddleware accepts a Bearer token only if it is the user's
// current token, then stores the caller as a models.Actor.
func JWTAuthUserMiddleware(repo userRepo.UserRepository, cache TokenHashCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Insufficient authorization")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c, "Insufficient authorization")
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims.Subject == "" {
			unauthorized(c, "Invalid or expired token")
			return
		}
		computedHash := utils.HashToken(tokenString)
		actor := models.Actor{UserID: claims.Subject, Role: models.Role(claims.Role)}

		if cache != nil {
			cachedHash, found, err := cache.Lookup(ctx, claims.Subject)
			switch {
			case err != nil:
				logger.Warn("Auth cache lookup failed, falling back to database", zap.Error(err))
			case found && cachedHash == computedHash:
				setActor(c, actor)
				c.Next()
				return
			case found:
				unauthorized(c, "Token mismatch")
				return
			}
		}

		usr, err := repo.GetByID(ctx, claims.Subject)
		if err != nil {
			logger.Error("Failed to load user for authentication", zap.String("userId", claims.Subject), zap.Error(err))
			unauthorized(c, "Authentication error")
			return
		}
		if usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
			unauthorized(c, "Token mismatch")
			return
		}

		if cache != nil {
			if err := cache.Store(ctx, usr.ID, computedHash); err != nil {
				logger.Warn("Auth cache write failed", zap.String("userId", usr.ID), zap.Error(err))
			}
		}

		actor.Role = usr.Role
		setActor(c, actor)
		c.Next()
	}
}

func setActor(c *gin.Context, actor models.Actor) {
	c.Set(ActorKey, actor)
	c.Set(UserIDKey, actor.UserID)
}

// GetActor returns the caller stored by JWTAuthUserMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok && actor.UserID != ""
}

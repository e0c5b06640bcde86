package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/domain/user"
	"issuetracker/internal/infrastructure/auth"
	"issuetracker/internal/shared/constants"
	"issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type currentUserLoader interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}

type AuthMiddleware struct {
	tokens tokenVerifier
	users  currentUserLoader
	logger logger.Interface
}

func NewAuthMiddleware(tokens tokenVerifier, users currentUserLoader, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// RequireAuth resolves the bearer token to an active user and stores it
// under constants.ContextKeyActor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			m.reject(c, errors.NewUnauthorizedError("missing authorization token"))
			return
		}

		token, ok := strings.CutPrefix(authHeader, constants.BearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			m.reject(c, errors.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			}
			m.reject(c, err)
			return
		}

		actor, err := m.users.Execute(c.Request.Context(), claims.UserID)
		if err != nil {
			m.reject(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, actor.ID())
		c.Set(constants.ContextKeyActor, actor)

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/auth"
	"cvgen_backend/internal/logger"
	"cvgen_backend/pkg/apperrors"
	"cvgen_backend/pkg/contextkeys"
)

// AuthMiddleware verifies the Bearer token and stores the claims in the
// gin context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			abortUnauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.New(apperrors.CodeTokenExpired, "auth", "Token expired", http.StatusUnauthorized))
			} else {
				apperrors.HandleError(c, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized))
			}
			c.Abort()
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.IsSuperuserKey, claims.IsSuperuser)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware gates a group to superusers. Must run behind
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(contextkeys.IsSuperuserKey) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Administrator access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	apperrors.HandleError(c, apperrors.NewUnauthorizedError(message))
	c.Abort()
}

package middleware

import (
	"errors"
	"strings"

	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/credential"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Keys set on the gin context by AuthMiddleware.
const (
	ContextUserID   = "user_id"
	ContextRoleID   = "role_id"
	ContextUsername = "username"
)

// HeaderAccessToken is the legacy token header accepted next to Authorization.
const HeaderAccessToken = "accessToken"

func AuthMiddleware(verifier credential.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := verifier.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, credential.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextRoleID, claims.RoleID)
		c.Set(ContextUsername, claims.Username)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, claims.ID)
		ctx = contextutil.WithRoleID(ctx, claims.RoleID)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.Uint("user_id", claims.ID),
			zap.Uint("role_id", claims.RoleID),
		)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken reads the Authorization header, then the legacy accessToken
// header, then the access_token cookie.
func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}

	if token := strings.TrimSpace(c.GetHeader(HeaderAccessToken)); token != "" {
		return token
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func RoleMiddleware(allowedRoles ...uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, exists := c.Get(ContextRoleID)
		if !exists {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		for _, role := range allowedRoles {
			if roleID == role {
				c.Next()
				return
			}
		}

		abortWith(c, autherrors.ErrForbidden)
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

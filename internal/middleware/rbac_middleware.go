package middleware

import (
	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/domain"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by rbac.Service without importing it here.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID := c.GetUint(ContextRoleID)
		if roleID == 0 {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			RoleID:   roleID,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abortWith(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			abortWith(c, autherrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

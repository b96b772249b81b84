package rbac

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the enforce endpoint. Only the fixed roles get an
// answer; a token carrying any other role id is refused before the policy
// table is consulted.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth, middleware.RoleMiddleware(schema.RoleEmployer, schema.RoleApplicant))
	{
		group.POST("/enforce", handler.Enforce)
	}
}

package application

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	apps := r.Group("/apply_job")
	apps.Use(auth)
	{
		apps.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionCreate),
			handler.Apply,
		)
		apps.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionRead),
			handler.List,
		)
		apps.GET("/:applicant_id/:job_id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionRead),
			handler.Get,
		)
		apps.DELETE("/:applicant_id/:job_id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionDelete),
			handler.Withdraw,
		)
	}
}

package job

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the job endpoints. Reads are public; writes go
// through auth and the job policies. rdb enables idempotent job creation
// and may be nil.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb redis.Cmdable,
) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("/jobs", handler.GetByEmployer)
		jobs.GET("/jobsall", handler.GetAll)
		jobs.GET("/job/:id", handler.GetByID)

		create := []gin.HandlerFunc{
			auth,
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionCreate),
		}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		jobs.POST("/jobadd", append(create, handler.Create)...)

		jobs.PUT("/job/:id",
			auth,
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionUpdate),
			handler.Update,
		)

		jobs.DELETE("/job/:id",
			auth,
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceJob, rbac.ActionDelete),
			handler.Delete,
		)
	}
}

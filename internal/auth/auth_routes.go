package auth

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		group.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		group.POST("/logout", handler.Logout)
		group.GET("/auth", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		group.GET("/basicinfo/:id", handler.BasicInfo)
		group.PUT("/changepassword", auth, middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
	}
}

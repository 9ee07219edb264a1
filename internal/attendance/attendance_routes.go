package attendance

import (
	"go-hrm/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	rdb *redis.Client,
) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(enforcer, "attendance", "read"), handler.GetAll)
		attendances.GET("/employee/:id", middleware.RBACAuthorize(enforcer, "attendance", "read"), handler.GetByEmployee)
		attendances.POST("", middleware.RBACAuthorize(enforcer, "attendance", "record"), middleware.Idempotency(rdb), handler.Record)
	}
}

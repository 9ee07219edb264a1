package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", middleware.RBACAuthorize(enforcer, "leave", "read"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(enforcer, "leave", "read"), handler.GetByID)
		leaves.POST("", middleware.RBACAuthorize(enforcer, "leave", "create"), middleware.Idempotency(rdb), handler.Create)
		leaves.PUT("/:id", middleware.RBACAuthorize(enforcer, "leave", "manage"), handler.Update)
		leaves.PUT("/:id/review", middleware.RBACAuthorize(enforcer, "leave", "review"), handler.Review)
		leaves.DELETE("/:id", middleware.RBACAuthorize(enforcer, "leave", "manage"), handler.Cancel)
	}
}

package department

import (
	"go-hrm/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.RBACAuthorize(enforcer, "department", "read"), handler.GetAll)
		departments.GET("/:id", middleware.RBACAuthorize(enforcer, "department", "read"), handler.GetByID)
		departments.POST("", middleware.RBACAuthorize(enforcer, "department", "manage"), handler.Create)
		departments.PUT("/:id/manager", middleware.RBACAuthorize(enforcer, "department", "manage"), handler.AssignManager)
	}
}

package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(enforcer, "employee", "read"), handler.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(enforcer, "employee", "read"), handler.GetByID)
		employees.GET("/:id/balance", middleware.RBACAuthorize(enforcer, "employee", "read"), handler.GetBalance)
	}
}

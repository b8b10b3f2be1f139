package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
)

// RegisterStatsRoutes 注册统计相关路由.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	g.GET("/stats", handle.ComparativeStats)
}

// RegisterUserRoutes 注册用户统计路由.
func RegisterUserRoutes(g *gin.RouterGroup) {
	userRoutes := g.Group("/users")
	{
		userRoutes.GET("/:id/stats", handle.UserStats)
	}
}

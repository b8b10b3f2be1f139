package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
	"github.com/ecotrackhq/ecotrack/pkg/middleware"
)

// RegisterSchedulerRoutes 注册调度器巡检路由（仅管理员）.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedRoutes := g.Group("/scheduler", middleware.RequireAdmin())
	{
		schedRoutes.GET("/jobs", handle.SchedulerJobs)
	}
}

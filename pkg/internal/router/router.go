// Package router 管理路由配置，将路径与 handle 包的处理器绑定到 gin 引擎.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAll 在 /api/v1 分组下注册全部业务路由.
func RegisterAll(g *gin.RouterGroup) {
	RegisterWasteRoutes(g)
	RegisterStatsRoutes(g)
	RegisterUserRoutes(g)
	RegisterActivityRoutes(g)
	RegisterBinRoutes(g)
	RegisterHealthCheckRoute(g)
	RegisterSchedulerRoutes(g)
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
)

// RegisterActivityRoutes 注册活动日志路由.
func RegisterActivityRoutes(g *gin.RouterGroup) {
	g.GET("/activity", handle.ListActivity)
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
)

// RegisterWasteRoutes 注册采集记录路由.
func RegisterWasteRoutes(g *gin.RouterGroup) {
	wasteRoutes := g.Group("/waste")
	{
		wasteRoutes.POST("", handle.RecordWaste)
		wasteRoutes.GET("", handle.ListWaste)
		wasteRoutes.GET("/trends", handle.WasteTrends)
	}
}

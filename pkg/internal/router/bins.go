package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
	"github.com/ecotrackhq/ecotrack/pkg/middleware"
)

// RegisterBinRoutes 注册回收容器路由，写操作仅管理员可用.
func RegisterBinRoutes(g *gin.RouterGroup) {
	binRoutes := g.Group("/bins")
	{
		binRoutes.GET("", handle.ListBins)
		binRoutes.GET("/:id", handle.GetBin)

		binRoutes.POST("", middleware.RequireAdmin(), handle.CreateBin)
		binRoutes.PATCH("/:id", middleware.RequireAdmin(), handle.UpdateBin)
		binRoutes.DELETE("/:id", middleware.RequireAdmin(), handle.DeleteBin)
	}
}

// Package api 将业务路由挂载到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/router"
)

// RegisterGroup 在 /api/v1 下注册全部业务路由.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAll(e.Group("/api/v1"))

	return e
}

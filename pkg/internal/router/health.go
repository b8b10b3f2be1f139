package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/handle"
)

// RegisterHealthCheckRoute 注册按组件拆分的健康检查路由，
// 便于探针分别判定数据库与消息队列的可用性.
func RegisterHealthCheckRoute(g *gin.RouterGroup) {
	health := g.Group("/health")
	health.GET("/db", handle.HealthDB)
	health.GET("/mq", handle.HealthMQ)
}

// Package handle 新增健康检查处理器实现.
package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
)

const healthTimeout = 2 * time.Second

func unhealthy(c *gin.Context, component, reason string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"component": component,
		"status":    "unhealthy",
		"error":     reason,
	})
}

func healthy(c *gin.Context, component string) {
	c.JSON(http.StatusOK, gin.H{"component": component, "status": "ok"})
}

// HealthDB 数据库健康检查：对底层连接池做带超时的 ping.
func HealthDB(c *gin.Context) {
	dbc := ctxPkg.GetDBClient(c.Request.Context())
	if dbc == nil || dbc.DB == nil {
		unhealthy(c, "db", "db client not initialized")
		return
	}

	sqlDB, err := dbc.DB.DB()
	if err != nil {
		unhealthy(c, "db", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		unhealthy(c, "db", err.Error())
		return
	}

	healthy(c, "db")
}

// HealthMQ 消息队列健康检查.
// 事件发布是尽力而为，MQ 不可用时服务仍可摄入，这里仅暴露降级状态.
func HealthMQ(c *gin.Context) {
	if ctxPkg.GetMQClient(c.Request.Context()) == nil {
		unhealthy(c, "mq", "mq client not initialized")
		return
	}

	healthy(c, "mq")
}

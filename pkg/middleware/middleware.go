// Package middleware 提供 gin 中间件：身份解析、限流、熔断、指标、追踪与注入.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/metrics"
)

// PrometheusMiddleware 记录请求计数与耗时.
// 路径标签使用路由模板（如 /api/v1/users/:id/stats）而非原始 URL，避免标签基数爆炸.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" { // 未匹配到路由（404 等）
			route = "unmatched"
		}

		metrics.RequestCounter.WithLabelValues(c.Request.Method, route).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

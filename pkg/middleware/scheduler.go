package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/scheduler"
)

type schedulerKey struct{}

// SchedulerMiddleware 将调度器注入请求上下文，供巡检接口查询任务状态.
func SchedulerMiddleware(sched *scheduler.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), schedulerKey{}, sched))
		c.Next()
	}
}

// GetScheduler 从请求上下文取出调度器，未注入时返回 nil.
func GetScheduler(c *gin.Context) *scheduler.Scheduler {
	sched, _ := c.Request.Context().Value(schedulerKey{}).(*scheduler.Scheduler)

	return sched
}

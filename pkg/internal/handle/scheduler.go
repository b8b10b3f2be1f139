package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/middleware"
)

// SchedulerJobs 返回所有调度器任务信息，供运维巡检.
func SchedulerJobs(c *gin.Context) {
	sched := middleware.GetScheduler(c)
	if sched == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduler not initialized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": sched.GetJobInfos()})
}

package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// ComparativeStats 当前窗口与上一窗口的对比统计。
//
//	@Summary	对比统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.StatsResponse
//	@Failure	503	{object}	map[string]string
//	@Router		/api/v1/stats [get]
func ComparativeStats(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	svc := service.NewStatsService(c.Request.Context())

	resp, err := svc.Comparative(c.Request.Context(), ident)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WasteTrends 最近 N 天的逐日趋势序列。
//
//	@Summary	采集趋势
//	@Tags		统计
//	@Produce	json
//	@Param		days	query		int	false	"天数，默认 30，上限 90"
//	@Success	200		{object}	types.TrendsResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/v1/waste/trends [get]
func WasteTrends(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	var q types.TrendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewStatsService(c.Request.Context())

	resp, err := svc.Trends(c.Request.Context(), ident, q.Days)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

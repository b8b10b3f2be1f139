package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// ListActivity 分页列出活动日志，非管理员只能看到自己的数据。
//
//	@Summary	活动日志列表
//	@Tags		活动
//	@Produce	json
//	@Success	200	{object}	types.ListActivityResponse
//	@Failure	400	{object}	map[string]string
//	@Router		/api/v1/activity [get]
func ListActivity(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	var q types.ListActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewActivityService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), ident, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

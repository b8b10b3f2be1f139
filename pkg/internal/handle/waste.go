package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// RecordWaste 上报一条采集记录。
//
//	@Summary	上报采集记录
//	@Tags		采集
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	types.RecordWasteResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/api/v1/waste [post]
func RecordWaste(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	var req types.RecordWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewWasteService(c.Request.Context())

	resp, err := svc.Record(c.Request.Context(), ident, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListWaste 分页列出采集记录，非管理员只能看到自己的数据。
//
//	@Summary	采集记录列表
//	@Tags		采集
//	@Produce	json
//	@Success	200	{object}	types.ListWasteResponse
//	@Failure	400	{object}	map[string]string
//	@Router		/api/v1/waste [get]
func ListWaste(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	var q types.ListWasteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewWasteService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), ident, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

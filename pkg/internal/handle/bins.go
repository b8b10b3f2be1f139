package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// CreateBin 新增回收容器（仅管理员）。
//
//	@Summary	新增容器
//	@Tags		容器
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	model.WasteBin
//	@Failure	400	{object}	map[string]string
//	@Router		/api/v1/bins [post]
func CreateBin(c *gin.Context) {
	var req types.CreateBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewBinService(c.Request.Context())

	bin, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bin)
}

// ListBins 列出全部回收容器。
//
//	@Summary	容器列表
//	@Tags		容器
//	@Produce	json
//	@Success	200	{object}	types.ListBinsResponse
//	@Router		/api/v1/bins [get]
func ListBins(c *gin.Context) {
	svc := service.NewBinService(c.Request.Context())

	resp, err := svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBin 查看单个容器。
//
//	@Summary	容器详情
//	@Tags		容器
//	@Produce	json
//	@Param		id	path		string	true	"容器 ID"
//	@Success	200	{object}	model.WasteBin
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/bins/{id} [get]
func GetBin(c *gin.Context) {
	svc := service.NewBinService(c.Request.Context())

	bin, err := svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bin)
}

// UpdateBin 更新容器信息，仅更新请求中提供的字段（仅管理员）。
//
//	@Summary	更新容器
//	@Tags		容器
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string	true	"容器 ID"
//	@Success	200	{object}	model.WasteBin
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/bins/{id} [patch]
func UpdateBin(c *gin.Context) {
	var req types.UpdateBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewBinService(c.Request.Context())

	bin, err := svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bin)
}

// DeleteBin 下线容器（仅管理员）。
//
//	@Summary	下线容器
//	@Tags		容器
//	@Param		id	path	string	true	"容器 ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/bins/{id} [delete]
func DeleteBin(c *gin.Context) {
	svc := service.NewBinService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

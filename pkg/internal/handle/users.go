package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
)

// UserStats 单用户综合统计报告，仅管理员或本人可查.
//
//	@Summary	用户统计报告
//	@Tags		统计
//	@Produce	json
//	@Param		id	path		string	true	"用户 ID"
//	@Success	200	{object}	types.UserStatsResponse
//	@Failure	403	{object}	map[string]string
//	@Router		/api/v1/users/{id}/stats [get]
func UserStats(c *gin.Context) {
	ident, ok := caller(c)
	if !ok {
		return
	}

	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}

	if !ident.IsAdmin() && ident.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: not your report"})
		return
	}

	svc := service.NewUserStatsService(c.Request.Context())

	resp, err := svc.Report(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

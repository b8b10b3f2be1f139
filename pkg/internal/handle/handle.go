// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
	"github.com/ecotrackhq/ecotrack/pkg/log"
	"github.com/ecotrackhq/ecotrack/pkg/middleware"
)

// caller 从请求中提取已解析的身份，缺失时返回 401.
func caller(c *gin.Context) (types.Identity, bool) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return types.Identity{}, false
	}

	return ident, true
}

// writeServiceError 将服务层哨兵错误映射为 HTTP 状态码.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		log.Logger().Error().Err(err).Msg("store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		log.Logger().Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

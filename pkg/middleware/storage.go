package middleware

import (
	"github.com/gin-gonic/gin"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage"
)

// StorageMiddleware 把存储管理器挂到请求 context 上，
// service 层统一经 pkg/context 取 DB/MQ 客户端，不直接依赖全局单例.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			ctxPkg.WithStorageManager(c.Request.Context(), manager),
		)
		c.Next()
	}
}

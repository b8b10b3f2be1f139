package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// identityKey gin context 中存放 Identity 的键.
const identityKey = "identity"

// AuthMiddleware 基于 oauth2-proxy 注入的请求头做统一身份解析。
//   - 优先读取 X-Auth-Request-User / X-Forwarded-User 作为调用方 id
//   - 角色来自 X-Auth-Request-Role / X-Forwarded-Role，未知值降级为 user
//   - 支持通过配置跳过某些路径（如 /metrics, /health）
//   - 开发模式可允许 query user/role 兜底（由 auth.dev_allow_query 控制）.
func AuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled || isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader("X-Auth-Request-User"))
		if id == "" {
			id = strings.TrimSpace(c.GetHeader("X-Forwarded-User"))
		}

		role := strings.TrimSpace(c.GetHeader("X-Auth-Request-Role"))
		if role == "" {
			role = strings.TrimSpace(c.GetHeader("X-Forwarded-Role"))
		}

		if id == "" && conf.DevAllowQuery {
			id = strings.TrimSpace(c.Query("user"))
			if role == "" {
				role = strings.TrimSpace(c.Query("role"))
			}
		}

		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		c.Set(identityKey, types.Identity{ID: id, Role: normalizeRole(role)})
		c.Next()
	}
}

// normalizeRole 未知角色一律降级为 user.
func normalizeRole(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), types.RoleAdmin) {
		return types.RoleAdmin
	}

	return types.RoleUser
}

// GetIdentity 从 gin.Context 获取当前请求身份.
func GetIdentity(c *gin.Context) (types.Identity, bool) {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok2 := v.(types.Identity); ok2 {
			return ident, true
		}
	}

	return types.Identity{}, false
}

// RequireAdmin 要求管理员角色，不满足则返回 403。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok || !ident.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
			return
		}

		c.Next()
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
